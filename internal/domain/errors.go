package domain

import "errors"

var (
	// ErrInvalidWavelength indicates a wavelength outside the 400–500 nm band
	ErrInvalidWavelength = errors.New("wavelength outside the 400-500 nm band")

	// ErrInvalidDuration indicates a non-positive exposure duration
	ErrInvalidDuration = errors.New("exposure duration must be positive")

	// ErrInvalidPower indicates a negative radiant power
	ErrInvalidPower = errors.New("radiant power cannot be negative")

	// ErrInvalidPulse indicates a non-positive repetition rate or pulse duration
	ErrInvalidPulse = errors.New("pulse train parameters must be positive")

	// ErrNumericOverflow indicates a hazard formula produced a non-finite value
	ErrNumericOverflow = errors.New("hazard formula produced a non-finite value")
)
