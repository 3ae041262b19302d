package domain

import "fmt"

// PulseTrain describes a pulsed or scanned source: how often pulses
// arrive and how long each one lasts.
type PulseTrain struct {
	RepRateHz      float64
	PulseDurationS float64
}

// PulseResult is the single-pulse energy check outcome.
type PulseResult struct {
	PulseEnergyJ    float64
	WeightedEnergyJ float64
	LimitJ          float64
	Margin          float64
}

// EvaluatePulse checks the per-pulse energy of a pulsed source against
// the 40 nJ single-pulse limit. The average power is divided across
// pulses and weighted by R(λ); for pulses shorter than the ultrashort
// regime a raw R below unity is raised to 1, mirroring the
// continuous-exposure substitution rule.
func EvaluatePulse(wavelengthNm float64, train PulseTrain, powerW float64) (*PulseResult, error) {
	if !(train.RepRateHz > 0) {
		return nil, fmt.Errorf("%w: repetition rate %g Hz", ErrInvalidPulse, train.RepRateHz)
	}
	if !(train.PulseDurationS > 0) {
		return nil, fmt.Errorf("%w: pulse duration %g s", ErrInvalidPulse, train.PulseDurationS)
	}
	if !(powerW >= 0) {
		return nil, fmt.Errorf("%w: %g W", ErrInvalidPower, powerW)
	}

	weighting, err := WeightingAt(wavelengthNm)
	if err != nil {
		return nil, err
	}

	r := weighting.R
	if train.PulseDurationS < ultrashortRegimeS && r < 1 {
		r = 1
	}

	pulseEnergy := powerW / train.RepRateHz
	weighted := r * pulseEnergy

	return &PulseResult{
		PulseEnergyJ:    pulseEnergy,
		WeightedEnergyJ: weighted,
		LimitJ:          singlePulseLimitJ,
		Margin:          hazardMargin(singlePulseLimitJ, weighted),
	}, nil
}
