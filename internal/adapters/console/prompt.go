package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/quentinrf/photic-safety/internal/domain"
)

// Prompter reads evaluation inputs interactively, re-prompting until a
// value parses and passes domain validation.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// ReadRequest collects wavelength, power, and duration from the input.
// It returns io.EOF (wrapped) when the input ends before a complete
// request is gathered.
func (p *Prompter) ReadRequest() (domain.ExposureRequest, error) {
	wavelength, err := p.readValue(
		"Enter wavelength (nm, 400-500): ",
		func(v float64) error {
			_, err := domain.WeightingAt(v)
			return err
		},
	)
	if err != nil {
		return domain.ExposureRequest{}, err
	}

	power, err := p.readValue(
		"Enter power at pupil (W, e.g. 5u for 5 µW): ",
		func(v float64) error {
			if v < 0 {
				return domain.ErrInvalidPower
			}
			return nil
		},
	)
	if err != nil {
		return domain.ExposureRequest{}, err
	}

	duration, err := p.readValue(
		"Enter exposure duration (s, e.g. 100m for 100 ms): ",
		func(v float64) error {
			if v <= 0 {
				return domain.ErrInvalidDuration
			}
			return nil
		},
	)
	if err != nil {
		return domain.ExposureRequest{}, err
	}

	return domain.ExposureRequest{
		WavelengthNm: wavelength,
		DurationS:    duration,
		PowerW:       power,
	}, nil
}

// readValue prompts until a line parses as an SI value and validate
// accepts it.
func (p *Prompter) readValue(prompt string, validate func(float64) error) (float64, error) {
	for {
		fmt.Fprint(p.out, prompt)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, fmt.Errorf("read input: %w", err)
			}
			return 0, fmt.Errorf("input ended: %w", io.EOF)
		}

		v, err := ParseSI(p.in.Text())
		if err == nil {
			err = validate(v)
		}
		if err != nil {
			fmt.Fprintf(p.out, "  %v, try again\n", err)
			continue
		}
		return v, nil
	}
}
