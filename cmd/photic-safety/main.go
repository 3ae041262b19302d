package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/quentinrf/photic-safety/internal/adapters/console"
	"github.com/quentinrf/photic-safety/internal/domain"
)

func main() {
	// Initialize logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var (
		wavelength = flag.String("wavelength", "", "wavelength in nm, 400-500 (e.g. 450)")
		power      = flag.String("power", "", "radiant power at the pupil in W, metric suffixes allowed (e.g. 5u)")
		duration   = flag.String("duration", "", "exposure duration in s, metric suffixes allowed (e.g. 100m)")
		repRate    = flag.String("rep-rate", "", "pulse repetition rate in Hz; enables the single-pulse check (e.g. 59000k)")
		pulseDur   = flag.String("pulse-duration", "6p", "pulse duration in s, used with -rep-rate (e.g. 6p)")
	)
	flag.Parse()

	req, err := buildRequest(*wavelength, *power, *duration)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid input")
	}

	res, err := domain.Evaluate(req)
	if err != nil {
		log.Fatal().Err(err).Msg("evaluation failed")
	}

	var pulse *domain.PulseResult
	if *repRate != "" {
		rate, err := console.ParseSI(*repRate)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid repetition rate")
		}
		pd, err := console.ParseSI(*pulseDur)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid pulse duration")
		}
		train := domain.PulseTrain{RepRateHz: rate, PulseDurationS: pd}
		pulse, err = domain.EvaluatePulse(req.WavelengthNm, train, req.PowerW)
		if err != nil {
			log.Fatal().Err(err).Msg("single-pulse check failed")
		}
	}

	log.Info().
		Float64("wavelength_nm", req.WavelengthNm).
		Float64("duration_s", req.DurationS).
		Float64("power_w", req.PowerW).
		Stringer("governing_hazard", res.GoverningHazard).
		Float64("margin", res.Margin).
		Msg("evaluation complete")

	console.WriteReport(os.Stdout, res, pulse)
}

// buildRequest assembles the exposure request from flags, falling back
// to interactive prompting when any of them is missing.
func buildRequest(wavelength, power, duration string) (domain.ExposureRequest, error) {
	if wavelength == "" || power == "" || duration == "" {
		return console.NewPrompter(os.Stdin, os.Stderr).ReadRequest()
	}

	var req domain.ExposureRequest
	var err error
	if req.WavelengthNm, err = console.ParseSI(wavelength); err != nil {
		return domain.ExposureRequest{}, err
	}
	if req.PowerW, err = console.ParseSI(power); err != nil {
		return domain.ExposureRequest{}, err
	}
	if req.DurationS, err = console.ParseSI(duration); err != nil {
		return domain.ExposureRequest{}, err
	}
	return req, nil
}
