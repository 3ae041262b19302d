package domain

import (
	"fmt"
	"math"
)

// Hazard identifies which mechanism yields the smaller safety margin for
// a given exposure.
type Hazard int

const (
	HazardThermal Hazard = iota
	HazardPhotochemical
)

func (h Hazard) String() string {
	if h == HazardPhotochemical {
		return "Photochemical"
	}
	return "Thermal"
}

// Fixed small-spot geometry (immobilized-eye condition): a 0.03 mm
// retinal spot diameter.
const (
	SpotDiameterMm = 0.03
	spotRadiusM    = SpotDiameterMm / 2 * 1e-3

	// SpotAreaM2 is the retinal spot area, ≈ 7.07e-10 m².
	SpotAreaM2 = math.Pi * spotRadiusM * spotRadiusM
)

// ISO 15004-2:2025 Group 1 limit constants for the small-spot condition.
const (
	// Thermal pupil-energy limit 1.7·t^0.75 mJ, expressed in joules.
	thermalLimitCoeffJ = 1.7e-3
	thermalTimeExp     = 0.75

	// Blue-light dose limit 2.2 J/cm² in J/m². The dose limit is
	// duration-independent; beyond the ceiling the capped value
	// applies rather than an extrapolation.
	photochemicalDoseJm2  = 2.2e4
	photochemicalCeilingS = 1e4

	// Single-pulse energy limit for pulsed sources.
	singlePulseLimitJ = 40e-9
)

// ExposureRequest describes one exposure to evaluate. Power may be zero
// (the degenerate no-hazard case); wavelength and duration may not be
// out of domain.
type ExposureRequest struct {
	WavelengthNm float64
	DurationS    float64
	PowerW       float64
}

func (r ExposureRequest) validate() error {
	if !(r.WavelengthNm >= MinWavelengthNm && r.WavelengthNm <= MaxWavelengthNm) {
		return fmt.Errorf("%w: %g nm", ErrInvalidWavelength, r.WavelengthNm)
	}
	if !(r.DurationS > 0) {
		return fmt.Errorf("%w: %g s", ErrInvalidDuration, r.DurationS)
	}
	if !(r.PowerW >= 0) {
		return fmt.Errorf("%w: %g W", ErrInvalidPower, r.PowerW)
	}
	return nil
}

// HazardLimits are the delivered radiant exposures and the applicable
// Group 1 limits for both mechanisms, all in J/m² over the fixed spot.
type HazardLimits struct {
	ThermalExposure       float64
	ThermalLimit          float64
	PhotochemicalExposure float64
	PhotochemicalLimit    float64
}

// EvaluationResult is the full outcome of one evaluation, including the
// intermediate weighting values so a report can show them.
type EvaluationResult struct {
	Request   ExposureRequest
	Weighting WeightingFactors
	Effective EffectiveWeighting
	Limits    HazardLimits

	// GoverningHazard is the mechanism with the smaller margin; ties
	// go to Thermal.
	GoverningHazard Hazard

	// Margin is the governing limit/exposure ratio, +Inf at zero
	// exposure.
	Margin float64

	// SafeDurationS is the duration at which the governing exposure
	// would exactly reach its limit at the requested power.
	SafeDurationS float64
}

// Evaluate computes the small-spot photic hazard assessment for one
// exposure. It is a pure function: identical requests yield identical
// results.
func Evaluate(req ExposureRequest) (*EvaluationResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	weighting, err := WeightingAt(req.WavelengthNm)
	if err != nil {
		return nil, err
	}
	eff := weighting.Effective(req.DurationS)

	exposure := req.PowerW * req.DurationS / SpotAreaM2
	limits := HazardLimits{
		ThermalExposure:       exposure,
		ThermalLimit:          thermalLimit(eff.REff, req.DurationS),
		PhotochemicalExposure: exposure,
		PhotochemicalLimit:    photochemicalLimit(eff.BEff),
	}
	if err := checkFinite(limits); err != nil {
		return nil, err
	}

	marginThermal := hazardMargin(limits.ThermalLimit, limits.ThermalExposure)
	marginPhotochemical := hazardMargin(limits.PhotochemicalLimit, limits.PhotochemicalExposure)

	governing := HazardThermal
	margin := marginThermal
	if marginPhotochemical < marginThermal {
		governing = HazardPhotochemical
		margin = marginPhotochemical
	}

	return &EvaluationResult{
		Request:         req,
		Weighting:       weighting,
		Effective:       eff,
		Limits:          limits,
		GoverningHazard: governing,
		Margin:          margin,
		SafeDurationS:   safeDuration(governing, eff, req.PowerW),
	}, nil
}

// thermalLimit is the Group 1 thermal radiant-exposure limit for the
// fixed small spot: the 1.7·t^0.75 mJ pupil-energy limit spread over the
// spot area, with the effective thermal weighting folded into the limit
// side of the comparison.
func thermalLimit(rEff, durationS float64) float64 {
	return thermalLimitCoeffJ * math.Pow(durationS, thermalTimeExp) / (rEff * SpotAreaM2)
}

// photochemicalLimit is the Group 1 blue-light dose limit weighted by
// the effective B(λ). Constant in duration; the value is already the
// capped ceiling dose, so durations beyond photochemicalCeilingS reuse
// it rather than extrapolating.
func photochemicalLimit(bEff float64) float64 {
	return photochemicalDoseJm2 / bEff
}

// hazardMargin is the limit/exposure ratio; zero exposure means no
// hazard and an infinite margin.
func hazardMargin(limit, exposure float64) float64 {
	if exposure == 0 {
		return math.Inf(1)
	}
	return limit / exposure
}

// safeDuration solves exposure(t) = limit(t) for t at the given power.
// The limit formulas are time-dependent, so the governing equation is
// inverted rather than scaling the requested duration by the margin.
func safeDuration(governing Hazard, eff EffectiveWeighting, powerW float64) float64 {
	if powerW == 0 {
		return math.Inf(1)
	}
	if governing == HazardPhotochemical {
		// P·t/A = doseLimit/B  →  t = doseLimit·A/(B·P)
		return photochemicalDoseJm2 * SpotAreaM2 / (eff.BEff * powerW)
	}
	// P·t/A = c·t^0.75/(R·A)  →  t^(1/4) = c/(R·P)
	root := thermalLimitCoeffJ / (eff.REff * powerW)
	return root * root * root * root
}

func checkFinite(l HazardLimits) error {
	for _, v := range [...]float64{
		l.ThermalExposure, l.ThermalLimit,
		l.PhotochemicalExposure, l.PhotochemicalLimit,
	} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return fmt.Errorf("%w: %g", ErrNumericOverflow, v)
		}
	}
	return nil
}
