package domain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// Wavelength band covered by the ISO 15004-2:2025 small-spot weighting tables.
const (
	MinWavelengthNm = 400.0
	MaxWavelengthNm = 500.0
)

// WeightingKnot is one tabulated point of the ISO spectral weighting
// functions: the thermal weighting R(λ) and the blue-light photochemical
// weighting B(λ) at a standard wavelength.
type WeightingKnot struct {
	WavelengthNm float64
	R            float64
	B            float64
}

// WeightingTable holds the ISO 15004-2:2025 R(λ)/B(λ) values at the
// standard's tabulated wavelengths, ordered by wavelength. It is exposed
// as data so it can be checked against the published standard
// independently of the interpolation code.
var WeightingTable = []WeightingKnot{
	{400, 2.0, 0.060},
	{410, 2.0, 0.180},
	{420, 2.0, 0.900},
	{430, 2.0, 0.980},
	{440, 2.0, 0.970},
	{450, 2.0, 0.940},
	{455, 2.0, 0.900},
	{460, 2.0, 0.800},
	{470, 2.0, 0.630},
	{480, 2.0, 0.550},
	{490, 2.0, 0.420},
	{500, 2.0, 0.320},
}

// WeightingFactors are the raw weighting values at a wavelength, before
// any duration-dependent substitution.
type WeightingFactors struct {
	R float64
	B float64
}

// EffectiveWeighting are the weighting values that feed the limit
// formulas, after the substitution rules. Only R is ever substituted.
type EffectiveWeighting struct {
	REff float64
	BEff float64
}

// Substitution regime boundaries. Both comparisons are strict: an
// exposure of exactly 1e-11 s or exactly 10 s is not substituted.
const (
	ultrashortRegimeS = 1e-11
	continuousRegimeS = 10.0
)

// Interpolators over ln-weighting values, fitted once from the table.
var (
	lnRCurve interp.PiecewiseLinear
	lnBCurve interp.PiecewiseLinear
)

func init() {
	xs := make([]float64, len(WeightingTable))
	lnR := make([]float64, len(WeightingTable))
	lnB := make([]float64, len(WeightingTable))
	for i, k := range WeightingTable {
		xs[i] = k.WavelengthNm
		lnR[i] = math.Log(k.R)
		lnB[i] = math.Log(k.B)
	}
	// Fit fails only on unsorted or mismatched slices; the table is
	// fixed, so a failure here is a programming error.
	if err := lnRCurve.Fit(xs, lnR); err != nil {
		panic(err)
	}
	if err := lnBCurve.Fit(xs, lnB); err != nil {
		panic(err)
	}
}

// WeightingAt evaluates R(λ) and B(λ) at the given wavelength.
// Values between tabulated wavelengths are log-linearly interpolated;
// tabulated wavelengths reproduce the table values exactly.
func WeightingAt(wavelengthNm float64) (WeightingFactors, error) {
	if !(wavelengthNm >= MinWavelengthNm && wavelengthNm <= MaxWavelengthNm) {
		return WeightingFactors{}, fmt.Errorf("%w: %g nm", ErrInvalidWavelength, wavelengthNm)
	}

	for _, k := range WeightingTable {
		if k.WavelengthNm == wavelengthNm {
			return WeightingFactors{R: k.R, B: k.B}, nil
		}
	}

	return WeightingFactors{
		R: math.Exp(lnRCurve.Predict(wavelengthNm)),
		B: math.Exp(lnBCurve.Predict(wavelengthNm)),
	}, nil
}

// Effective applies the duration-dependent substitution rules: for
// ultrashort exposures a raw R below unity is raised to 1, and for
// long/continuous exposures a raw R above unity is lowered to 1. B is
// never substituted.
func (w WeightingFactors) Effective(durationS float64) EffectiveWeighting {
	r := w.R
	switch {
	case durationS < ultrashortRegimeS && r < 1:
		r = 1
	case durationS > continuousRegimeS && r > 1:
		r = 1
	}
	return EffectiveWeighting{REff: r, BEff: w.B}
}
