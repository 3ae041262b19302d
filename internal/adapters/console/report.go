package console

import (
	"fmt"
	"io"
	"math"

	"github.com/quentinrf/photic-safety/internal/domain"
)

// WriteReport renders an evaluation in the sectioned console format.
// pulse may be nil when no pulse-train check was requested.
func WriteReport(w io.Writer, res *domain.EvaluationResult, pulse *domain.PulseResult) {
	fmt.Fprintln(w, "=== ISO 15004-2:2025 Small-Spot Photic Hazard Evaluation ===")
	fmt.Fprintf(w, "Wavelength (nm):            %.4g\n", res.Request.WavelengthNm)
	fmt.Fprintf(w, "Exposure time (s):          %.3g\n", res.Request.DurationS)
	fmt.Fprintf(w, "Power at pupil (W):         %.3g\n", res.Request.PowerW)
	fmt.Fprintf(w, "Spot diameter (mm):         %.2f (fixed small-spot)\n", domain.SpotDiameterMm)

	fmt.Fprintln(w, "\n--- Spectral weighting ---")
	fmt.Fprintf(w, "R(λ) raw / effective:       %.3f / %.3f\n", res.Weighting.R, res.Effective.REff)
	fmt.Fprintf(w, "B(λ):                       %.3f\n", res.Effective.BEff)

	fmt.Fprintln(w, "\n--- Thermal hazard ---")
	fmt.Fprintf(w, "Radiant exposure (J/m²):    %.3e\n", res.Limits.ThermalExposure)
	fmt.Fprintf(w, "Group 1 limit (J/m²):       %.3e\n", res.Limits.ThermalLimit)
	fmt.Fprintf(w, "Margin:                     %s\n",
		formatMargin(res.Limits.ThermalLimit/res.Limits.ThermalExposure))

	fmt.Fprintln(w, "\n--- Photochemical hazard ---")
	fmt.Fprintf(w, "Radiant exposure (J/m²):    %.3e\n", res.Limits.PhotochemicalExposure)
	fmt.Fprintf(w, "Group 1 limit (J/m²):       %.3e\n", res.Limits.PhotochemicalLimit)
	fmt.Fprintf(w, "Margin:                     %s\n",
		formatMargin(res.Limits.PhotochemicalLimit/res.Limits.PhotochemicalExposure))

	if pulse != nil {
		fmt.Fprintln(w, "\n--- Single-pulse check ---")
		fmt.Fprintf(w, "Pulse energy (J):           %.3e\n", pulse.PulseEnergyJ)
		fmt.Fprintf(w, "Weighted pulse (J):         %.3e\n", pulse.WeightedEnergyJ)
		fmt.Fprintf(w, "Limit (J):                  %.2e\n", pulse.LimitJ)
		fmt.Fprintf(w, "Margin:                     %s\n", formatMargin(pulse.Margin))
	}

	fmt.Fprintf(w, "\nGoverning hazard:           %s\n", res.GoverningHazard)
	fmt.Fprintf(w, "Margin:                     %s\n", formatMargin(res.Margin))
	fmt.Fprintf(w, "Safe exposure time (s):     %s\n", formatDuration(res.SafeDurationS))
	fmt.Fprintln(w, "============================================================")
}

func formatMargin(margin float64) string {
	if math.IsInf(margin, 1) {
		return "no hazard (zero exposure)"
	}
	return fmt.Sprintf("%.1f × below limit", margin)
}

func formatDuration(seconds float64) string {
	if math.IsInf(seconds, 1) {
		return "unlimited"
	}
	return fmt.Sprintf("%.3e", seconds)
}
