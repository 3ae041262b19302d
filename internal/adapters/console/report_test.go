package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/quentinrf/photic-safety/internal/domain"
)

func TestWriteReport(t *testing.T) {
	res, err := domain.Evaluate(domain.ExposureRequest{
		WavelengthNm: 450,
		DurationS:    0.1,
		PowerW:       5e-6,
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	var buf bytes.Buffer
	WriteReport(&buf, res, nil)
	got := buf.String()

	for _, want := range []string{
		"Small-Spot Photic Hazard Evaluation",
		"Wavelength (nm):            450",
		"Governing hazard:           Photochemical",
		"Margin:                     33.1 × below limit",
		"Safe exposure time (s):     3.309e+00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Single-pulse check") {
		t.Error("report includes pulse section without a pulse result")
	}
}

func TestWriteReport_ZeroPower(t *testing.T) {
	res, err := domain.Evaluate(domain.ExposureRequest{
		WavelengthNm: 450,
		DurationS:    1,
		PowerW:       0,
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	var buf bytes.Buffer
	WriteReport(&buf, res, nil)

	if !strings.Contains(buf.String(), "no hazard (zero exposure)") {
		t.Errorf("expected no-hazard margin line, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "Safe exposure time (s):     unlimited") {
		t.Errorf("expected unlimited safe time, got:\n%s", buf.String())
	}
}

func TestWriteReport_WithPulseCheck(t *testing.T) {
	res, err := domain.Evaluate(domain.ExposureRequest{
		WavelengthNm: 450,
		DurationS:    0.1,
		PowerW:       5e-6,
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	pulse, err := domain.EvaluatePulse(450, domain.PulseTrain{RepRateHz: 59e6, PulseDurationS: 6e-12}, 5e-6)
	if err != nil {
		t.Fatalf("EvaluatePulse failed: %v", err)
	}

	var buf bytes.Buffer
	WriteReport(&buf, res, pulse)

	for _, want := range []string{
		"--- Single-pulse check ---",
		"Limit (J):                  4.00e-08",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("report missing %q:\n%s", want, buf.String())
		}
	}
}
