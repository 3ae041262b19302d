package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadRequest(t *testing.T) {
	in := strings.NewReader("450\n5u\n100m\n")
	var out bytes.Buffer

	req, err := NewPrompter(in, &out).ReadRequest()
	if err != nil {
		t.Fatalf("ReadRequest failed: %v", err)
	}
	if req.WavelengthNm != 450 {
		t.Errorf("wavelength = %v, want 450", req.WavelengthNm)
	}
	if req.PowerW != 5e-6 {
		t.Errorf("power = %v, want 5e-6", req.PowerW)
	}
	if req.DurationS != 0.1 {
		t.Errorf("duration = %v, want 0.1", req.DurationS)
	}
}

func TestReadRequest_RepromptsOnBadInput(t *testing.T) {
	// First wavelength is out of band, second is malformed, third is
	// accepted.
	in := strings.NewReader("650\nabc\n450\n5u\n100m\n")
	var out bytes.Buffer

	req, err := NewPrompter(in, &out).ReadRequest()
	if err != nil {
		t.Fatalf("ReadRequest failed: %v", err)
	}
	if req.WavelengthNm != 450 {
		t.Errorf("wavelength = %v, want 450", req.WavelengthNm)
	}
	if !strings.Contains(out.String(), "try again") {
		t.Errorf("expected a re-prompt message, got %q", out.String())
	}
}

func TestReadRequest_EOF(t *testing.T) {
	in := strings.NewReader("450\n")
	var out bytes.Buffer

	_, err := NewPrompter(in, &out).ReadRequest()
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}
