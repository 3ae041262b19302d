package console

import (
	"math"
	"testing"
)

func TestParseSI(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5u", 5e-6},
		{"5µ", 5e-6},
		{"100m", 0.1},
		{"2n", 2e-9},
		{"6p", 6e-12},
		{"1.5f", 1.5e-15},
		{"3k", 3e3},
		{"2g", 2e9},
		{"4t", 4e12},
		{"450", 450},
		{"0.03", 0.03},
		{" 10 m ", 0.01},
		// Input is lowercased, so "M" reads as milli, as in the
		// original parser.
		{"5M", 5e-3},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSI(tt.in)
			if err != nil {
				t.Fatalf("ParseSI(%q) failed: %v", tt.in, err)
			}
			if math.Abs(got-tt.want) > 1e-15*math.Abs(tt.want) {
				t.Errorf("ParseSI(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSI_Invalid(t *testing.T) {
	for _, in := range []string{"", "u", "abc", "5x", "1..2", "5 watts", "-3u"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseSI(in); err == nil {
				t.Errorf("ParseSI(%q): expected error, got nil", in)
			}
		})
	}
}
