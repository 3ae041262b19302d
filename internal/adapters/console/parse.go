// Package console is the interactive I/O adapter: it parses
// metric-suffixed input values, prompts for evaluation parameters, and
// renders evaluation reports. All hazard logic lives in the domain
// package; this layer only converts text to numbers and back.
package console

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// siPattern matches a number with an optional metric suffix, e.g. "5u",
// "100m", "2.5".
var siPattern = regexp.MustCompile(`^([0-9.]+)\s*([tgkmunpf]?)$`)

var siScale = map[string]float64{
	"t": 1e12,
	"g": 1e9,
	"k": 1e3,
	"m": 1e-3,
	"u": 1e-6,
	"n": 1e-9,
	"p": 1e-12,
	"f": 1e-15,
	"":  1,
}

// ParseSI converts a metric-suffixed value string such as "5u" (5e-6) or
// "100m" (0.1) into a float64. Input is lowercased first, so "M" reads
// as milli; "µ" is accepted for micro.
func ParseSI(s string) (float64, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "µ", "u")
	m := siPattern.FindStringSubmatch(norm)
	if m == nil {
		return 0, fmt.Errorf("invalid value %q: expected a number with an optional metric suffix", s)
	}
	num, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number in %q: %w", s, err)
	}
	return num * siScale[m[2]], nil
}
