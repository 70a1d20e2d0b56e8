package endf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Marker prefixes matched against the start of each line. Any line not
// starting with one of these is ignored.
const (
	halfLifeMarker  = "Parent half-life"
	decayModeMarker = "Decay Mode"
)

// stableToken is the half-life value of a stable isomer.
const stableToken = "STABLE"

// rateScales converts a decay rate computed from a raw half-life value into
// per-second units, keyed by the half-life unit token.
var rateScales = map[string]float64{
	"PS": 1e12,
	"NS": 1e9,
	"US": 1e6,
	"MS": 1e3,
	"S":  1,
	"M":  1.0 / 60,
	"H":  1 / 3.6e3,
	"D":  1 / 8.64e4,
	"Y":  1 / 3.1536e7,
}

// nuclideChange is the shift in nuclear data caused by one decay step.
type nuclideChange struct {
	atomicNumber int
	atomicMass   int
}

// decayModes maps decay-mode codes to the resulting nuclide change.
var decayModes = map[string]nuclideChange{
	"A":  {atomicNumber: -2, atomicMass: -4}, // alpha
	"B-": {atomicNumber: 1, atomicMass: 0},   // beta-minus
	"EC": {atomicNumber: -1, atomicMass: 0},  // electron capture
}

// parseHalfLife scans lines for the parent half-life marker and returns the
// decay rate in 1/s. A stable parent returns stable = true with a zero rate.
func parseHalfLife(lines []string) (decayRate float64, stable bool, err error) {
	line, ok := findMarkerLine(lines, halfLifeMarker)
	if !ok {
		return 0, false, ErrNoDecayRate
	}

	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, false, fmt.Errorf("%w: malformed half-life line %q", ErrNoDecayRate, line)
	}

	value := fields[2]
	if value == stableToken {
		return 0, true, nil
	}
	if len(fields) < 4 {
		return 0, false, fmt.Errorf("%w: half-life line %q has no unit", ErrNoDecayRate, line)
	}
	unit := fields[3]

	halfLife, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid half-life value %q", value)
	}

	scale, ok := rateScales[unit]
	if !ok {
		return 0, false, fmt.Errorf("%w %q", ErrUnknownHalfLifeUnit, unit)
	}

	return math.Ln2 / halfLife * scale, false, nil
}

// parseDecayMode scans lines for the decay mode marker and returns the
// nuclide change of the decay step.
func parseDecayMode(lines []string) (nuclideChange, error) {
	line, ok := findMarkerLine(lines, decayModeMarker)
	if !ok {
		return nuclideChange{}, ErrNoDecayMode
	}

	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nuclideChange{}, fmt.Errorf("%w: malformed decay mode line %q", ErrNoDecayMode, line)
	}

	change, ok := decayModes[fields[2]]
	if !ok {
		return nuclideChange{}, fmt.Errorf("%w %q", ErrUnknownDecayMode, fields[2])
	}

	return change, nil
}

// findMarkerLine returns the first line starting with marker.
func findMarkerLine(lines []string, marker string) (string, bool) {
	for _, line := range lines {
		if strings.HasPrefix(line, marker) {
			return line, true
		}
	}
	return "", false
}
