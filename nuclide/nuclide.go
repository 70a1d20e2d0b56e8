package nuclide

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/isodata/go-endf/element"
)

const (
	filenamePrefix = "dec-"
	filenameExt    = ".endf"
)

// Nuclide identifies a single isomer by its nuclear data.
//
// EnergyState 0 is the ground state; positive values index excited
// (metastable) states.
type Nuclide struct {
	AtomicNumber int
	AtomicMass   int
	EnergyState  int
}

// Name returns the isomer name, e.g. "Co60" or "Co60m1".
//
// The "m<state>" suffix is appended only for a nonzero energy state; the
// ground state renders without a suffix.
//
// It returns element.ErrUnknownAtomicNumber if the atomic number has no
// element symbol.
func (n Nuclide) Name() (string, error) {
	symbol, err := element.Symbol(n.AtomicNumber)
	if err != nil {
		return "", err
	}

	name := symbol + strconv.Itoa(n.AtomicMass)
	if n.EnergyState != 0 {
		name += "m" + strconv.Itoa(n.EnergyState)
	}

	return name, nil
}

// Filename returns the decay-data filename, e.g. "dec-027_Co_060m1.endf".
//
// The atomic number and atomic mass fields are zero-padded to 3 digits.
// Values of 1000 or more overflow the fixed field widths and are not
// validated; they cannot occur for known elements.
func (n Nuclide) Filename() (string, error) {
	symbol, err := element.Symbol(n.AtomicNumber)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s%03d_%s_%03d", filenamePrefix, n.AtomicNumber, symbol, n.AtomicMass)
	if n.EnergyState != 0 {
		filename += "m" + strconv.Itoa(n.EnergyState)
	}

	return filename + filenameExt, nil
}

// FromName parses an isomer name into its nuclear data.
//
// The element symbol is the maximal non-digit prefix of the name; the
// remainder is the atomic mass, optionally followed by "m<state>". A name
// without an "m" segment is a ground-state isomer.
//
// It returns ErrInvalidName if the name has no numeric tail or the tail is
// malformed, and element.ErrUnknownSymbol if the symbol is not a known
// element.
func FromName(name string) (Nuclide, error) {
	tailStart := -1
	for i, r := range name {
		if unicode.IsDigit(r) {
			tailStart = i
			break
		}
	}
	if tailStart <= 0 {
		return Nuclide{}, fmt.Errorf("%w: %q has no element symbol and atomic mass", ErrInvalidName, name)
	}

	atomicNumber, err := element.AtomicNumber(name[:tailStart])
	if err != nil {
		return Nuclide{}, err
	}

	atomicMass, energyState, err := parseMassState(name[tailStart:])
	if err != nil {
		return Nuclide{}, fmt.Errorf("%w: %q: %s", ErrInvalidName, name, err)
	}

	return Nuclide{AtomicNumber: atomicNumber, AtomicMass: atomicMass, EnergyState: energyState}, nil
}

// FromFilename parses a decay-data filename into its nuclear data.
//
// The atomic number is read from the fixed 3-digit field at byte offsets
// 4 to 6, immediately after the "dec-" prefix. The atomic mass and energy
// state come from the third underscore-delimited segment with the ".endf"
// suffix stripped.
//
// It returns ErrInvalidFilename if either field is absent or malformed.
func FromFilename(filename string) (Nuclide, error) {
	if len(filename) < len(filenamePrefix)+3 {
		return Nuclide{}, fmt.Errorf("%w: %q is too short", ErrInvalidFilename, filename)
	}

	atomicNumber, err := strconv.Atoi(filename[4:7])
	if err != nil {
		return Nuclide{}, fmt.Errorf("%w: %q: bad atomic number field", ErrInvalidFilename, filename)
	}

	segments := strings.Split(filename, "_")
	if len(segments) < 3 {
		return Nuclide{}, fmt.Errorf("%w: %q has no atomic mass segment", ErrInvalidFilename, filename)
	}

	atomicMass, energyState, err := parseMassState(strings.TrimSuffix(segments[2], filenameExt))
	if err != nil {
		return Nuclide{}, fmt.Errorf("%w: %q: %s", ErrInvalidFilename, filename, err)
	}

	return Nuclide{AtomicNumber: atomicNumber, AtomicMass: atomicMass, EnergyState: energyState}, nil
}

// FilenameFromName converts an isomer name to its decay-data filename.
func FilenameFromName(name string) (string, error) {
	n, err := FromName(name)
	if err != nil {
		return "", err
	}
	return n.Filename()
}

// NameFromFilename converts a decay-data filename to its isomer name.
func NameFromFilename(filename string) (string, error) {
	n, err := FromFilename(filename)
	if err != nil {
		return "", err
	}
	return n.Name()
}

// parseMassState splits a "<mass>[m<state>]" segment. A segment without an
// "m" separator is a ground-state isomer with energy state 0.
func parseMassState(segment string) (int, int, error) {
	massStr, stateStr, hasState := strings.Cut(segment, "m")

	atomicMass, err := strconv.Atoi(massStr)
	if err != nil {
		return 0, 0, fmt.Errorf("bad atomic mass %q", massStr)
	}

	energyState := 0
	if hasState {
		energyState, err = strconv.Atoi(stateStr)
		if err != nil {
			return 0, 0, fmt.Errorf("bad energy state %q", stateStr)
		}
	}

	return atomicMass, energyState, nil
}
