// Package element provides the static bidirectional mapping between atomic
// numbers and element symbols used for nuclide naming.
//
// The table covers the full periodic table, hydrogen (1) through
// oganesson (118). Both lookup directions fail with an error for inputs
// outside the table; callers are expected to treat those failures as
// unknown-nuclide conditions rather than recover from them.
package element

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAtomicNumber indicates that an atomic number has no entry in
	// the periodic table. Valid atomic numbers are in the range of 1 to 118.
	ErrUnknownAtomicNumber = errors.New("unknown atomic number")

	// ErrUnknownSymbol indicates that an element symbol has no entry in the
	// periodic table. Symbols are case-sensitive, e.g. "Co", not "CO".
	ErrUnknownSymbol = errors.New("unknown element symbol")
)

// symbols is indexed by atomic number; index 0 is unused.
var symbols = [...]string{
	"",
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

var atomicNumbers = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for z := 1; z < len(symbols); z++ {
		m[symbols[z]] = z
	}
	return m
}()

// MaxAtomicNumber is the largest atomic number in the table.
const MaxAtomicNumber = len(symbols) - 1

// Symbol returns the element symbol for an atomic number.
//
// It returns ErrUnknownAtomicNumber if the atomic number is outside the
// range of [1, MaxAtomicNumber].
func Symbol(atomicNumber int) (string, error) {
	if atomicNumber < 1 || atomicNumber >= len(symbols) {
		return "", fmt.Errorf("%w: %d", ErrUnknownAtomicNumber, atomicNumber)
	}
	return symbols[atomicNumber], nil
}

// AtomicNumber returns the atomic number for an element symbol.
//
// It returns ErrUnknownSymbol if the symbol has no entry in the table.
func AtomicNumber(symbol string) (int, error) {
	z, ok := atomicNumbers[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return z, nil
}
