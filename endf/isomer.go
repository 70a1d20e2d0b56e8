package endf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/isodata/go-endf/nuclide"
)

// Isomer holds the decay parameters of a single isomer, loaded from its
// decay-data file. An Isomer is immutable once constructed.
type Isomer struct {
	name    string
	nuclide nuclide.Nuclide

	stable    bool
	decayRate float64
	change    nuclideChange
}

// Load reads and parses the decay-data file for the isomer with the given
// name. The file is resolved as <dir>/<filename> when dir is non-empty,
// else the filename alone is used.
//
// The whole file is read and closed before parsing starts. Construction
// either fully succeeds or fails: an unknown name fails with a codec or
// element lookup error, a missing file with the underlying I/O error, and a
// file missing a required line (or carrying an unknown unit or decay-mode
// code) with a data-format error naming the unmet expectation.
func Load(name string, dir string) (*Isomer, error) {
	n, err := nuclide.FromName(name)
	if err != nil {
		return nil, err
	}

	filename, err := n.Filename()
	if err != nil {
		return nil, err
	}

	path := filename
	if dir != "" {
		path = filepath.Join(dir, filename)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read decay data: %w", err)
	}

	iso := &Isomer{name: name, nuclide: n}

	lines := strings.Split(string(data), "\n")

	iso.decayRate, iso.stable, err = parseHalfLife(lines)
	if err != nil {
		return nil, err
	}

	// A stable parent has no decay step; its file carries no decay mode.
	if iso.stable {
		return iso, nil
	}

	iso.change, err = parseDecayMode(lines)
	if err != nil {
		return nil, err
	}

	return iso, nil
}

// LoadFile reads and parses the decay-data file with the given filename,
// resolving the isomer name from the filename first. The dir parameter
// behaves as in Load.
func LoadFile(filename string, dir string) (*Isomer, error) {
	name, err := nuclide.NameFromFilename(filename)
	if err != nil {
		return nil, err
	}

	return Load(name, dir)
}

// Name returns the isomer name, e.g. "Co60m1".
func (i *Isomer) Name() string {
	return i.name
}

// AtomicNumber returns the atomic number of the isomer.
func (i *Isomer) AtomicNumber() int {
	return i.nuclide.AtomicNumber
}

// AtomicMass returns the atomic mass of the isomer.
func (i *Isomer) AtomicMass() int {
	return i.nuclide.AtomicMass
}

// EnergyState returns the energy state of the isomer; 0 is the ground
// state.
func (i *Isomer) EnergyState() int {
	return i.nuclide.EnergyState
}

// Stable reports whether the isomer is stable.
func (i *Isomer) Stable() bool {
	return i.stable
}

// DecayRate returns the decay-rate constant of the isomer in units of 1/s.
// It is 0 for a stable isomer.
func (i *Isomer) DecayRate() float64 {
	return i.decayRate
}

// DecayAtomicNumberChange returns the change in atomic number caused by one
// decay step. It is 0 for a stable isomer.
func (i *Isomer) DecayAtomicNumberChange() int {
	return i.change.atomicNumber
}

// DecayAtomicMassChange returns the change in atomic mass caused by one
// decay step. It is 0 for a stable isomer.
func (i *Isomer) DecayAtomicMassChange() int {
	return i.change.atomicMass
}

// DaughterName returns the name of the isomer reached after one decay step.
// Decay always de-excites to the ground state, so the daughter's energy
// state is 0 regardless of the parent's.
func (i *Isomer) DaughterName() (string, error) {
	daughter := nuclide.Nuclide{
		AtomicNumber: i.nuclide.AtomicNumber + i.change.atomicNumber,
		AtomicMass:   i.nuclide.AtomicMass + i.change.atomicMass,
		EnergyState:  0,
	}

	return daughter.Name()
}

// String returns a human-readable identification of the isomer.
func (i *Isomer) String() string {
	return "Isomer data for " + i.name
}
