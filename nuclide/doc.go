// Package nuclide converts among the three identifier forms of an isomer:
// the structured nuclear data (atomic number, atomic mass, energy state),
// the human-readable isomer name, and the decay-data filename.
//
// The three forms encode the same information:
//
//	Nuclide{AtomicNumber: 27, AtomicMass: 60, EnergyState: 1}
//	"Co60m1"
//	"dec-027_Co_060m1.endf"
//
// Conversions are pure and stateless, and every pair of conversions is an
// exact inverse for valid element symbols and energy states >= 0. The
// filename form carries fixed-width 3-digit atomic number and atomic mass
// fields; values of 1000 or more do not occur for known elements and are
// outside the supported range of the format.
//
// An energy state of 0 denotes the ground state and is never rendered: the
// "m<state>" suffix appears only for excited states, so "Co60" and an
// explicit ground-state tuple are the same identifier.
//
// Usage Example:
//
//	n, _ := nuclide.FromName("Co60m1")
//	fn, _ := n.Filename() // "dec-027_Co_060m1.endf"
//
//	back, _ := nuclide.FromFilename(fn)
//	name, _ := back.Name() // "Co60m1"
package nuclide
