// Package endf loads per-isomer decay parameters from ENDF decay-data
// files, one file per isomer, named per the convention implemented by the
// nuclide package.
//
// Key Features:
//   - Record Loading: reads a decay-data file and extracts the parent
//     half-life and decay mode, normalizing the half-life to a per-second
//     decay-rate constant (ln 2 / half-life).
//   - Nuclide Transformation: maps the decay-mode code to the change in
//     atomic number and atomic mass, from which the daughter isomer name is
//     derived (always at ground state).
//   - Library: a concurrency-safe cache of loaded records with decay-chain
//     traversal.
//
// Records are immutable once loaded; construction either fully succeeds or
// fails with an error naming the unmet expectation. Stable isomers carry a
// zero decay rate and zero nuclide change, and their files need no decay
// mode line.
//
// Usage Example:
//
//	iso, err := endf.Load("Co60", "data/decay")
//	if err != nil {
//	    // missing file, unparseable record or unknown isomer name
//	}
//
//	rate := iso.DecayRate()          // ln(2) / half-life, in 1/s
//	daughter, _ := iso.DaughterName() // "Ni60"
package endf
