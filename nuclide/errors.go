package nuclide

import "errors"

var (
	// ErrInvalidName indicates that an isomer name could not be parsed.
	// A valid name is an element symbol followed by the atomic mass and an
	// optional "m<state>" suffix, e.g. "Co60" or "Co60m1".
	ErrInvalidName = errors.New("invalid isomer name")

	// ErrInvalidFilename indicates that a decay-data filename could not be
	// parsed. A valid filename has the form "dec-<NNN>_<Sym>_<MMM>[m<K>].endf"
	// with 3-digit zero-padded atomic number and atomic mass fields.
	ErrInvalidFilename = errors.New("invalid decay data filename")
)
