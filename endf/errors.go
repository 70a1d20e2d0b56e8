package endf

import "errors"

var (
	// ErrNoDecayRate indicates that the decay-data file contains no parent
	// half-life line.
	ErrNoDecayRate = errors.New("no decay rate in this file")

	// ErrUnknownHalfLifeUnit indicates that the half-life unit token is not
	// in the unit table. Known units are PS, NS, US, MS, S, M, H, D and Y.
	ErrUnknownHalfLifeUnit = errors.New("unknown half-life unit")

	// ErrNoDecayMode indicates that the decay-data file of an unstable
	// isomer contains no decay mode line.
	ErrNoDecayMode = errors.New("no decay mode in this file")

	// ErrUnknownDecayMode indicates that the decay-mode code is not in the
	// mode table. Known codes are A (alpha), B- (beta-minus) and EC
	// (electron capture).
	ErrUnknownDecayMode = errors.New("unknown decay mode")
)
