package endf

import (
	"errors"
	"io/fs"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/isodata/go-endf/logger"
	"github.com/isodata/go-endf/nuclide"
)

// Library is a cache of loaded isomer records backed by a directory of
// decay-data files.
//
// Loads of the same isomer are idempotent, so records are loaded at most
// once and shared between callers. A Library is safe for concurrent use;
// distinct isomers may be loaded in parallel with no coordination.
type Library struct {
	dir    string
	cache  *xsync.MapOf[string, *Isomer]
	logger logger.Logger
}

// LibraryOption configures a Library; see the With* functions.
type LibraryOption func(*Library)

// WithDataDir sets the directory containing the decay-data files.
// Defaults to the working directory.
func WithDataDir(dir string) LibraryOption {
	return func(l *Library) {
		l.dir = dir
	}
}

// WithLogger sets the logger used by the Library.
// Defaults to the package default logger.
func WithLogger(log logger.Logger) LibraryOption {
	return func(l *Library) {
		l.logger = log
	}
}

// NewLibrary creates a Library with the given options applied in order.
func NewLibrary(opts ...LibraryOption) *Library {
	lib := &Library{
		cache:  xsync.NewMapOf[string, *Isomer](),
		logger: logger.GetLogger(),
	}

	for _, opt := range opts {
		opt(lib)
	}

	return lib
}

// Isomer returns the record for the named isomer, loading its decay-data
// file on first use. Failed loads are not cached; static data files fail
// identically on retry, so there is nothing to invalidate.
func (l *Library) Isomer(name string) (*Isomer, error) {
	if iso, ok := l.cache.Load(name); ok {
		return iso, nil
	}

	iso, err := Load(name, l.dir)
	if err != nil {
		return nil, err
	}

	// Concurrent first loads may race here; records are immutable and
	// equivalent, so either copy may win.
	l.cache.Store(name, iso)
	l.logger.Debug("loaded decay data", "isomer", name, "stable", iso.Stable())

	return iso, nil
}

// IsomerFromFilename returns the record for the isomer identified by a
// decay-data filename, loading it on first use.
func (l *Library) IsomerFromFilename(filename string) (*Isomer, error) {
	name, err := nuclide.NameFromFilename(filename)
	if err != nil {
		return nil, err
	}

	return l.Isomer(name)
}

// Chain returns the decay chain starting at the named isomer: the record
// for the isomer itself followed by the records of successive daughters.
//
// The walk stops at a stable isomer, at a daughter whose decay-data file is
// absent from the library directory, or at a daughter already in the chain
// (electron capture and beta-minus can close a loop between neighbors).
// Any other load failure aborts the walk with an error.
func (l *Library) Chain(name string) ([]*Isomer, error) {
	var chain []*Isomer
	seen := make(map[string]bool)

	for {
		if seen[name] {
			return chain, nil
		}

		iso, err := l.Isomer(name)
		if errors.Is(err, fs.ErrNotExist) && len(chain) > 0 {
			l.logger.Warn("decay chain truncated, no data file for daughter", "isomer", name)
			return chain, nil
		}
		if err != nil {
			return nil, err
		}

		chain = append(chain, iso)
		seen[name] = true

		if iso.Stable() {
			return chain, nil
		}

		name, err = iso.DaughterName()
		if err != nil {
			return nil, err
		}
	}
}
