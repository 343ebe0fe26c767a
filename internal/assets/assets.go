// Package assets provides lookup and reading of game data files.
//
// The Source interface splits lookup (Resolve) from reading (Open) so
// that a missing file can be distinguished from a file that exists but
// cannot be read. Implementations cover the OS file system with search
// paths (DirSource) and an in-memory store for tests (MemSource).
package assets

import (
	"errors"
	"io"
)

// ErrNotFound is returned by Resolve when no search path contains the asset.
var ErrNotFound = errors.New("asset not found")

// Ref identifies a resolved asset.
type Ref struct {
	// Path is the virtual path the asset was requested under.
	Path string
	// Location is the implementation-specific location of the content.
	Location string
	// Size is the content size in bytes, when known.
	Size int64
}

// Source resolves virtual asset paths to readable content.
type Source interface {
	// Resolve looks up a virtual path. Returns ErrNotFound if no
	// content exists for it.
	Resolve(path string) (Ref, error)

	// Open opens the content of a previously resolved ref for reading.
	// Open may fail even after a successful Resolve (the file may have
	// been removed or become unreadable in between).
	Open(ref Ref) (io.ReadCloser, error)
}

// ReadFile resolves and fully reads a virtual path from the source.
func ReadFile(src Source, path string) ([]byte, error) {
	ref, err := src.Resolve(path)
	if err != nil {
		return nil, err
	}
	rc, err := src.Open(ref)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
