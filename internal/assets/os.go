package assets

import (
	"io"
	"os"
	"path/filepath"
)

// DirSource resolves assets against a list of directories on the OS
// file system, in order. The first directory containing the virtual
// path wins, so an earlier directory can override a later one.
type DirSource struct {
	dirs []string
}

// NewDirSource creates a source searching the given directories in order.
func NewDirSource(dirs ...string) *DirSource {
	return &DirSource{dirs: dirs}
}

// Ensure DirSource implements Source.
var _ Source = (*DirSource)(nil)

// AddDir appends a directory to the search list.
func (s *DirSource) AddDir(dir string) {
	s.dirs = append(s.dirs, dir)
}

// Resolve looks the virtual path up in each search directory.
func (s *DirSource) Resolve(path string) (Ref, error) {
	for _, dir := range s.dirs {
		full := filepath.Join(dir, filepath.FromSlash(path))
		info, err := os.Stat(full)
		if err != nil || info.IsDir() {
			continue
		}
		return Ref{Path: path, Location: full, Size: info.Size()}, nil
	}
	return Ref{}, ErrNotFound
}

// Open opens the resolved file.
func (s *DirSource) Open(ref Ref) (io.ReadCloser, error) {
	return os.Open(ref.Location)
}
