package assets

import (
	"bytes"
	"io"
	"sync"
)

// MemSource is an in-memory asset source, primarily for tests.
//
// MemSource is safe for concurrent use.
type MemSource struct {
	mu      sync.RWMutex
	files   map[string][]byte
	openErr map[string]error
}

// NewMemSource creates an empty in-memory source.
func NewMemSource() *MemSource {
	return &MemSource{
		files:   make(map[string][]byte),
		openErr: make(map[string]error),
	}
}

// Ensure MemSource implements Source.
var _ Source = (*MemSource)(nil)

// Add stores content under a virtual path.
func (m *MemSource) Add(path string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = content
}

// FailOpen makes Open fail with err for a path that still resolves.
// Used to exercise the resolved-but-unreadable case.
func (m *MemSource) FailOpen(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[path]; !ok {
		m.files[path] = nil
	}
	m.openErr[path] = err
}

// Resolve looks the virtual path up in the store.
func (m *MemSource) Resolve(path string) (Ref, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	content, ok := m.files[path]
	if !ok {
		return Ref{}, ErrNotFound
	}
	return Ref{Path: path, Location: path, Size: int64(len(content))}, nil
}

// Open returns a reader over the stored content.
func (m *MemSource) Open(ref Ref) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err, ok := m.openErr[ref.Path]; ok {
		return nil, err
	}
	content, ok := m.files[ref.Path]
	if !ok {
		return nil, ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}
