package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestMemSource(t *testing.T) {
	src := NewMemSource()
	src.Add("lua/init.lua", []byte("x = 1"))

	t.Run("resolve found", func(t *testing.T) {
		ref, err := src.Resolve("lua/init.lua")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if ref.Path != "lua/init.lua" {
			t.Errorf("ref.Path = %q, want %q", ref.Path, "lua/init.lua")
		}
		if ref.Size != 5 {
			t.Errorf("ref.Size = %d, want 5", ref.Size)
		}
	})

	t.Run("resolve missing", func(t *testing.T) {
		_, err := src.Resolve("lua/missing.lua")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Resolve() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("read", func(t *testing.T) {
		data, err := ReadFile(src, "lua/init.lua")
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(data) != "x = 1" {
			t.Errorf("content = %q, want %q", data, "x = 1")
		}
	})
}

func TestMemSourceFailOpen(t *testing.T) {
	src := NewMemSource()
	wantErr := errors.New("disk on fire")
	src.FailOpen("lua/cursed.lua", wantErr)

	ref, err := src.Resolve("lua/cursed.lua")
	if err != nil {
		t.Fatalf("Resolve() error = %v, want success", err)
	}

	_, err = src.Open(ref)
	if !errors.Is(err, wantErr) {
		t.Errorf("Open() error = %v, want %v", err, wantErr)
	}
}

func TestDirSource(t *testing.T) {
	base := t.TempDir()
	override := t.TempDir()

	write := func(dir, rel, content string) {
		t.Helper()
		full := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write(base, "lua/init.lua", "base init")
	write(base, "lua/user.lua", "base user")
	write(override, "lua/user.lua", "override user")

	src := NewDirSource(override, base)

	t.Run("resolves from base", func(t *testing.T) {
		data, err := ReadFile(src, "lua/init.lua")
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(data) != "base init" {
			t.Errorf("content = %q, want %q", data, "base init")
		}
	})

	t.Run("earlier directory wins", func(t *testing.T) {
		data, err := ReadFile(src, "lua/user.lua")
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(data) != "override user" {
			t.Errorf("content = %q, want %q", data, "override user")
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := src.Resolve("lua/missing.lua")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Resolve() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("directories do not resolve", func(t *testing.T) {
		_, err := src.Resolve("lua")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Resolve(%q) error = %v, want ErrNotFound", "lua", err)
		}
	})
}

func TestDirSourceAddDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.lua"), []byte("a"), 0o644); err != nil {
		t.Fatal(err)
	}

	src := NewDirSource()
	if _, err := src.Resolve("a.lua"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Resolve() before AddDir error = %v, want ErrNotFound", err)
	}

	src.AddDir(dir)
	if _, err := src.Resolve("a.lua"); err != nil {
		t.Errorf("Resolve() after AddDir error = %v", err)
	}
}
