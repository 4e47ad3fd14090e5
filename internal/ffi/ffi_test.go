package ffi

import (
	"strings"
	"testing"
)

func TestSearchPathsOrder(t *testing.T) {
	t.Setenv("RATATUI_FFI_LIB", "/env/liboverride.so")

	paths := searchPaths("/explicit/lib.so")
	if len(paths) < 2 {
		t.Fatalf("too few search paths: %v", paths)
	}
	if paths[0] != "/explicit/lib.so" {
		t.Errorf("paths[0] = %q, want the explicit override first", paths[0])
	}
	if paths[1] != "/env/liboverride.so" {
		t.Errorf("paths[1] = %q, want the env override second", paths[1])
	}
	// System search by bare name comes after bundled locations.
	name := libraryName()
	found := false
	for _, p := range paths {
		if p == name {
			found = true
		}
	}
	if !found {
		t.Errorf("bare %q missing from search paths %v", name, paths)
	}
}

func TestSearchPathsNoOverride(t *testing.T) {
	t.Setenv("RATATUI_FFI_LIB", "")
	paths := searchPaths("")
	for _, p := range paths {
		if p == "" {
			t.Errorf("empty candidate in %v", paths)
		}
	}
}

func TestLibraryName(t *testing.T) {
	name := libraryName()
	if !strings.Contains(name, "ratatui_ffi") {
		t.Errorf("libraryName() = %q", name)
	}
}

func TestLoadErrorMessageNamesSearchOrder(t *testing.T) {
	err := &LoadError{Paths: []string{"/a.so", "/b.so"}}
	msg := err.Error()
	if !strings.Contains(msg, "/a.so") || !strings.Contains(msg, "/b.so") {
		t.Errorf("LoadError message %q does not name the search order", msg)
	}
}

func TestCString(t *testing.T) {
	buf, ptr := cString("hi")
	if ptr == 0 {
		t.Fatal("nil pointer for non-empty string")
	}
	if len(buf) != 3 || buf[2] != 0 {
		t.Errorf("buffer = %v, want NUL-terminated", buf)
	}
}
