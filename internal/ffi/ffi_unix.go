//go:build darwin || linux

package ffi

import (
	"github.com/ebitengine/purego"
)

// openLibrary loads a dynamic library on Unix-like systems.
func openLibrary(path string) (uintptr, error) {
	const RTLD_LAZY = 0x1
	return purego.Dlopen(path, RTLD_LAZY)
}
