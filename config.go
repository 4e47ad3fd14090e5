package ratatui

import (
	"log"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// Config controls how the native library is located. Everything is
// optional; the zero value means "use the default search order".
type Config struct {
	// LibPath points directly at the native shared library.
	LibPath string `toml:"lib_path"`
	// SourcePath points at a ratatui_ffi source checkout to build from when
	// no prebuilt artifact is available.
	SourcePath string `toml:"source_path"`
	// Version selects a ratatui_ffi tag when the source is fetched remotely.
	Version string `toml:"version"`
}

const configFile = "ratatui.toml"

// LoadConfig reads ratatui.toml from the working directory and then from
// the executable's directory, with environment variables taking precedence
// over both. A missing file is not an error.
func LoadConfig() Config {
	var cfg Config
	for _, path := range configPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var parsed Config
		if err := toml.Unmarshal(data, &parsed); err != nil {
			log.Printf("ffi: ignoring malformed %s: %v", path, err)
			continue
		}
		cfg = parsed
		break
	}
	if v := os.Getenv("RATATUI_FFI_LIB"); v != "" {
		cfg.LibPath = v
	}
	if v := os.Getenv("RATATUI_FFI_SOURCE"); v != "" {
		cfg.SourcePath = v
	}
	if v := os.Getenv("RATATUI_FFI_VERSION"); v != "" {
		cfg.Version = v
	}
	return cfg
}

func configPaths() []string {
	paths := []string{configFile}
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), configFile))
	}
	return paths
}
