// SPDX-License-Identifier: MPL-2.0

package config

import "cpsbridge/pkg/platform"

type (
	// Config is the tool configuration.
	Config struct {
		// DefaultCompiler selects the compile-feature table when no
		// --compiler flag is given.
		DefaultCompiler string `mapstructure:"default_compiler"`

		// DefaultPrefix replaces @prefix@ tokens in written flat files
		// when no --prefix flag is given.
		DefaultPrefix string `mapstructure:"default_prefix"`

		// PkgConfig is the external resolver binary invoked to map a
		// bare package name to a .pc file path.
		PkgConfig string `mapstructure:"pkg_config"`

		// LibraryPath lists artifact search directories consulted in
		// addition to the -L directories of the input file.
		LibraryPath []string `mapstructure:"library_path"`

		// UI holds output behavior settings.
		UI UIConfig `mapstructure:"ui"`
	}

	// UIConfig holds output behavior settings.
	UIConfig struct {
		// Verbose enables verbose diagnostic output.
		Verbose bool `mapstructure:"verbose"`
	}
)

// DefaultConfig returns the built-in defaults used when no config file or
// environment override is present.
func DefaultConfig() *Config {
	return &Config{
		DefaultCompiler: platform.GCC,
		DefaultPrefix:   "/usr",
		PkgConfig:       "pkg-config",
	}
}
