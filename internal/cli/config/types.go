// Package config provides configuration management for the zenjs CLI.
//
// Configuration is layered: built-in defaults, then an optional zenjs.yaml
// project file, then ZENJS_-prefixed environment variables, then CLI flags.
package config

// Default configuration values.
const (
	DefaultSrcDir = "src"
	DefaultOutDir = "dist"
	DefaultOutput = "auto"
)

// Config holds all CLI configuration options.
type Config struct {
	SrcDir       string `koanf:"src_dir"`
	OutDir       string `koanf:"out_dir"`
	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`

	// ProjectRoot is the directory all relative paths resolve against.
	// It is derived at load time, not read from the config file.
	ProjectRoot string `koanf:"-"`
}

// DefaultConfig returns a Config populated with default values.
func DefaultConfig() *Config {
	return &Config{
		SrcDir:       DefaultSrcDir,
		OutDir:       DefaultOutDir,
		OutputFormat: DefaultOutput,
	}
}
