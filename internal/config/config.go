// Package config handles dungeondat tool configuration.
package config

// Config holds all tool settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Format  FormatConfig  `yaml:"format"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Dir    string `yaml:"dir"`    // directory for the generated JSON files
	Indent bool   `yaml:"indent"` // pretty-print JSON output
}

// FormatConfig selects the world-file layout variant.
type FormatConfig struct {
	// Packing is the tile cell packing: "byte" or "nibble".
	Packing string `yaml:"packing"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:    "out",
			Indent: true,
		},
		Format: FormatConfig{
			Packing: "byte",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
