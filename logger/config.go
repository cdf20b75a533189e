package logger

// Config controls log output.
// Loadable from YAML/env via mapstructure tags.
type Config struct {
	// Level is the minimum level to emit (default: "info").
	Level string `mapstructure:"level"`

	// Format is "json" or "console" (default: "json").
	Format string `mapstructure:"format"`

	// Output is "stdout" or "stderr" (default: "stdout").
	Output string `mapstructure:"output"`

	// Timestamp adds a timestamp field to every event (default: true).
	Timestamp bool `mapstructure:"timestamp"`

	// NoColor disables ANSI colors in console format.
	NoColor bool `mapstructure:"no_color"`
}

// ApplyDefaults sets sensible defaults for zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "json"
	}
	if c.Output == "" {
		c.Output = "stdout"
	}
}
