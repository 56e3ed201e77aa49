package config

// Default configuration values.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Defaults returns the default configuration as dotted keys for confloader.
func Defaults() map[string]any {
	d := Default()
	return map[string]any{
		"log.level":  d.Log.Level,
		"log.format": d.Log.Format,
	}
}
