package landing

import "errors"

var (
	ErrLoggingLevelInvalid  = errors.New("landing: logging level invalid")
	ErrLoggingFormatInvalid = errors.New("landing: logging format invalid")
	ErrDefaultLocaleInvalid = errors.New("landing: default country and language required")
)

// Config carries the explicit runtime configuration for the module. There is
// no implicit shared state; every consumer passes its own Config to New.
type Config struct {
	// DefaultCountry and DefaultLanguage are assumed when a lookup omits
	// the locale pair.
	DefaultCountry  string
	DefaultLanguage string

	// StrictBlockTypes rejects drafts containing block types the registry
	// has no schema for. When false, unknown types pass through unvalidated.
	StrictBlockTypes bool

	Logging LoggingConfig
}

// LoggingConfig configures the go-logger backed provider built by New when
// no explicit provider is injected.
type LoggingConfig struct {
	Enabled   bool
	Level     string
	Format    string
	AddSource bool
	// Focus limits output to the named logger namespaces.
	Focus []string
}

// DefaultConfig returns the configuration New falls back to field by field.
func DefaultConfig() Config {
	return Config{
		DefaultCountry:  "US",
		DefaultLanguage: "en",
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Format:  "json",
		},
	}
}

// Validate checks the configuration before wiring.
func (c Config) Validate() error {
	if c.DefaultCountry == "" || c.DefaultLanguage == "" {
		return ErrDefaultLocaleInvalid
	}
	switch c.Logging.Level {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}
	switch c.Logging.Format {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}
	return nil
}
