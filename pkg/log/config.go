package log

import "fmt"

// Config declares a logger in data form, suitable for env-driven setup.
type Config struct {
	// Level is the minimum level name: debug, info, warn, error, fatal.
	Level string
	// Format selects the formatter: "text" or "json".
	Format string
}

// ApplyConfig builds a logger from cfg. Empty fields fall back to info/text.
func ApplyConfig(cfg *Config) (Logger, error) {
	level := InfoLevel
	if cfg.Level != "" {
		parsed, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}
	var formatter Formatter
	switch cfg.Format {
	case "", "text":
		formatter = &TextFormatter{}
	case "json":
		formatter = &JSONFormatter{}
	default:
		return nil, fmt.Errorf("log: unknown format %q", cfg.Format)
	}
	return NewLogger(WithLevel(level), WithFormatter(formatter)), nil
}
