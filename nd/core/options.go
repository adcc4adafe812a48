package core

import "log/slog"

// OperatorConfig defines settings shared by every local operator.
type OperatorConfig struct {
	// Name labels log records and error messages.
	Name string
	// Logger receives a Debug record per successful run and a Warn record
	// per failure.
	Logger *slog.Logger
}

// OperatorOption mutates an OperatorConfig.
type OperatorOption func(*OperatorConfig)

// DefaultOperatorConfig returns an unnamed config that discards log output.
func DefaultOperatorConfig() OperatorConfig {
	return OperatorConfig{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithName sets the operator name. Empty names are ignored.
func WithName(name string) OperatorOption {
	return func(cfg *OperatorConfig) {
		if name != "" {
			cfg.Name = name
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) OperatorOption {
	return func(cfg *OperatorConfig) {
		if logger != nil {
			cfg.Logger = logger
		}
	}
}

// ApplyOperatorOptions applies zero or more options to the default config.
func ApplyOperatorOptions(opts ...OperatorOption) OperatorConfig {
	cfg := DefaultOperatorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Named returns cfg with Name set to fallback when no name was given.
func (cfg OperatorConfig) Named(fallback string) OperatorConfig {
	if cfg.Name == "" {
		cfg.Name = fallback
	}
	return cfg
}
