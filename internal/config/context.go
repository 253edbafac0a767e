package config

import "context"

// configKey is the context key for Config
type configKey struct{}

// WithConfig returns a new context with cfg stored in it.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the Config from context.
// Returns nil if no config is stored.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey{}).(*Config); ok {
		return cfg
	}
	return nil
}

// FromContextOrDefault is FromContext falling back to Default().
func FromContextOrDefault(ctx context.Context) *Config {
	if cfg := FromContext(ctx); cfg != nil {
		return cfg
	}
	cfg := Default()
	return &cfg
}
