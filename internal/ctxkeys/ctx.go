package ctxkeys

import (
	"context"

	"github.com/stridehq/stride/internal/config"
	"github.com/stridehq/stride/internal/identity"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	IdentityKey contextKey = "identity"
	ConfigKey   contextKey = "config"
)

func Identity(ctx context.Context) *identity.Identity {
	id, _ := ctx.Value(IdentityKey).(*identity.Identity)
	return id
}

func WithIdentity(ctx context.Context, id *identity.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, id)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}
