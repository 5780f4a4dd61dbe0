package cli

import (
	"context"

	"github.com/thenoetrevino/phonebook/internal/app"
)

type contextKey string

const appKey contextKey = "phonebook.app"

// WithApp returns a context carrying a ready application. Commands executed
// with it use that application instead of loading configuration.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns the CLI for a command: the application stored by
// WithApp if present, otherwise a new one built from configPath
func GetCLIFromContext(ctx context.Context, configPath string) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a, borrowed: true}, nil
	}
	return NewCLI(ctx, configPath)
}
