package cli

import "context"

type contextKey struct{}

// WithCLI returns a context carrying an already-initialized CLI instance.
// Tests use this to run commands against an in-memory database.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// GetCLIFromContext returns the CLI instance attached to the context, or
// initializes a fresh one against the default database when none is set.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if c, ok := ctx.Value(contextKey{}).(*CLI); ok {
		return c, nil
	}
	return NewCLI(ctx)
}
