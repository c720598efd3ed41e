package logging

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/tiler/internal/domain/entity"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags every later log line with the subsystem emitting it
// (controller, store, snapshot...).
func WithComponent(ctx context.Context, component string) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("component", component)
	})
}

// WithDesktop scopes logging to one desktop tree.
func WithDesktop(ctx context.Context, desk entity.DesktopID) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Stringer("desktop", desk)
	})
}

// WithWindow scopes logging to one managed window.
func WithWindow(ctx context.Context, id entity.WindowID) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("window", string(id))
	})
}

func derive(ctx context.Context, fields func(zerolog.Context) zerolog.Context) context.Context {
	return WithContext(ctx, fields(FromContext(ctx).With()).Logger())
}
