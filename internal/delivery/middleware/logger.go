package middleware

import (
	"log/slog"

	"farmlease/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// NewLoggerMiddleware returns the access log middleware. Client errors log at
// warn and server errors at error. Debug mode adds the user agent and request
// headers. Paths in quiet are never logged.
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config, quiet ...string) echo.MiddlewareFunc {
	logConfig := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
	}
	if cfg.Env.Debug {
		logConfig.WithUserAgent = true
		logConfig.WithRequestHeader = true
	}
	if len(quiet) > 0 {
		logConfig.Filters = []slogecho.Filter{slogecho.IgnorePath(quiet...)}
	}

	return slogecho.NewWithConfig(logger, logConfig)
}
