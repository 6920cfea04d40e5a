package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"farmlease/internal/domain/access"
	"farmlease/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID(t *testing.T) {
	t.Run("echo context value wins", func(t *testing.T) {
		c := newEchoContext()
		SetRequestID(c, "from-echo")
		c.Response().Header().Set(HeaderXRequestID, "from-header")

		assert.Equal(t, "from-echo", GetRequestID(c))
	})

	t.Run("falls back to request context", func(t *testing.T) {
		c := newEchoContext()
		c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "from-ctx")))

		assert.Equal(t, "from-ctx", GetRequestID(c))
	})

	t.Run("falls back to response header", func(t *testing.T) {
		c := newEchoContext()
		c.Response().Header().Set(HeaderXRequestID, "from-header")

		assert.Equal(t, "from-header", GetRequestID(c))
	})

	t.Run("empty when unset", func(t *testing.T) {
		assert.Empty(t, GetRequestID(newEchoContext()))
	})
}

func TestCaller(t *testing.T) {
	assert.Nil(t, GetCaller(context.Background()))

	caller := &access.Caller{UserID: uuid.New(), Role: entity.RoleFarmer}
	ctx := WithCaller(context.Background(), caller)

	assert.Same(t, caller, GetCaller(ctx))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := fallback.With(slog.String("request_id", "r1"))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}
