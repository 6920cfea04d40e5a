package middleware

import (
	"log/slog"
	"net/http"

	"farmlease/internal/delivery/api/response"
	deliverycontext "farmlease/internal/delivery/context"
	domainerrors "farmlease/internal/domain/errors"
	"farmlease/internal/errors"

	"github.com/labstack/echo/v4"
)

// frameworkErrorCodes names the failures echo raises before a handler runs.
//
//nolint:gochecknoglobals
var frameworkErrorCodes = map[int]string{
	http.StatusBadRequest:            "BAD_REQUEST",
	http.StatusNotFound:              "ROUTE_NOT_FOUND",
	http.StatusMethodNotAllowed:      "METHOD_NOT_ALLOWED",
	http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
	http.StatusUnsupportedMediaType:  "UNSUPPORTED_MEDIA_TYPE",
	http.StatusTooManyRequests:       "TOO_MANY_REQUESTS",
}

// ErrorMiddleware renders every error leaving a handler as the API's error
// envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware is the constructor for ErrorMiddleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler. Domain errors keep
// their own status and code; echo errors get a stable code; anything else is
// logged and hidden behind a generic 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		level := slog.LevelDebug
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request().Context(), level, "Request rejected",
			slog.String("code", appErr.ErrorCode()),
			slog.Any("error", err),
		)

		_ = response.HandleAppError(c, err)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		code, ok := frameworkErrorCodes[httpErr.Code]
		if !ok {
			code = "HTTP_ERROR"
		}

		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, code, message, nil)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("method", c.Request().Method),
		slog.String("route", c.Path()),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
