// Package response renders the JSON envelopes of the farm API.
package response

import (
	"net/http"

	deliverycontext "farmlease/internal/delivery/context"
	domainerrors "farmlease/internal/domain/errors"
	"farmlease/internal/errors"

	"github.com/labstack/echo/v4"
)

// SuccessResponse wraps a payload: {"data": ..., "meta": {...}}.
type SuccessResponse struct {
	Data any   `json:"data"`
	Meta *Meta `json:"meta"`
}

// ErrorResponse wraps a failure: {"error": {...}, "meta": {...}}.
type ErrorResponse struct {
	Error *ErrorBody `json:"error"`
	Meta  *Meta      `json:"meta"`
}

// ErrorBody is the machine-readable part of a failure.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Meta is attached to every envelope.
type Meta struct {
	RequestID string `json:"request_id"`
}

func metaOf(c echo.Context) *Meta {
	return &Meta{RequestID: deliverycontext.GetRequestID(c)}
}

// Success writes data with statusCode.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: metaOf(c)})
}

// Error writes a failure envelope. Details never leave the service for
// authentication, authorization or server failures.
func Error(c echo.Context, statusCode int, code, message string, details any) error {
	if !exposesDetails(statusCode) {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorBody{Code: code, Message: message, Details: details},
		Meta:  metaOf(c),
	})
}

// InternalServerError writes a 500 without details.
func InternalServerError(c echo.Context, code, message string) error {
	return Error(c, http.StatusInternalServerError, code, message, nil)
}

// HandleAppError renders a domain error. Anything else is returned, with a
// stack, for the caller to handle.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// PNG writes a plot QR code image.
func PNG(c echo.Context, body []byte) error {
	return c.Blob(http.StatusOK, "image/png", body)
}

func exposesDetails(statusCode int) bool {
	switch {
	case statusCode >= http.StatusInternalServerError,
		statusCode == http.StatusUnauthorized,
		statusCode == http.StatusForbidden:
		return false
	default:
		return true
	}
}
