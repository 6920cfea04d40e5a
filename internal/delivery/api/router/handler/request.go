// Package handler contains the HTTP handlers for the API surface.
package handler

import (
	"farmlease/internal/domain/access"
	domainerrors "farmlease/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindBody decodes the request body of a public endpoint.
func bindBody(c echo.Context, input any) error {
	if err := c.Bind(input); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is not valid JSON")
	}

	return nil
}

// bindCallerBody decodes the body of an endpoint acting for a caller. An
// anonymous request is reported as such even when its body is also broken.
func bindCallerBody(c echo.Context, caller *access.Caller, input any) error {
	if err := c.Bind(input); err != nil {
		if caller == nil {
			return domainerrors.ErrUnauthenticated
		}

		return domainerrors.ErrValidationFailed.WithDetails("request body is not valid JSON")
	}

	return nil
}

// plotIDParam parses the :id path parameter. A malformed id cannot name an
// existing plot and is reported as not found.
func plotIDParam(c echo.Context, caller *access.Caller) (uuid.UUID, error) {
	if caller == nil {
		return uuid.Nil, domainerrors.ErrUnauthenticated
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrPlotNotFound.WrapMessage("malformed plot id")
	}

	return id, nil
}
