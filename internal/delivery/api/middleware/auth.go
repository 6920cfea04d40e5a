// Package middleware contains echo middleware specific to the API surface.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "farmlease/internal/delivery/context"
	"farmlease/internal/domain/access"
	"farmlease/internal/domain/entity"
	domainerrors "farmlease/internal/domain/errors"
	"farmlease/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the caller of a request from its access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Identify attaches the caller to the request. A request without an
// Authorization header continues with no caller and is rejected later by the
// usecase; a header that does not carry a valid access token is rejected here.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header must be a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated.WrapMessage("invalid or expired token")
		}
		if claims.Type != service.TokenTypeAccess {
			return domainerrors.ErrUnauthenticated.WrapMessage("not an access token")
		}

		caller := &access.Caller{
			UserID: claims.UserID,
			Role:   entity.Role(claims.Role),
		}

		ctx := deliverycontext.WithCaller(c.Request().Context(), caller)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(
				slog.String("user_id", caller.UserID.String()),
				slog.String("role", caller.Role.String()),
			))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// CallerFrom returns the caller set by Identify, or nil for an anonymous request.
func CallerFrom(c echo.Context) *access.Caller {
	return deliverycontext.GetCaller(c.Request().Context())
}
