package handler

import (
	"log/slog"
	"net/http"

	"farmlease/internal/delivery/api/response"
	"farmlease/internal/errors"
	"farmlease/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// AuthHandler serves signup, login and token lifecycle endpoints.
type AuthHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// Signup handles account registration.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input usecase.RegisterUserInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	output, err := h.userUC.RegisterUser(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(output.User))
}

// Login handles the email and password login.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, TokenResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         toUserResponse(output.User),
	})
}

// Refresh rotates a refresh token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var input usecase.RefreshTokenInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	output, err := h.userUC.RefreshToken(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, TokenResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}

// Logout revokes a refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	var input usecase.LogoutInput
	if err := bindBody(c, &input); err != nil {
		return err
	}

	if err := h.userUC.Logout(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}
