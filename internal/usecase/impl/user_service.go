package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"farmlease/config"
	deliverycontext "farmlease/internal/delivery/context"
	"farmlease/internal/domain/entity"
	domainerrors "farmlease/internal/domain/errors"
	"farmlease/internal/domain/repository"
	"farmlease/internal/domain/service"
	"farmlease/internal/domain/validation"
	"farmlease/internal/errors"
	"farmlease/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultPasswordMinLength = 6

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	passwordMinLength int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	AuthRepo     repository.AuthRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	minLength := defaultPasswordMinLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.PasswordMinLength > 0 {
		minLength = params.Config.Auth.PasswordMinLength
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		passwordMinLength: minLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates an account with a self-assignable role. Admin
// accounts only come from the startup bootstrap.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = entity.RoleFarmer
	}
	if !role.IsSelfAssignable() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be one of [landowner farmer]")
	}

	user, err := srv.createAccount(ctx, input.Name, input.Email, input.Password, role)
	if err != nil {
		return nil, err
	}

	return &usecase.RegisterOutput{User: user}, nil
}

// EnsureAdmin creates the bootstrap admin account. An existing admin with the
// same email is returned unchanged; an existing non-admin is an error.
func (srv *userService) EnsureAdmin(ctx context.Context, name, email, password string) (*entity.User, error) {
	email = normalizeEmail(email)

	existing, err := srv.userRepo.FindByEmail(ctx, email)
	if err == nil {
		if existing.Role != entity.RoleAdmin {
			return nil, errors.Errorf("bootstrap admin email %s belongs to a %s account", email, existing.Role)
		}
		srv.log(ctx).Debug("Bootstrap admin already present", slog.Any("userID", existing.ID))

		return existing, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up bootstrap admin")
	}

	if name == "" {
		name = "Administrator"
	}

	user, err := srv.createAccount(ctx, name, email, password, entity.RoleAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create bootstrap admin")
	}
	srv.log(ctx).Info("Bootstrap admin created", slog.Any("userID", user.ID))

	return user, nil
}

func (srv *userService) createAccount(ctx context.Context, name, email, password string, role entity.Role) (*entity.User, error) {
	email = normalizeEmail(email)
	if len(password) < srv.passwordMinLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be at least %d characters", srv.passwordMinLength))
	}

	srv.log(ctx).Info("Starting registration", slog.Any("role", role), slog.String("email", email))

	// bcrypt is CPU-bound, keep it out of the transaction.
	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		newUser := &entity.User{
			Name:  strings.TrimSpace(name),
			Email: email,
			Role:  role,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.Any("role", role), slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", role), slog.Any("userID", registeredUser.ID))

	return registeredUser, nil
}

// Login verifies the credential and issues a token pair carrying the user's role.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	user, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.storeRefreshToken(ctx, srv.authRepo, user.ID, refreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RefreshToken rotates a refresh token: the presented token is deleted and a
// new pair is issued with the user's current role.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}
	if claims.Type != service.TokenTypeRefresh {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("not a refresh token")
	}

	tokenHash := hashToken(input.RefreshToken)
	var output usecase.RefreshTokenOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		stored, err := authRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrTokenNotFound) {
				return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token revoked")
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if stored.UserID != claims.UserID || time.Now().After(stored.ExpiresAt) {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token expired")
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, stored.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		output.AccessToken, output.RefreshToken, err = srv.tokenService.GenerateTokens(user.ID, user.Role.String())
		if err != nil {
			return errors.Wrap(err, "failed to generate new tokens")
		}

		if err := srv.storeRefreshToken(ctx, authRepo, user.ID, output.RefreshToken); err != nil {
			return err
		}

		return authRepo.DeleteRefreshTokenByHash(ctx, tokenHash)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &output, nil
}

// Logout revokes a refresh token. Revoking an unknown token succeeds.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if err := validation.Struct(input); err != nil {
		return err
	}

	err := srv.authRepo.DeleteRefreshTokenByHash(ctx, hashToken(input.RefreshToken))
	if err != nil && !errors.Is(err, repository.ErrTokenNotFound) {
		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Debug("Logged out")

	return nil
}

func (srv *userService) storeRefreshToken(ctx context.Context, authRepo repository.AuthRepository, userID uuid.UUID, refreshToken string) error {
	token := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	return errors.WithStack(authRepo.CreateRefreshToken(ctx, token))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
