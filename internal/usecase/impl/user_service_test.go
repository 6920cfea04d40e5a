package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"farmlease/config"
	"farmlease/internal/domain/entity"
	domainerrors "farmlease/internal/domain/errors"
	"farmlease/internal/domain/repository"
	"farmlease/internal/domain/service"
	mockRepo "farmlease/internal/mocks/repository"
	mockSvc "farmlease/internal/mocks/service"
	"farmlease/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	txManager    *mockRepo.MockTransactionManager
	repoFactory  *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	authRepo     *mockRepo.MockAuthRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	service      usecase.UserUsecase
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newUserServiceFixtures(t *testing.T) *userServiceFixtures {
	f := &userServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		repoFactory:  mockRepo.NewMockRepositoryFactory(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		authRepo:     mockRepo.NewMockAuthRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	f.service = NewUserService(UserServiceParams{
		TxManager:    f.txManager,
		UserRepo:     f.userRepo,
		AuthRepo:     f.authRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		Config:       &config.Config{Auth: &config.AuthConfig{PasswordMinLength: 6}},
		Logger:       discardLogger(),
	})

	return f
}

// runInTx makes the transaction manager invoke the callback with the mocked factory.
func (f *userServiceFixtures) runInTx() {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.repoFactory)
		})
}

func TestUserService_RegisterUser(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to farmer and normalises email", func(t *testing.T) {
		f := newUserServiceFixtures(t)
		f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
		f.runInTx()
		f.repoFactory.EXPECT().UserRepo().Return(f.userRepo)
		f.repoFactory.EXPECT().AuthRepo().Return(f.authRepo)
		f.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "ram@example.com").
			Return(nil, repository.ErrAuthNotFound)
		f.userRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, user *entity.User) {
				user.ID = uuid.New()
			}).
			Return(nil)
		f.authRepo.EXPECT().CreateAuthentication(mock.Anything, mock.MatchedBy(func(a *entity.Authentication) bool {
			return a.PasswordHash == "hashed" && a.ProviderUserID == "ram@example.com"
		})).Return(nil)

		out, err := f.service.RegisterUser(ctx, &usecase.RegisterUserInput{
			Name:     "Ram",
			Email:    "Ram@Example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.RoleFarmer, out.User.Role)
		assert.Equal(t, "ram@example.com", out.User.Email)
	})

	t.Run("admin role cannot be self assigned", func(t *testing.T) {
		f := newUserServiceFixtures(t)

		_, err := f.service.RegisterUser(ctx, &usecase.RegisterUserInput{
			Name:     "Eve",
			Email:    "eve@example.com",
			Password: "secret123",
			Role:     entity.RoleAdmin,
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("short password", func(t *testing.T) {
		f := newUserServiceFixtures(t)

		_, err := f.service.RegisterUser(ctx, &usecase.RegisterUserInput{
			Name:     "Sita",
			Email:    "sita@example.com",
			Password: "12345",
			Role:     entity.RoleLandowner,
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newUserServiceFixtures(t)
		f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
		f.runInTx()
		f.repoFactory.EXPECT().UserRepo().Return(f.userRepo)
		f.repoFactory.EXPECT().AuthRepo().Return(f.authRepo)
		f.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "sita@example.com").
			Return(&entity.Authentication{UserID: uuid.New()}, nil)

		_, err := f.service.RegisterUser(ctx, &usecase.RegisterUserInput{
			Name:     "Sita",
			Email:    "sita@example.com",
			Password: "secret123",
			Role:     entity.RoleLandowner,
		})
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("issues tokens with role", func(t *testing.T) {
		f := newUserServiceFixtures(t)
		f.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "hari@example.com").
			Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
		f.hasher.EXPECT().Check("secret123", "hashed").Return(true)
		f.userRepo.EXPECT().FindByID(mock.Anything, userID).
			Return(&entity.User{ID: userID, Role: entity.RoleLandowner}, nil)
		f.tokenService.EXPECT().GenerateTokens(userID, "landowner").Return("access", "refresh", nil)
		f.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
		f.authRepo.EXPECT().CreateRefreshToken(mock.Anything, mock.MatchedBy(func(rt *entity.RefreshToken) bool {
			return rt.UserID == userID && rt.TokenHash == hashToken("refresh")
		})).Return(nil)

		out, err := f.service.Login(ctx, &usecase.LoginInput{Email: "hari@example.com", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "access", out.AccessToken)
		assert.Equal(t, "refresh", out.RefreshToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newUserServiceFixtures(t)
		f.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "hari@example.com").
			Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
		f.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "hari@example.com", Password: "nope"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newUserServiceFixtures(t)
		f.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "ghost@example.com").
			Return(nil, repository.ErrAuthNotFound)

		_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "secret123"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestUserService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("rotates the token", func(t *testing.T) {
		f := newUserServiceFixtures(t)
		f.tokenService.EXPECT().ValidateToken("old").
			Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
		f.runInTx()
		f.repoFactory.EXPECT().AuthRepo().Return(f.authRepo)
		f.repoFactory.EXPECT().UserRepo().Return(f.userRepo)
		f.authRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, hashToken("old")).
			Return(&entity.RefreshToken{UserID: userID, ExpiresAt: time.Now().Add(time.Hour)}, nil)
		f.userRepo.EXPECT().FindByID(mock.Anything, userID).
			Return(&entity.User{ID: userID, Role: entity.RoleFarmer}, nil)
		f.tokenService.EXPECT().GenerateTokens(userID, "farmer").Return("access2", "new", nil)
		f.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
		f.authRepo.EXPECT().CreateRefreshToken(mock.Anything, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)
		f.authRepo.EXPECT().DeleteRefreshTokenByHash(mock.Anything, hashToken("old")).Return(nil)

		out, err := f.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old"})
		require.NoError(t, err)
		assert.Equal(t, "access2", out.AccessToken)
		assert.Equal(t, "new", out.RefreshToken)
	})

	t.Run("access token is rejected", func(t *testing.T) {
		f := newUserServiceFixtures(t)
		f.tokenService.EXPECT().ValidateToken("access").
			Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)

		_, err := f.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "access"})
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("revoked token", func(t *testing.T) {
		f := newUserServiceFixtures(t)
		f.tokenService.EXPECT().ValidateToken("old").
			Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil)
		f.runInTx()
		f.repoFactory.EXPECT().AuthRepo().Return(f.authRepo)
		f.authRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, hashToken("old")).
			Return(nil, repository.ErrTokenNotFound)

		_, err := f.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old"})
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestUserService_Logout(t *testing.T) {
	f := newUserServiceFixtures(t)
	f.authRepo.EXPECT().DeleteRefreshTokenByHash(mock.Anything, hashToken("gone")).
		Return(repository.ErrTokenNotFound)

	assert.NoError(t, f.service.Logout(context.Background(), &usecase.LogoutInput{RefreshToken: "gone"}))
}

func TestUserService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("existing admin is kept", func(t *testing.T) {
		f := newUserServiceFixtures(t)
		admin := &entity.User{ID: uuid.New(), Email: "admin@example.com", Role: entity.RoleAdmin}
		f.userRepo.EXPECT().FindByEmail(mock.Anything, "admin@example.com").Return(admin, nil)

		got, err := f.service.EnsureAdmin(ctx, "Admin", "Admin@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, admin, got)
	})

	t.Run("email held by a farmer", func(t *testing.T) {
		f := newUserServiceFixtures(t)
		f.userRepo.EXPECT().FindByEmail(mock.Anything, "admin@example.com").
			Return(&entity.User{ID: uuid.New(), Role: entity.RoleFarmer}, nil)

		_, err := f.service.EnsureAdmin(ctx, "Admin", "admin@example.com", "secret123")
		assert.Error(t, err)
	})

	t.Run("creates the admin", func(t *testing.T) {
		f := newUserServiceFixtures(t)
		f.userRepo.EXPECT().FindByEmail(mock.Anything, "admin@example.com").Return(nil, repository.ErrUserNotFound)
		f.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
		f.runInTx()
		f.repoFactory.EXPECT().UserRepo().Return(f.userRepo)
		f.repoFactory.EXPECT().AuthRepo().Return(f.authRepo)
		f.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "admin@example.com").
			Return(nil, repository.ErrAuthNotFound)
		f.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Role == entity.RoleAdmin
		})).Return(nil)
		f.authRepo.EXPECT().CreateAuthentication(mock.Anything, mock.AnythingOfType("*entity.Authentication")).Return(nil)

		got, err := f.service.EnsureAdmin(ctx, "", "admin@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "Administrator", got.Name)
	})
}
