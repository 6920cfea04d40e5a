package postgres

import (
	"context"
	"testing"
	"time"

	"farmlease/internal/domain/entity"
	domainerrors "farmlease/internal/domain/errors"
	"farmlease/internal/domain/repository"
	"farmlease/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{Email: "sita@farm.np", Name: "Sita", Role: entity.RoleLandowner}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "sita@farm.np", byID.Email)
	assert.Equal(t, entity.RoleLandowner, byID.Role)

	byEmail, err := repo.FindByEmail(ctx, "sita@farm.np")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByEmail(context.Background(), "nobody@farm.np")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "dup@farm.np", Role: entity.RoleFarmer}))
	err := repo.Create(ctx, &entity.User{Email: "dup@farm.np", Role: entity.RoleFarmer})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthRepository_RefreshTokenLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, entity.RoleFarmer)

	require.NoError(t, repo.CreateAuthentication(ctx, &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: user.Email,
		PasswordHash:   "hash",
	}))

	auth, err := repo.FindAuthentication(ctx, entity.ProviderTypeEmail, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, auth.UserID)

	_, err = repo.FindAuthentication(ctx, entity.ProviderTypeEmail, "other@farm.np")
	assert.ErrorIs(t, err, repository.ErrAuthNotFound)

	token := &entity.RefreshToken{UserID: user.ID, TokenHash: "abc", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.CreateRefreshToken(ctx, token))

	found, err := repo.FindRefreshTokenByHash(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, token.ID, found.ID)

	require.NoError(t, repo.DeleteRefreshTokenByHash(ctx, "abc"))
	assert.ErrorIs(t, repo.DeleteRefreshTokenByHash(ctx, "abc"), repository.ErrTokenNotFound)

	_, err = repo.FindRefreshTokenByHash(ctx, "abc")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.UserRepo().Create(ctx, &entity.User{Email: "tx@farm.np", Role: entity.RoleFarmer}); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = NewUserRepository(db).FindByEmail(ctx, "tx@farm.np")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_Commits(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		user := &entity.User{Email: "ok@farm.np", Role: entity.RoleLandowner}
		if err := f.UserRepo().Create(ctx, user); err != nil {
			return err
		}

		return f.PlotRepo().Create(ctx, &entity.Plot{Name: "Terrace", OwnerID: user.ID})
	})
	require.NoError(t, err)

	user, err := NewUserRepository(db).FindByEmail(ctx, "ok@farm.np")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleLandowner, user.Role)
}
