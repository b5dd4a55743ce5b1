package repository

import (
	"context"
	"testing"

	"hotelbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, repo *UserRepository, username, email string) *domain.User {
	t.Helper()
	u := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserRepository_DuplicateDetection(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	createUser(t, repo, "guest", "guest@test.com")

	t.Run("duplicate username", func(t *testing.T) {
		err := repo.Create(ctx, &domain.User{
			Username:     "guest",
			Email:        "other@test.com",
			PasswordHash: "hash",
		})
		require.Error(t, err)
		assert.True(t, IsUniqueViolation(err))
		assert.True(t, IsUniqueViolationOn(err, "username"))
		assert.False(t, IsUniqueViolationOn(err, "email"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.Create(ctx, &domain.User{
			Username:     "other",
			Email:        "guest@test.com",
			PasswordHash: "hash",
		})
		require.Error(t, err)
		assert.True(t, IsUniqueViolation(err))
		assert.True(t, IsUniqueViolationOn(err, "email"))
	})

	t.Run("unrelated errors are not violations", func(t *testing.T) {
		assert.False(t, IsUniqueViolation(nil))
		assert.False(t, IsUniqueViolation(context.Canceled))
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	created := createUser(t, repo, "guest", "guest@test.com")

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "guest", got.Username)

	_, err = repo.GetByID(ctx, 9999)
	assert.Error(t, err)
}
