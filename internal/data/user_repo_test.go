package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acme/invoicing-ui/internal/domain/model"
	"github.com/acme/invoicing-ui/internal/testutil"
)

func TestUserRepo_Create_GetByEmail(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db)
		ctx := context.Background()

		req := &model.CreateUserRequest{
			Name:  "Test User",
			Email: "test@example.com",
		}
		created, err := repo.Create(ctx, req, "$2a$10$notarealhashbutlongenoughtostore000000000000000000000")
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Test User", created.Name)
		assert.Equal(t, "test@example.com", created.Email)
		assert.False(t, created.CreatedAt.IsZero())

		found, err := repo.GetByEmail(ctx, "test@example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, created.Password, found.Password)
	})
}

func TestUserRepo_GetByEmail_NotFound(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db)

		_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserRepo_GetByEmail_CaseSensitive(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db)
		ctx := context.Background()

		_, err := repo.Create(ctx, &model.CreateUserRequest{
			Name:  "Case User",
			Email: "case@example.com",
		}, "hash")
		require.NoError(t, err)

		_, err = repo.GetByEmail(ctx, "Case@Example.com")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db)
		ctx := context.Background()

		req := &model.CreateUserRequest{Name: "First", Email: "dup@example.com"}
		_, err := repo.Create(ctx, req, "hash-one")
		require.NoError(t, err)

		req2 := &model.CreateUserRequest{Name: "Second", Email: "dup@example.com"}
		_, err = repo.Create(ctx, req2, "hash-two")
		require.ErrorIs(t, err, ErrUserEmailExists)
	})
}

func TestUserRepo_Create_Validation(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithAutoDB(t, func(db *sql.DB) {
		repo := NewUserRepo(db)
		ctx := context.Background()

		_, err := repo.Create(ctx, nil, "hash")
		require.Error(t, err)

		_, err = repo.Create(ctx, &model.CreateUserRequest{Name: "No Email"}, "hash")
		require.Error(t, err)

		_, err = repo.Create(ctx, &model.CreateUserRequest{Name: "No Hash", Email: "nohash@example.com"}, "")
		require.Error(t, err)
	})
}
