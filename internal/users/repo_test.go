package users

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lucashenriquez/exclusive-backend/pkg/db/models"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  name TEXT NOT NULL,
  address TEXT,
  phone TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  last_login_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "hash",
		Name:         "Test Shopper",
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestRepositoryCreateAndFindByEmail(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)

	created, err := repo.Create(context.Background(), CreateUserDTO{
		Email:        "shopper@example.com",
		PasswordHash: "hash",
		Name:         "Shopper",
	})
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	found, err := repo.FindByEmail(context.Background(), "shopper@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Shopper", found.Name)
}

func TestRepositoryUpdateLastLogin(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)

	user := seedUser(t, db, "login@example.com")
	require.Nil(t, user.LastLoginAt)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.UpdateLastLogin(context.Background(), user.ID, now))

	found, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.LastLoginAt)
	assert.WithinDuration(t, now, *found.LastLoginAt, time.Second)
}

func TestRepositoryUpdateProfile(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)

	user := seedUser(t, db, "profile@example.com")

	name := "Renamed Shopper"
	address := "742 Evergreen Terrace"
	updated, err := repo.UpdateProfile(context.Background(), user.ID, UpdateProfileDTO{
		Name:    &name,
		Address: &address,
	})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	require.NotNil(t, updated.Address)
	assert.Equal(t, address, *updated.Address)
	assert.Equal(t, "profile@example.com", updated.Email)
}

func TestRepositoryUpdateProfileNoFields(t *testing.T) {
	db := setupUsersTestDB(t)
	repo := NewRepository(db)

	user := seedUser(t, db, "untouched@example.com")

	updated, err := repo.UpdateProfile(context.Background(), user.ID, UpdateProfileDTO{})
	require.NoError(t, err)
	assert.Equal(t, user.Name, updated.Name)
}
