package repository

import (
	"context"
	"testing"

	"tuiter/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB creates an in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Tuit{},
		&models.Like{},
		&models.Follow{},
		&models.Bookmark{},
		&models.Message{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Password: "hashed-password",
		Email:    username + "@tuiter.test",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestTuit(t *testing.T, db *gorm.DB, author *models.User, text string) *models.Tuit {
	t.Helper()
	tuit := &models.Tuit{Tuit: text, PostedByID: author.ID}
	require.NoError(t, db.Create(tuit).Error)
	return tuit
}

func testCtx() context.Context {
	return context.Background()
}
