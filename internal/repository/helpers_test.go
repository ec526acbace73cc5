package repository

import (
	"context"
	"testing"

	"storefront/internal/database"
	"storefront/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a foreign-key enforcing in-memory SQLite database with
// the full schema. The pool is held to a single connection so every query
// sees the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:?_foreign_keys=on"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func createUser(t *testing.T, repo UserRepository, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Test User", Address: "1 Test Lane", Email: email}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func createProduct(t *testing.T, repo ProductRepository, name string, price float64) *models.Product {
	t.Helper()
	product := &models.Product{ProductName: name, Price: price}
	require.NoError(t, repo.Create(context.Background(), product))
	return product
}
