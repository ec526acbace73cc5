package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/config"
	"storefront/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestApp wires a full server onto a single-connection in-memory SQLite
// database.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:?_foreign_keys=on"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.AutoMigrate(db))

	srv, err := NewServerWithDeps(&config.Config{DBDriver: config.DriverSQLite}, db)
	require.NoError(t, err)
	return srv.NewApp(), db
}

// doJSON sends body (marshalled unless it is a string) and decodes the
// response into out when out is non-nil.
func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, out interface{}) int {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	if out != nil {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return resp.StatusCode
}

func createUserVia(t *testing.T, app *fiber.App, email string) userResponse {
	t.Helper()
	var user userResponse
	status := doJSON(t, app, http.MethodPost, "/users",
		map[string]string{"name": "Test", "address": "1 Main St", "email": email}, &user)
	require.Equal(t, http.StatusCreated, status)
	return user
}

func createProductVia(t *testing.T, app *fiber.App, name string, price float64) productResponse {
	t.Helper()
	var product productResponse
	status := doJSON(t, app, http.MethodPost, "/products",
		map[string]interface{}{"product_name": name, "price": price}, &product)
	require.Equal(t, http.StatusCreated, status)
	return product
}

func createOrderVia(t *testing.T, app *fiber.App, userID uint, productIDs ...uint) orderResponse {
	t.Helper()
	var order orderResponse
	status := doJSON(t, app, http.MethodPost, "/orders",
		map[string]interface{}{"user_id": userID, "product_ids": productIDs}, &order)
	require.Equal(t, http.StatusCreated, status)
	return order
}
