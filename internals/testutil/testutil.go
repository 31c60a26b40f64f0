// Package testutil carries the shared fixtures for HTTP-level tests: an
// in-memory sqlite database migrated to the production schema, a Fiber app
// wired with the real routes and auth middleware, and signed access tokens.
package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"siwes_backend/internals/configs"
	database "siwes_backend/internals/databases"
	routes "siwes_backend/internals/route"
)

// Secret signs test tokens; the auth middleware reads the same value.
const Secret = "test-secret"

// OpenDB opens a fresh named in-memory sqlite database and migrates the
// full schema. cache=shared keeps the database alive across the pooled
// connections; the unique name isolates tests from each other.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// NewApp builds the app exactly as main does: sonic JSON codec and the real
// route table behind the real auth middleware.
func NewApp(t *testing.T, db *gorm.DB) *fiber.App {
	t.Helper()

	configs.JWTSecret = Secret

	app := fiber.New(fiber.Config{
		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,
	})
	routes.SetupRoutes(app, db)
	return app
}

// Token mints a signed access token the way the identity provider would.
func Token(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"id":   userID.String(),
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(Secret))
	require.NoError(t, err)
	return tok
}

// Do runs one request through the app. A nil body sends an empty request.
func Do(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Envelope is the standard response shape of the API.
type Envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	ErrorCode string          `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

// Decode reads the response body into the standard envelope.
func Decode(t *testing.T, resp *http.Response) Envelope {
	t.Helper()

	defer resp.Body.Close()
	var env Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

// DecodeData decodes the envelope and unmarshals its data field into out.
func DecodeData(t *testing.T, resp *http.Response, out any) Envelope {
	t.Helper()

	env := Decode(t, resp)
	require.NoError(t, json.Unmarshal(env.Data, out))
	return env
}
