package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

// createTestDatabase opens a fresh SQLite file, creates the schema and seeds it.
func createTestDatabase(t *testing.T) database.Database {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "portfolio.db"), logger.Default.LogMode(logger.Silent))
	require.NoError(t, err)

	d := database.New(db)
	t.Cleanup(func() { d.Close() })
	require.NoError(t, d.Initialize(context.Background()))
	return d
}

func testSettings(t *testing.T) config.Settings {
	t.Helper()
	return config.Settings{
		AppEnv:          config.EnvProduction,
		StaticDir:       t.TempDir(),
		AcceptedOrigins: []string{"*"},
	}
}

func createTestRouter(t *testing.T, d database.Database, settings config.Settings, opts ...func(*router)) *chi.Mux {
	t.Helper()
	r, err := newRouter(d, settings, opts...)
	require.NoError(t, err)
	return r
}

func doRequest(handler http.Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp.Error
}

func storedMessages(t *testing.T, d database.Database) []models.ContactMessage {
	t.Helper()
	var messages []models.ContactMessage
	require.NoError(t, d.GetDB().Order("id").Find(&messages).Error)
	return messages
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
