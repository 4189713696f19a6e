package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_OK(t *testing.T) {
	d := createTestDatabase(t)
	r := createTestRouter(t, d, testSettings(t), withStartupTime(time.Now().Add(-90*time.Second)))

	rec := doRequest(r, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.GreaterOrEqual(t, resp.UptimeSeconds, int64(90))
}

func TestHealth_DatabaseUnavailable(t *testing.T) {
	d := createTestDatabase(t)
	r := createTestRouter(t, d, testSettings(t))
	require.NoError(t, d.Close())

	rec := doRequest(r, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "unavailable", resp.Status)
}

func TestAPI_UnknownPathIsJSONNotFound(t *testing.T) {
	d := createTestDatabase(t)
	r := createTestRouter(t, d, testSettings(t))

	rec := doRequest(r, http.MethodGet, "/api/does-not-exist", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
}

func TestAPI_WrongMethod(t *testing.T) {
	d := createTestDatabase(t)
	r := createTestRouter(t, d, testSettings(t))

	rec := doRequest(r, http.MethodGet, "/api/contact", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "method not allowed", decodeError(t, rec))
}

func writeBuild(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>portfolio</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log('app')"), 0o644))
}

func TestAssets_ServesBuiltFiles(t *testing.T) {
	d := createTestDatabase(t)
	settings := testSettings(t)
	writeBuild(t, settings.StaticDir)
	r := createTestRouter(t, d, settings)

	rec := doRequest(r, http.MethodGet, "/assets/app.js", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log('app')", rec.Body.String())
}

func TestAssets_ClientRoutesFallBackToIndex(t *testing.T) {
	d := createTestDatabase(t)
	settings := testSettings(t)
	writeBuild(t, settings.StaticDir)
	r := createTestRouter(t, d, settings)

	for _, path := range []string{"/", "/about", "/projects/3"} {
		rec := doRequest(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "portfolio", path)
	}
}

func TestAssets_NoBuild(t *testing.T) {
	d := createTestDatabase(t)
	r := createTestRouter(t, d, testSettings(t))

	rec := doRequest(r, http.MethodGet, "/about", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decodeError(t, rec))
}

func TestAssets_RejectsWrites(t *testing.T) {
	d := createTestDatabase(t)
	settings := testSettings(t)
	writeBuild(t, settings.StaticDir)
	r := createTestRouter(t, d, settings)

	rec := doRequest(r, http.MethodPost, "/about", []byte(`{}`))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestAssets_DevProxy(t *testing.T) {
	devServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("dev:" + r.URL.Path))
	}))
	defer devServer.Close()

	d := createTestDatabase(t)
	settings := testSettings(t)
	settings.AppEnv = config.EnvDevelopment
	settings.DevServerURL = devServer.URL
	r := createTestRouter(t, d, settings)

	rec := doRequest(r, http.MethodGet, "/src/main.tsx", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dev:/src/main.tsx", rec.Body.String())

	// API routes never reach the dev server
	rec = doRequest(r, http.MethodGet, "/api/projects", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "dev:")
}

func TestAssets_DevProxyUnreachable(t *testing.T) {
	devServer := httptest.NewServer(http.NotFoundHandler())
	unreachable := devServer.URL
	devServer.Close()

	d := createTestDatabase(t)
	settings := testSettings(t)
	settings.AppEnv = config.EnvDevelopment
	settings.DevServerURL = unreachable
	r := createTestRouter(t, d, settings)

	rec := doRequest(r, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "Dev server unavailable", decodeError(t, rec))
}

func TestAssets_ProductionIgnoresDevServer(t *testing.T) {
	d := createTestDatabase(t)
	settings := testSettings(t)
	settings.DevServerURL = "http://127.0.0.1:5173"
	writeBuild(t, settings.StaticDir)
	r := createTestRouter(t, d, settings)

	rec := doRequest(r, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "portfolio")
}

func TestNewRouter_InvalidDevServerURL(t *testing.T) {
	d := createTestDatabase(t)
	settings := testSettings(t)
	settings.AppEnv = config.EnvDevelopment
	settings.DevServerURL = "localhost"

	_, err := newRouter(d, settings)
	assert.Error(t, err)
}

func preflight(handler http.Handler, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCORS_AllowedOrigin(t *testing.T) {
	d := createTestDatabase(t)
	settings := testSettings(t)
	settings.AcceptedOrigins = []string{"https://site.test"}
	r := createTestRouter(t, d, settings)

	rec := preflight(r, "https://site.test")

	assert.Less(t, rec.Code, 300)
	assert.Equal(t, "https://site.test", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	d := createTestDatabase(t)
	settings := testSettings(t)
	settings.AcceptedOrigins = []string{"https://site.test"}
	r := createTestRouter(t, d, settings)

	rec := preflight(r, "https://evil.test")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Origin not allowed", decodeError(t, rec))
}

func TestRequestID(t *testing.T) {
	d := createTestDatabase(t)
	r := createTestRouter(t, d, testSettings(t))

	rec := doRequest(r, http.MethodGet, "/api/projects", nil)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestLogInternalServerErrors_RecoversPanic(t *testing.T) {
	handler := LogInternalServerErrors(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := doRequest(handler, http.MethodGet, "/api/projects", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}

func TestRequestLoggingMiddleware_RecordsStatus(t *testing.T) {
	var seen int
	handler := RequestLoggingMiddleware(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		seen = wrapStatusWriter(w).status
	}))

	rec := doRequest(handler, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, http.StatusTeapot, seen)
}
