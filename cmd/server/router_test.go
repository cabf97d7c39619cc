package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhu4ok/Software-architecture-lab5/internal/config"
	"github.com/zhu4ok/Software-architecture-lab5/internal/domain"
	"github.com/zhu4ok/Software-architecture-lab5/internal/mocks"
	"github.com/zhu4ok/Software-architecture-lab5/internal/store"
)

func newTestApplication(t *testing.T, userStore store.UserStore) *application {
	t.Helper()

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<h1>users</h1>"), 0o600))

	reg := prometheus.NewRegistry()
	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 0, LogLevel: "info", StaticDir: staticDir, ShutdownTimeoutSeconds: 1},
		},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		userStore: store.NewInstrumentedUserStore(userStore, reg),
		registry:  reg,
	}
}

func TestRouter(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	_, err := userStore.Create(context.Background(), domain.NewUserFields("Ann", "Lee", 30))
	require.NoError(t, err)

	srv := httptest.NewServer(newTestApplication(t, userStore).setupRouter())
	defer srv.Close()

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		bodyContains   string
	}{
		{name: "health", path: "/health", expectedStatus: http.StatusOK, bodyContains: "OK"},
		{name: "list users", path: "/api/users", expectedStatus: http.StatusOK, bodyContains: `"name":"Ann"`},
		{name: "unknown user", path: "/api/users/ffffffffffffffffffffffff", expectedStatus: http.StatusNotFound, bodyContains: "User not found."},
		{name: "static index", path: "/", expectedStatus: http.StatusOK, bodyContains: "<h1>users</h1>"},
		{name: "missing static file", path: "/nope.css", expectedStatus: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tc.path)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.expectedStatus, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
			assert.Contains(t, string(body), tc.bodyContains)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := httptest.NewServer(newTestApplication(t, mocks.NewMockUserStore()).setupRouter())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/users")
	require.NoError(t, err)
	_ = resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	metrics := string(body)
	assert.True(t, strings.Contains(metrics, `users_api_store_call_total{method="list"} 1`), metrics)
	assert.Contains(t, metrics, `users_api_http_requests_total{code="200",method="GET",route="/api/users"} 1`)
}

func TestRecovererTurnsPanicsInto500(t *testing.T) {
	userStore := &mocks.MockUserStore{
		ListFn: func(ctx context.Context) ([]*domain.User, error) {
			panic("driver exploded")
		},
	}
	srv := httptest.NewServer(newTestApplication(t, userStore).setupRouter())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/users")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
}
