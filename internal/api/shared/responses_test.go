package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhu4ok/Software-architecture-lab5/internal/platform/logger"
)

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()

	RespondWithJSON(rr, req, http.StatusCreated, map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "abc", body["id"])
}

func TestRespondWithStatus(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/test", nil)
	rr := httptest.NewRecorder()

	RespondWithStatus(rr, req, http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, rr.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		err       error
		wantLevel string
	}{
		{
			name:      "server error logs at error",
			status:    http.StatusInternalServerError,
			err:       errors.New("dial tcp 10.0.0.5:27017: connection refused"),
			wantLevel: "ERROR",
		},
		{
			name:      "not found logs at debug",
			status:    http.StatusNotFound,
			err:       errors.New("entity not found: user"),
			wantLevel: "DEBUG",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			ctx := SetTraceID(logger.WithLogger(t.Context(), log))
			req := httptest.NewRequest(http.MethodGet, "/api/users/1", nil).WithContext(ctx)
			rr := httptest.NewRecorder()

			RespondWithErrorAndLog(rr, req, tc.status, "Error retrieving user.", tc.err)

			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Equal(t, "Error retrieving user.", rr.Body.String())

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(logBuf.Bytes(), &entry))
			assert.Equal(t, tc.wantLevel, entry["level"])
			assert.Equal(t, GetTraceID(ctx), entry["trace_id"])
			assert.NotContains(t, logBuf.String(), "10.0.0.5:27017")
		})
	}
}
