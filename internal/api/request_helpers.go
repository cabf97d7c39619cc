package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zhu4ok/Software-architecture-lab5/internal/api/shared"
	"github.com/zhu4ok/Software-architecture-lab5/internal/platform/logger"
)

// pathID returns the {id} path parameter. Its format is the store's concern:
// an id the store cannot parse is simply not found.
func pathID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// decodeAndValidate decodes the request body into req and validates it.
// It writes a 400 and returns false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		respondBadRequest(w, r, err)
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		respondBadRequest(w, r, err)
		return false
	}
	return true
}

func respondBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Debug("rejected request",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()))
	shared.RespondWithStatus(w, r, http.StatusBadRequest)
}
