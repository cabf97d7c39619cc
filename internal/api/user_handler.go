package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zhu4ok/Software-architecture-lab5/internal/api/shared"
	"github.com/zhu4ok/Software-architecture-lab5/internal/platform/logger"
	"github.com/zhu4ok/Software-architecture-lab5/internal/store"
)

// UserHandler handles the /api/users resource. Each request makes at most
// one store call, and only after the request has passed validation.
type UserHandler struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userStore store.UserStore, logger *slog.Logger) *UserHandler {
	if userStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("userStore cannot be nil for UserHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserHandler{
		userStore: userStore,
		logger:    logger.With(slog.String("component", "user_handler")),
	}
}

// RegisterRoutes mounts the user routes on r.
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Post("/", h.CreateUser)
		r.Get("/{id}", h.GetUser)
		r.Put("/{id}", h.UpdateUser)
		r.Delete("/{id}", h.DeleteUser)
	})
}

// ListUsers handles GET /users requests
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	users, err := h.userStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, msgListFailed)
		return
	}

	log.Debug("listed users", slog.Int("count", len(users)))
	shared.RespondWithJSON(w, r, http.StatusOK, usersToResponse(users))
}

// GetUser handles GET /users/{id} requests
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, msgGetFailed)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// CreateUser handles POST /users requests.
// name and surname must be non-empty and age must be present.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req UserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userStore.Create(r.Context(), req.Fields())
	if err != nil {
		HandleAPIError(w, r, err, msgCreateFailed)
		return
	}

	log.Debug("created user", slog.String("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// UpdateUser handles PUT /users/{id} requests.
// At least one field must be supplied. All three fields are written: the
// ones left out of the request are stored as null.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	id := pathID(r)

	var req updateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userStore.Update(r.Context(), id, req.Fields())
	if err != nil {
		HandleAPIError(w, r, err, msgUpdateFailed)
		return
	}

	log.Debug("updated user", slog.String("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// DeleteUser handles DELETE /users/{id} requests.
// The response carries the user as it was before deletion.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	id := pathID(r)

	user, err := h.userStore.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, msgDeleteFailed)
		return
	}

	log.Debug("deleted user", slog.String("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}
