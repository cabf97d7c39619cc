package api

import (
	"errors"
	"net/http"

	"github.com/zhu4ok/Software-architecture-lab5/internal/api/shared"
	"github.com/zhu4ok/Software-architecture-lab5/internal/domain"
	"github.com/zhu4ok/Software-architecture-lab5/internal/store"
)

// Client-facing messages. Internal error text never reaches the client.
const (
	msgUserNotFound = "User not found."
	msgListFailed   = "Error retrieving users from the database."
	msgGetFailed    = "Error retrieving user."
	msgCreateFailed = "Error adding new user."
	msgUpdateFailed = "Error updating user."
	msgDeleteFailed = "Error deleting user."
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Anything unrecognized is a storage fault.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidFormat):
		return http.StatusBadRequest

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err, using
// faultMessage for storage faults. Validation failures have no message.
func GetSafeErrorMessage(err error, faultMessage string) string {
	switch MapErrorToStatusCode(err) {
	case http.StatusBadRequest, http.StatusOK:
		return ""
	case http.StatusNotFound:
		return msgUserNotFound
	default:
		return faultMessage
	}
}

// HandleAPIError writes the response for err. Validation failures get a bare
// status; everything else a plain-text message, logged with the trace ID.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, faultMessage string) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusBadRequest {
		respondBadRequest(w, r, err)
		return
	}
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err, faultMessage), err)
}
