package postgres

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/zhu4ok/Software-architecture-lab5/internal/store"
)

const userEntity = "user"

// MapError maps a database error from operation to a store error.
// sql.ErrNoRows becomes store.ErrUserNotFound; everything else is a storage
// fault wrapped in a store.StoreError.
func MapError(operation string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrUserNotFound
	}

	message := "query failed"
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		message = "query failed with code " + pgErr.Code
	}

	return store.NewStoreError(userEntity, operation, message, err)
}

// parseID converts a public user ID into a UUID. Anything that is not a
// UUID cannot name a stored user and is reported as not found.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, store.ErrUserNotFound
	}
	return parsed, nil
}
