package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/zhu4ok/Software-architecture-lab5/internal/domain"
	"github.com/zhu4ok/Software-architecture-lab5/internal/platform/logger"
	"github.com/zhu4ok/Software-architecture-lab5/internal/redact"
	"github.com/zhu4ok/Software-architecture-lab5/internal/store"
)

// userDocument is the JSONB shape of a stored user. Nil fields encode as
// null so that concatenating a document overwrites them.
type userDocument struct {
	Name    *string  `json:"name"`
	Surname *string  `json:"surname"`
	Age     *float64 `json:"age"`
}

func encodeFields(fields domain.UserFields) (string, error) {
	raw, err := json.Marshal(userDocument{
		Name:    fields.Name,
		Surname: fields.Surname,
		Age:     fields.Age,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode user document: %w", err)
	}
	return string(raw), nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		id  string
		raw []byte
	)
	if err := row.Scan(&id, &raw); err != nil {
		return nil, err
	}

	var doc userDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode user document %s: %w", id, err)
	}

	return domain.UserFields{
		Name:    doc.Name,
		Surname: doc.Surname,
		Age:     doc.Age,
	}.WithID(id), nil
}

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL JSONB table as the storage backend.
type PostgresUserStore struct {
	db     DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// List implements store.UserStore.List
func (s *PostgresUserStore) List(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT id::text, document FROM users`)
	if err != nil {
		log.Error("failed to list users", slog.String("error", redact.Error(err)))
		return nil, MapError("list", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", redact.Error(err)))
		}
	}()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Error("failed to scan user", slog.String("error", redact.Error(err)))
			return nil, MapError("list", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating user rows", slog.String("error", redact.Error(err)))
		return nil, MapError("list", err)
	}

	log.Debug("users listed", slog.Int("count", len(users)))
	return users, nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	userID, err := parseID(id)
	if err != nil {
		log.Debug("malformed user ID", slog.String("user_id", id))
		return nil, err
	}

	query := `
		SELECT id::text, document
		FROM users
		WHERE id = $1
	`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, userID.String()))
	if err != nil {
		return nil, s.fail(log, "get", id, err)
	}
	return user, nil
}

// Create implements store.UserStore.Create
func (s *PostgresUserStore) Create(ctx context.Context, fields domain.UserFields) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	document, err := encodeFields(fields)
	if err != nil {
		return nil, store.NewStoreError(userEntity, "create", "encode failed", err)
	}

	query := `
		INSERT INTO users (document)
		VALUES ($1::jsonb)
		RETURNING id::text, document
	`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, document))
	if err != nil {
		log.Error("failed to create user", slog.String("error", redact.Error(err)))
		return nil, MapError("create", err)
	}

	log.Info("user created successfully", slog.String("user_id", user.ID))
	return user, nil
}

// Update implements store.UserStore.Update
// All three keys are written; null values overwrite what was stored.
func (s *PostgresUserStore) Update(ctx context.Context, id string, fields domain.UserFields) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	userID, err := parseID(id)
	if err != nil {
		log.Debug("malformed user ID", slog.String("user_id", id))
		return nil, err
	}

	document, err := encodeFields(fields)
	if err != nil {
		return nil, store.NewStoreError(userEntity, "update", "encode failed", err)
	}

	query := `
		UPDATE users
		SET document = document || $2::jsonb
		WHERE id = $1
		RETURNING id::text, document
	`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, userID.String(), document))
	if err != nil {
		return nil, s.fail(log, "update", id, err)
	}

	log.Info("user updated successfully", slog.String("user_id", id))
	return user, nil
}

// Delete implements store.UserStore.Delete
// RETURNING yields the row as it was before removal.
func (s *PostgresUserStore) Delete(ctx context.Context, id string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	userID, err := parseID(id)
	if err != nil {
		log.Debug("malformed user ID", slog.String("user_id", id))
		return nil, err
	}

	query := `
		DELETE FROM users
		WHERE id = $1
		RETURNING id::text, document
	`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, userID.String()))
	if err != nil {
		return nil, s.fail(log, "delete", id, err)
	}

	log.Info("user deleted successfully", slog.String("user_id", id))
	return user, nil
}

// fail maps err and logs it at a level matching its kind.
func (s *PostgresUserStore) fail(log *slog.Logger, operation, id string, err error) error {
	mapped := MapError(operation, err)
	if store.IsNotFoundError(mapped) {
		log.Debug("user not found",
			slog.String("operation", operation),
			slog.String("user_id", id))
		return mapped
	}

	log.Error("user store operation failed",
		slog.String("operation", operation),
		slog.String("error", redact.Error(err)),
		slog.String("user_id", id))
	return mapped
}
