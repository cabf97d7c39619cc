package mongodb

import (
	"errors"

	"github.com/zhu4ok/Software-architecture-lab5/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const userEntity = "user"

// MapError maps a driver error from operation to a store error.
// mongo.ErrNoDocuments becomes store.ErrUserNotFound; everything else is a
// storage fault wrapped in a store.StoreError.
func MapError(operation string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrUserNotFound
	}

	message := "query failed"
	switch {
	case mongo.IsTimeout(err):
		message = "timed out"
	case mongo.IsNetworkError(err):
		message = "network error"
	}

	return store.NewStoreError(userEntity, operation, message, err)
}

// parseID converts a public user ID into an ObjectID.
// Anything that is not a 24-character hex string cannot name a stored user
// and is reported as not found.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, store.ErrUserNotFound
	}
	return oid, nil
}
