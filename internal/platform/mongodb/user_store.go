package mongodb

import (
	"context"
	"log/slog"

	"github.com/zhu4ok/Software-architecture-lab5/internal/domain"
	"github.com/zhu4ok/Software-architecture-lab5/internal/platform/logger"
	"github.com/zhu4ok/Software-architecture-lab5/internal/redact"
	"github.com/zhu4ok/Software-architecture-lab5/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userDocument is the stored shape of a user. Nil fields are written as BSON
// null rather than omitted.
type userDocument struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    *string            `bson:"name"`
	Surname *string            `bson:"surname"`
	Age     *float64           `bson:"age"`
}

func (d *userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:      d.ID.Hex(),
		Name:    d.Name,
		Surname: d.Surname,
		Age:     d.Age,
	}
}

// fieldsDocument is the $set payload for an update.
func fieldsDocument(fields domain.UserFields) bson.D {
	return bson.D{
		{Key: "name", Value: fields.Name},
		{Key: "surname", Value: fields.Surname},
		{Key: "age", Value: fields.Age},
	}
}

// MongoUserStore implements the store.UserStore interface
// using a MongoDB collection as the storage backend.
type MongoUserStore struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

// NewMongoUserStore creates a MongoDB implementation of the UserStore interface
// over the named collection. The database handle is owned by the caller.
// If logger is nil, a default logger will be used.
func NewMongoUserStore(db *mongo.Database, collection string, logger *slog.Logger) *MongoUserStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &MongoUserStore{
		collection: db.Collection(collection),
		logger:     logger.With(slog.String("component", "user_store")),
	}
}

// Ensure MongoUserStore implements store.UserStore interface
var _ store.UserStore = (*MongoUserStore)(nil)

// List implements store.UserStore.List
func (s *MongoUserStore) List(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cursor, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		log.Error("failed to list users", slog.String("error", redact.Error(err)))
		return nil, MapError("list", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		log.Error("failed to decode users", slog.String("error", redact.Error(err)))
		return nil, MapError("list", err)
	}

	users := make([]*domain.User, 0, len(docs))
	for i := range docs {
		users = append(users, docs[i].toDomain())
	}

	log.Debug("users listed", slog.Int("count", len(users)))
	return users, nil
}

// GetByID implements store.UserStore.GetByID
func (s *MongoUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	oid, err := parseID(id)
	if err != nil {
		log.Debug("malformed user ID", slog.String("user_id", id))
		return nil, err
	}

	var doc userDocument
	err = s.collection.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		err = MapError("get", err)
		if store.IsNotFoundError(err) {
			log.Debug("user not found", slog.String("user_id", id))
		} else {
			log.Error("failed to get user by ID",
				slog.String("error", redact.Error(err)),
				slog.String("user_id", id))
		}
		return nil, err
	}

	return doc.toDomain(), nil
}

// Create implements store.UserStore.Create
func (s *MongoUserStore) Create(ctx context.Context, fields domain.UserFields) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	doc := userDocument{
		Name:    fields.Name,
		Surname: fields.Surname,
		Age:     fields.Age,
	}

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		log.Error("failed to create user", slog.String("error", redact.Error(err)))
		return nil, MapError("create", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, store.NewStoreError(userEntity, "create", "unexpected inserted ID type", nil)
	}
	doc.ID = oid

	log.Info("user created successfully", slog.String("user_id", oid.Hex()))
	return doc.toDomain(), nil
}

// Update implements store.UserStore.Update
// All three fields are written; nil values overwrite what was stored.
func (s *MongoUserStore) Update(ctx context.Context, id string, fields domain.UserFields) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	oid, err := parseID(id)
	if err != nil {
		log.Debug("malformed user ID", slog.String("user_id", id))
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.D{{Key: "$set", Value: fieldsDocument(fields)}}

	var doc userDocument
	err = s.collection.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: oid}}, update, opts).Decode(&doc)
	if err != nil {
		err = MapError("update", err)
		if store.IsNotFoundError(err) {
			log.Debug("user not found for update", slog.String("user_id", id))
		} else {
			log.Error("failed to update user",
				slog.String("error", redact.Error(err)),
				slog.String("user_id", id))
		}
		return nil, err
	}

	log.Info("user updated successfully", slog.String("user_id", id))
	return doc.toDomain(), nil
}

// Delete implements store.UserStore.Delete
func (s *MongoUserStore) Delete(ctx context.Context, id string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	oid, err := parseID(id)
	if err != nil {
		log.Debug("malformed user ID", slog.String("user_id", id))
		return nil, err
	}

	var doc userDocument
	err = s.collection.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		err = MapError("delete", err)
		if store.IsNotFoundError(err) {
			log.Debug("user not found for delete", slog.String("user_id", id))
		} else {
			log.Error("failed to delete user",
				slog.String("error", redact.Error(err)),
				slog.String("user_id", id))
		}
		return nil, err
	}

	log.Info("user deleted successfully", slog.String("user_id", id))
	return doc.toDomain(), nil
}
