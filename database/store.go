package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionHotels    = "hotels"
	CollectionBookings  = "bookings"
	CollectionFeedbacks = "feedbacks"
	CollectionUsers     = "users"
)

var (
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrNotFound         = errors.New("document not found")
	ErrDuplicate        = errors.New("duplicate key")
	ErrInvalidID        = errors.New("invalid id")
)

// InsertResult mirrors the driver's insert acknowledgement.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

// UpdateResult mirrors the driver's update acknowledgement.
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

// DeleteResult mirrors the driver's delete acknowledgement.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// Store is the single-document access surface over the named collections.
// Implementations never span more than one document per call.
type Store interface {
	// Find decodes every matching document into out, a pointer to a slice.
	Find(ctx context.Context, collection string, filter bson.M, out interface{}) error
	// FindOne decodes the first match into out or returns ErrNotFound.
	FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error
	InsertOne(ctx context.Context, collection string, doc interface{}) (InsertResult, error)
	// UpdateOne applies an update document such as {"$set": {...}}.
	UpdateOne(ctx context.Context, collection string, filter, update bson.M, upsert bool) (UpdateResult, error)
	DeleteOne(ctx context.Context, collection string, filter bson.M) (DeleteResult, error)
}

// ParseID converts a hex string into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// MongoStore implements Store over a *mongo.Database.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	cursor, err := s.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return classify("find", collection, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return classify("find", collection, err)
	}
	return nil
}

func (s *MongoStore) FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	if err := s.db.Collection(collection).FindOne(ctx, filter).Decode(out); err != nil {
		return classify("findOne", collection, err)
	}
	return nil
}

func (s *MongoStore) InsertOne(ctx context.Context, collection string, doc interface{}) (InsertResult, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return InsertResult{}, classify("insertOne", collection, err)
	}
	return InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (s *MongoStore) UpdateOne(ctx context.Context, collection string, filter, update bson.M, upsert bool) (UpdateResult, error) {
	opts := options.Update().SetUpsert(upsert)
	res, err := s.db.Collection(collection).UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return UpdateResult{}, classify("updateOne", collection, err)
	}
	return UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func (s *MongoStore) DeleteOne(ctx context.Context, collection string, filter bson.M) (DeleteResult, error) {
	res, err := s.db.Collection(collection).DeleteOne(ctx, filter)
	if err != nil {
		return DeleteResult{}, classify("deleteOne", collection, err)
	}
	return DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// classify maps driver errors onto the store's sentinel errors.
func classify(op, collection string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s %s: %w", op, collection, ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s %s: %w: %w", op, collection, ErrDuplicate, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s %s: %w", op, collection, err)
	default:
		return fmt.Errorf("%s %s: %w: %w", op, collection, ErrStoreUnavailable, err)
	}
}
