package memstore

import (
	"context"
	"errors"
	"testing"

	"lustrio/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type doc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Email string             `bson:"email"`
	Role  string             `bson:"role,omitempty"`
	Count int                `bson:"count"`
}

func TestInsertFindDelete(t *testing.T) {
	ctx := context.Background()
	s := New()

	res, err := s.InsertOne(ctx, "users", doc{Email: "a@x.com", Count: 1})
	require.NoError(t, err)
	id, ok := res.InsertedID.(primitive.ObjectID)
	require.True(t, ok)

	_, err = s.InsertOne(ctx, "users", doc{Email: "b@x.com", Count: 2})
	require.NoError(t, err)

	var all []doc
	require.NoError(t, s.Find(ctx, "users", bson.M{}, &all))
	assert.Len(t, all, 2)

	var some []doc
	require.NoError(t, s.Find(ctx, "users", bson.M{"count": 2}, &some))
	require.Len(t, some, 1)
	assert.Equal(t, "b@x.com", some[0].Email)

	var one doc
	require.NoError(t, s.FindOne(ctx, "users", bson.M{"_id": id}, &one))
	assert.Equal(t, "a@x.com", one.Email)

	del, err := s.DeleteOne(ctx, "users", bson.M{"_id": id})
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	del, err = s.DeleteOne(ctx, "users", bson.M{"_id": id})
	require.NoError(t, err)
	assert.Equal(t, int64(0), del.DeletedCount)

	err = s.FindOne(ctx, "users", bson.M{"_id": id}, &one)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestFindOnEmptyCollectionReturnsEmptySlice(t *testing.T) {
	var out []doc
	require.NoError(t, New().Find(context.Background(), "hotels", bson.M{}, &out))
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestUpdateAndUpsert(t *testing.T) {
	ctx := context.Background()
	s := New()

	res, err := s.UpdateOne(ctx, "users", bson.M{"email": "a@x.com"}, bson.M{"$set": bson.M{"role": "admin"}}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.MatchedCount)
	assert.Equal(t, 0, s.Len("users"))

	res, err = s.UpdateOne(ctx, "users", bson.M{"email": "a@x.com"}, bson.M{"$set": bson.M{"role": "admin"}}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.UpsertedCount)
	assert.NotNil(t, res.UpsertedID)

	var got doc
	require.NoError(t, s.FindOne(ctx, "users", bson.M{"email": "a@x.com"}, &got))
	assert.Equal(t, "admin", got.Role)

	res, err = s.UpdateOne(ctx, "users", bson.M{"email": "a@x.com"}, bson.M{"$set": bson.M{"role": "admin"}}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)
	assert.Equal(t, int64(0), res.ModifiedCount)
}

func TestUniqueAndFailure(t *testing.T) {
	ctx := context.Background()
	s := New(WithUnique("users", "email"))

	_, err := s.InsertOne(ctx, "users", doc{Email: "a@x.com"})
	require.NoError(t, err)
	_, err = s.InsertOne(ctx, "users", doc{Email: "a@x.com"})
	assert.ErrorIs(t, err, database.ErrDuplicate)

	s.Fail(errors.New("connection reset"))
	var out []doc
	assert.ErrorIs(t, s.Find(ctx, "users", bson.M{}, &out), database.ErrStoreUnavailable)
	s.Fail(nil)
	assert.NoError(t, s.Find(ctx, "users", bson.M{}, &out))
}

func TestUnsupportedOperator(t *testing.T) {
	_, err := New().UpdateOne(context.Background(), "users", bson.M{}, bson.M{"$inc": bson.M{"count": 1}}, false)
	assert.Error(t, err)
}
