package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

type hotelDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	ns := "db." + CollectionHotels

	mt.Run("insert returns generated id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		res, err := NewMongoStore(mt.DB).InsertOne(ctx, CollectionHotels, bson.M{"name": "Sea View"})
		require.NoError(mt, err)
		assert.True(mt, res.Acknowledged)
		_, ok := res.InsertedID.(primitive.ObjectID)
		assert.True(mt, ok)
	})

	mt.Run("insert duplicate key", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error",
		}))
		_, err := NewMongoStore(mt.DB).InsertOne(ctx, CollectionUsers, bson.M{"email": "a@x.com"})
		assert.ErrorIs(mt, err, ErrDuplicate)
	})

	mt.Run("find decodes all batches", func(mt *mtest.T) {
		id1, id2 := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{{Key: "_id", Value: id1}, {Key: "name", Value: "A"}}),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch, bson.D{{Key: "_id", Value: id2}, {Key: "name", Value: "B"}}),
		)
		var out []hotelDoc
		require.NoError(mt, NewMongoStore(mt.DB).Find(ctx, CollectionHotels, bson.M{}, &out))
		require.Len(mt, out, 2)
		assert.Equal(mt, id1, out[0].ID)
		assert.Equal(mt, "B", out[1].Name)
	})

	mt.Run("findOne missing is ErrNotFound", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		var out hotelDoc
		err := NewMongoStore(mt.DB).FindOne(ctx, CollectionHotels, bson.M{"_id": primitive.NewObjectID()}, &out)
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("update reports counts", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		res, err := NewMongoStore(mt.DB).UpdateOne(ctx, CollectionUsers,
			bson.M{"email": "a@x.com"}, bson.M{"$set": bson.M{"role": "admin"}}, true)
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.MatchedCount)
		assert.Equal(mt, int64(1), res.ModifiedCount)
	})

	mt.Run("delete reports zero on miss", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		res, err := NewMongoStore(mt.DB).DeleteOne(ctx, CollectionBookings, bson.M{"_id": primitive.NewObjectID()})
		require.NoError(mt, err)
		assert.Equal(mt, int64(0), res.DeletedCount)
	})

	mt.Run("command failure is ErrStoreUnavailable", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 2, Name: "BadValue", Message: "bad value",
		}))
		_, err := NewMongoStore(mt.DB).DeleteOne(ctx, CollectionBookings, bson.M{})
		assert.ErrorIs(mt, err, ErrStoreUnavailable)
	})
}

func TestParseID(t *testing.T) {
	id := primitive.NewObjectID()
	got, err := ParseID(id.Hex())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = ParseID("not-an-id")
	assert.ErrorIs(t, err, ErrInvalidID)
}
