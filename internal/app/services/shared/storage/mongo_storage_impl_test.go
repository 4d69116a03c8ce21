package storage

import (
	"context"
	"medora-portal/internal/app/models"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
)

func newMockMongoStorage(mt *mtest.T, ttl time.Duration) *mongoStorage {
	return &mongoStorage{Collection: mt.Coll, ttl: ttl, log: zap.NewNop()}
}

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestMongoStorage(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: 3, Username: "doc1", FirstName: "Gregory", LastName: "House", Role: models.RoleDoctor}
	rawUser, err := json.Marshal(user)
	require.NoError(t, err)

	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Load Round Trip", func(mt *mtest.T) {
		store := newMockMongoStorage(mt, 0)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "client-a"},
			{Key: "medora_token", Value: "token-a"},
			{Key: "medora_user", Value: string(rawUser)},
		}))

		token, loaded, err := store.Load(ctx, "client-a")

		require.NoError(mt, err)
		assert.Equal(mt, "token-a", token)
		assert.Equal(mt, user, loaded)
		find := mt.GetStartedEvent()
		assert.Equal(mt, "find", find.CommandName)
		assert.Equal(mt, "client-a", find.Command.Lookup("filter", "_id").StringValue())
	})

	mt.Run("Load Missing Client", func(mt *mtest.T) {
		store := newMockMongoStorage(mt, 0)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		token, loaded, err := store.Load(ctx, "nobody")

		require.NoError(mt, err)
		assert.Empty(mt, token)
		assert.Nil(mt, loaded)
	})

	mt.Run("Half Written Document Is Cleared", func(mt *mtest.T) {
		store := newMockMongoStorage(mt, 0)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
				{Key: "_id", Value: "client-b"},
				{Key: "medora_token", Value: "orphan-token"},
			}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		token, loaded, err := store.Load(ctx, "client-b")

		require.NoError(mt, err)
		assert.Empty(mt, token)
		assert.Nil(mt, loaded)
		mt.GetStartedEvent()
		deleteEvent := mt.GetStartedEvent()
		require.NotNil(mt, deleteEvent)
		assert.Equal(mt, "delete", deleteEvent.CommandName)
		assert.Equal(mt, "client-b", deleteEvent.Command.Lookup("deletes", "0", "q", "_id").StringValue())
	})

	mt.Run("Unreadable User Is Cleared", func(mt *mtest.T) {
		store := newMockMongoStorage(mt, 0)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, bson.D{
				{Key: "_id", Value: "client-c"},
				{Key: "medora_token", Value: "token-c"},
				{Key: "medora_user", Value: "{not json"},
			}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		token, loaded, err := store.Load(ctx, "client-c")

		require.NoError(mt, err)
		assert.Empty(mt, token)
		assert.Nil(mt, loaded)
	})

	mt.Run("Save Upserts Both Keys With Expiry", func(mt *mtest.T) {
		store := newMockMongoStorage(mt, time.Hour)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		before := time.Now().UTC()

		require.NoError(mt, store.Save(ctx, "client-a", "token-a", user))

		update := mt.GetStartedEvent()
		require.NotNil(mt, update)
		assert.Equal(mt, "update", update.CommandName)
		statement := update.Command.Lookup("updates", "0").Document()
		assert.Equal(mt, "client-a", statement.Lookup("q", "_id").StringValue())
		assert.True(mt, statement.Lookup("upsert").Boolean())
		assert.Equal(mt, "token-a", statement.Lookup("u", "medora_token").StringValue())
		assert.JSONEq(mt, string(rawUser), statement.Lookup("u", "medora_user").StringValue())
		expiresAt := statement.Lookup("u", "expires_at").Time()
		assert.WithinDuration(mt, before.Add(time.Hour), expiresAt, time.Minute)
	})

	mt.Run("Save Without TTL Has No Expiry", func(mt *mtest.T) {
		store := newMockMongoStorage(mt, 0)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		require.NoError(mt, store.Save(ctx, "client-a", "token-a", user))

		update := mt.GetStartedEvent()
		_, err := update.Command.Lookup("updates", "0", "u").Document().LookupErr("expires_at")
		assert.Error(mt, err)
	})

	mt.Run("SaveUser Requires A Stored Token", func(mt *mtest.T) {
		store := newMockMongoStorage(mt, time.Hour)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		require.NoError(mt, store.SaveUser(ctx, "client-a", user))

		update := mt.GetStartedEvent()
		require.NotNil(mt, update)
		statement := update.Command.Lookup("updates", "0").Document()
		assert.Equal(mt, "client-a", statement.Lookup("q", "_id").StringValue())
		assert.True(mt, statement.Lookup("q", "medora_token", "$exists").Boolean())
		_, err := statement.LookupErr("upsert")
		assert.Error(mt, err, "a missing token must never create the document")
		set := statement.Lookup("u", "$set").Document()
		assert.JSONEq(mt, string(rawUser), set.Lookup("medora_user").StringValue())
		_, err = set.LookupErr("expires_at")
		assert.NoError(mt, err)
		_, err = set.LookupErr("medora_token")
		assert.Error(mt, err)
	})

	mt.Run("Clear Deletes Document", func(mt *mtest.T) {
		store := newMockMongoStorage(mt, 0)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		require.NoError(mt, store.Clear(ctx, "client-a"))

		deleteEvent := mt.GetStartedEvent()
		assert.Equal(mt, "delete", deleteEvent.CommandName)
	})

	mt.Run("Write Error", func(mt *mtest.T) {
		store := newMockMongoStorage(mt, 0)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "write rejected",
		}))

		assert.Error(mt, store.Save(ctx, "client-a", "token-a", user))
	})

	mt.Run("EnsureIndexes Creates TTL Index", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, EnsureIndexes(ctx, mt.Client, "medora"))

		create := mt.GetStartedEvent()
		require.NotNil(mt, create)
		assert.Equal(mt, "createIndexes", create.CommandName)
		assert.Equal(mt, "client_storage", create.Command.Lookup("createIndexes").StringValue())
		index := create.Command.Lookup("indexes", "0").Document()
		assert.Equal(mt, int32(1), index.Lookup("key", "expires_at").Int32())
		assert.Equal(mt, int32(0), index.Lookup("expireAfterSeconds").Int32())
	})
}
