package storage

import (
	"context"
	"errors"
	"medora-portal/internal/app/contracts"
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// clientDocument holds both keys of one browser in a single document so a
// write or clear touches them atomically.
type clientDocument struct {
	ClientID  string     `bson:"_id"`
	Token     string     `bson:"medora_token"`
	User      string     `bson:"medora_user"`
	UpdatedAt time.Time  `bson:"updated_at"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty"`
}

type mongoStorage struct {
	Collection *mongo.Collection
	ttl        time.Duration
	log        *zap.Logger
}

func NewMongoStorage(db *mongo.Client, dbName string, ttl time.Duration, logger *zap.Logger) contracts.ClientStorage {
	return &mongoStorage{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionClientStorage),
		ttl:        ttl,
		log:        logger,
	}
}

// EnsureIndexes creates the TTL index that lets MongoDB drop abandoned
// browser entries on its own.
func EnsureIndexes(ctx context.Context, db *mongo.Client, dbName string) error {
	collection := db.Database(dbName).Collection(constvars.MongoCollectionClientStorage)
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (s *mongoStorage) expiry(now time.Time) *time.Time {
	if s.ttl <= 0 {
		return nil
	}
	expiresAt := now.Add(s.ttl)
	return &expiresAt
}

func (s *mongoStorage) Load(ctx context.Context, clientID string) (string, *models.User, error) {
	var document clientDocument
	err := s.Collection.FindOne(ctx, bson.M{"_id": clientID}).Decode(&document)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil, nil
		}
		return "", nil, exceptions.ErrMongoDBFindDocument(err)
	}

	if document.Token == "" || document.User == "" {
		s.log.Warn("Client storage half written, clearing",
			zap.Error(exceptions.ErrStorageHalfWritten(clientID)),
		)
		return "", nil, s.Clear(ctx, clientID)
	}

	user := new(models.User)
	if err := json.Unmarshal([]byte(document.User), user); err != nil {
		s.log.Warn("Client storage user record unreadable, clearing",
			zap.String("client_id", clientID),
			zap.Error(err),
		)
		return "", nil, s.Clear(ctx, clientID)
	}
	return document.Token, user, nil
}

func (s *mongoStorage) Save(ctx context.Context, clientID, token string, user *models.User) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	now := time.Now().UTC()
	document := clientDocument{
		ClientID:  clientID,
		Token:     token,
		User:      string(rawUser),
		UpdatedAt: now,
		ExpiresAt: s.expiry(now),
	}
	_, err = s.Collection.ReplaceOne(ctx, bson.M{"_id": clientID}, document, options.Replace().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (s *mongoStorage) SaveUser(ctx context.Context, clientID string, user *models.User) error {
	rawUser, err := json.Marshal(user)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	now := time.Now().UTC()
	set := bson.M{
		"medora_user": string(rawUser),
		"updated_at":  now,
	}
	if expiresAt := s.expiry(now); expiresAt != nil {
		set["expires_at"] = *expiresAt
	}
	_, err = s.Collection.UpdateOne(ctx, bson.M{"_id": clientID, "medora_token": bson.M{"$exists": true}}, bson.M{"$set": set})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (s *mongoStorage) Clear(ctx context.Context, clientID string) error {
	_, err := s.Collection.DeleteOne(ctx, bson.M{"_id": clientID})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
