package company

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNoSnapshot = errors.New("no stored company profile")

// Snapshotter persists the whole profile as a single record.
type Snapshotter interface {
	// Load returns ErrNoSnapshot when nothing has been stored yet.
	Load(ctx context.Context) (*Profile, error)
	Save(ctx context.Context, p Profile) error
}

var _ Snapshotter = (*MongoSnapshotter)(nil)

const profileDocID = "profile"

type profileDocument struct {
	ID      string `bson:"_id"`
	Profile `bson:",inline"`
}

// MongoSnapshotter keeps the profile as one document in the "company" collection.
type MongoSnapshotter struct {
	collection *mongo.Collection
}

func NewMongoSnapshotter(db *mongo.Database) *MongoSnapshotter {
	return &MongoSnapshotter{collection: db.Collection("company")}
}

func (m *MongoSnapshotter) Load(ctx context.Context) (*Profile, error) {
	var doc profileDocument
	err := m.collection.FindOne(ctx, bson.M{"_id": profileDocID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to load company profile: %w", err)
	}
	return &doc.Profile, nil
}

func (m *MongoSnapshotter) Save(ctx context.Context, p Profile) error {
	doc := profileDocument{ID: profileDocID, Profile: p}
	_, err := m.collection.ReplaceOne(ctx, bson.M{"_id": profileDocID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to store company profile: %w", err)
	}
	return nil
}
