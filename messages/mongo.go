package messages

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medivance-backend/models"
)

var _ Repository = (*MongoRepository)(nil)

// MongoRepository stores messages in the "messages" collection.
type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection("messages")}
}

func (r *MongoRepository) ListAll(ctx context.Context) ([]models.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer cursor.Close(ctx)

	messageList := []models.ContactMessage{}
	if err = cursor.All(ctx, &messageList); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messageList, nil
}

func (r *MongoRepository) Find(ctx context.Context, id int64) (*models.ContactMessage, error) {
	var m models.ContactMessage
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to find message %d: %w", id, err)
	}
	return &m, nil
}

func (r *MongoRepository) Insert(ctx context.Context, m *models.ContactMessage) error {
	if _, err := r.collection.InsertOne(ctx, m); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (r *MongoRepository) Replace(ctx context.Context, m *models.ContactMessage) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return fmt.Errorf("failed to update message %d: %w", m.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *MongoRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete message %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrMessageNotFound
	}
	return nil
}
