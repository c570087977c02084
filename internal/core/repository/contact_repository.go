package repository

import (
	"context"
	"time"

	"membership/internal/core/model"

	"go.mongodb.org/mongo-driver/mongo"
)

// ContactRepository is insert-only. Contact submissions are an audit trail
// with no read path through the API.
type ContactRepository interface {
	Create(contact *model.Contact) error
}

type MongoContactRepository struct {
	collection *mongo.Collection
}

func NewMongoContactRepository(db *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{
		collection: db.Collection("contacts"),
	}
}

func (r *MongoContactRepository) Create(contact *model.Contact) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, contact)
	return err
}
