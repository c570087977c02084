package repository

import (
	"context"
	"time"

	"membership/internal/core/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NewsRepository interface {
	Create(news *model.News) error
	FindByID(id string) (*model.News, error)
	// FindAll returns all news posts, newest first.
	FindAll() ([]*model.News, error)
	Update(news *model.News) error
	Delete(id string) error
}

type MongoNewsRepository struct {
	collection *mongo.Collection
}

func NewMongoNewsRepository(db *mongo.Database) *MongoNewsRepository {
	return &MongoNewsRepository{
		collection: db.Collection("news"),
	}
}

func (r *MongoNewsRepository) Create(news *model.News) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, news)
	return err
}

func (r *MongoNewsRepository) FindByID(id string) (*model.News, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var news model.News
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&news)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &news, err
}

func (r *MongoNewsRepository) FindAll() ([]*model.News, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var news []*model.News
	if err = cursor.All(ctx, &news); err != nil {
		return nil, err
	}
	return news, nil
}

func (r *MongoNewsRepository) Update(news *model.News) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.ReplaceOne(ctx, bson.M{"id": news.ID}, news)
	return err
}

func (r *MongoNewsRepository) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	return err
}
