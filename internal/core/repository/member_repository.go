package repository

import (
	"context"
	"regexp"
	"time"

	"membership/internal/core/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MemberRepository interface {
	Create(member *model.Member) error
	FindByID(id string) (*model.Member, error)
	// FindAll returns members newest first. A non-empty search narrows the
	// result to members whose name, location, phone or contact field
	// contains the search term, case-insensitively.
	FindAll(search string) ([]*model.Member, error)
}

type MongoMemberRepository struct {
	collection *mongo.Collection
}

func NewMongoMemberRepository(db *mongo.Database) *MongoMemberRepository {
	return &MongoMemberRepository{
		collection: db.Collection("members"),
	}
}

func (r *MongoMemberRepository) Create(member *model.Member) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, member)
	return err
}

func (r *MongoMemberRepository) FindByID(id string) (*model.Member, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var member model.Member
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&member)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &member, err
}

func (r *MongoMemberRepository) FindAll(search string) ([]*model.Member, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, memberSearchFilter(search), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []*model.Member
	if err = cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// memberSearchFilter builds the Mongo filter for a listing. The search term
// is quoted so it matches as a literal substring; metacharacters like "+"
// or "." in a phone search must not change the query or break it.
func memberSearchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}

	pattern := bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
	return bson.M{"$or": []bson.M{
		{"firstName": pattern},
		{"surname": pattern},
		{"location": pattern},
		{"phone": pattern},
		{"contact": pattern},
	}}
}
