package model

import (
	"time"

	"membership/internal/core/util"
)

type News struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	ImageURL    string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	VideoURL    string    `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

func NewNews(title, description, imageURL, videoURL string) *News {
	return &News{
		ID:          util.GenerateID(),
		Title:       title,
		Description: description,
		ImageURL:    imageURL,
		VideoURL:    videoURL,
		CreatedAt:   time.Now(),
	}
}
