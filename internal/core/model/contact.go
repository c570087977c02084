package model

import (
	"time"

	"membership/internal/core/util"
)

// Contact is a contact-form submission. Submissions are write-only; nothing
// reads them back through the API.
type Contact struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

func NewContact(name, email, message string) *Contact {
	return &Contact{
		ID:        util.GenerateID(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now(),
	}
}
