package service

import (
	"membership/internal/core/apperr"
	"membership/internal/core/model"
	"membership/internal/core/repository"
)

type ContactService interface {
	SubmitContact(name, email, message string) (*model.Contact, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
}

func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{
		contactRepo: contactRepo,
	}
}

func (s *contactService) SubmitContact(name, email, message string) (*model.Contact, error) {
	if name == "" || email == "" || message == "" {
		return nil, apperr.Validation("name, email and message are required")
	}

	contact := model.NewContact(name, email, message)
	if err := s.contactRepo.Create(contact); err != nil {
		return nil, apperr.Store(err)
	}
	return contact, nil
}
