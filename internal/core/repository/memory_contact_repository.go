package repository

import (
	"sync"

	"membership/internal/core/model"
)

// InMemoryContactRepository is exported, unlike the other in-memory stores,
// so tests can reach All and inspect submissions the read-less ContactRepository
// interface cannot expose.
type InMemoryContactRepository struct {
	contacts []*model.Contact
	mutex    sync.RWMutex
}

func NewInMemoryContactRepository() *InMemoryContactRepository {
	return &InMemoryContactRepository{}
}

func (r *InMemoryContactRepository) Create(contact *model.Contact) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.contacts = append(r.contacts, contact)
	return nil
}

// All returns every stored submission in insertion order.
func (r *InMemoryContactRepository) All() []*model.Contact {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return append([]*model.Contact(nil), r.contacts...)
}
