package repository

import (
	"sort"
	"strings"
	"sync"

	"membership/internal/core/model"
)

type inMemoryMemberRepository struct {
	members map[string]*model.Member
	mutex   sync.RWMutex
}

func NewInMemoryMemberRepository() MemberRepository {
	return &inMemoryMemberRepository{
		members: make(map[string]*model.Member),
	}
}

func (r *inMemoryMemberRepository) Create(member *model.Member) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.members[member.ID] = member
	return nil
}

func (r *inMemoryMemberRepository) FindByID(id string) (*model.Member, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	if member, exists := r.members[id]; exists {
		return member, nil
	}
	return nil, nil
}

func (r *inMemoryMemberRepository) FindAll(search string) ([]*model.Member, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	term := strings.ToLower(search)
	var result []*model.Member
	for _, member := range r.members {
		if term == "" || memberMatches(member, term) {
			result = append(result, member)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func memberMatches(member *model.Member, term string) bool {
	for _, field := range []string{
		member.FirstName,
		member.Surname,
		member.Location,
		member.Phone,
		member.Contact,
	} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
