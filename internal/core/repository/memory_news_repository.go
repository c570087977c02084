package repository

import (
	"sort"
	"sync"

	"membership/internal/core/model"
)

type inMemoryNewsRepository struct {
	news  map[string]*model.News
	mutex sync.RWMutex
}

func NewInMemoryNewsRepository() NewsRepository {
	return &inMemoryNewsRepository{
		news: make(map[string]*model.News),
	}
}

func (r *inMemoryNewsRepository) Create(news *model.News) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.news[news.ID] = news
	return nil
}

func (r *inMemoryNewsRepository) FindByID(id string) (*model.News, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	if news, exists := r.news[id]; exists {
		return news, nil
	}
	return nil, nil
}

func (r *inMemoryNewsRepository) FindAll() ([]*model.News, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var result []*model.News
	for _, news := range r.news {
		result = append(result, news)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *inMemoryNewsRepository) Update(news *model.News) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.news[news.ID] = news
	return nil
}

func (r *inMemoryNewsRepository) Delete(id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	delete(r.news, id)
	return nil
}
