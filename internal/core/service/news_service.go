package service

import (
	"context"
	"time"

	"membership/internal/cache"
	"membership/internal/core/apperr"
	"membership/internal/core/model"
	"membership/internal/core/repository"
)

const (
	newsCacheKey = "news:all"
	newsCacheTTL = 5 * time.Minute
)

type NewsService interface {
	CreateNews(title, description, imageURL, videoURL string) (*model.News, error)
	// UpdateNews replaces title and description. Media URLs are replaced
	// only when a non-empty value is supplied; the previous files are not
	// cleaned up.
	UpdateNews(id, title, description, imageURL, videoURL string) (*model.News, error)
	// DeleteNews removes the post and returns it so the caller can remove
	// the referenced files.
	DeleteNews(id string) (*model.News, error)
	ListNews() ([]*model.News, error)
}

type newsService struct {
	newsRepo repository.NewsRepository
}

func NewNewsService(newsRepo repository.NewsRepository) NewsService {
	return &newsService{
		newsRepo: newsRepo,
	}
}

func (s *newsService) CreateNews(title, description, imageURL, videoURL string) (*model.News, error) {
	if title == "" || description == "" {
		return nil, apperr.Validation("title and description are required")
	}

	news := model.NewNews(title, description, imageURL, videoURL)
	if err := s.newsRepo.Create(news); err != nil {
		return nil, apperr.Store(err)
	}
	s.invalidate()
	return news, nil
}

func (s *newsService) UpdateNews(id, title, description, imageURL, videoURL string) (*model.News, error) {
	if title == "" || description == "" {
		return nil, apperr.Validation("title and description are required")
	}

	news, err := s.newsRepo.FindByID(id)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if news == nil {
		return nil, apperr.NotFound("news not found")
	}

	news.Title = title
	news.Description = description
	if imageURL != "" {
		news.ImageURL = imageURL
	}
	if videoURL != "" {
		news.VideoURL = videoURL
	}

	if err := s.newsRepo.Update(news); err != nil {
		return nil, apperr.Store(err)
	}
	s.invalidate()
	return news, nil
}

func (s *newsService) DeleteNews(id string) (*model.News, error) {
	news, err := s.newsRepo.FindByID(id)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if news == nil {
		return nil, apperr.NotFound("news not found")
	}

	if err := s.newsRepo.Delete(id); err != nil {
		return nil, apperr.Store(err)
	}
	s.invalidate()
	return news, nil
}

func (s *newsService) ListNews() ([]*model.News, error) {
	ctx := context.Background()

	var cached []*model.News
	if err := cache.Get(ctx, newsCacheKey, &cached); err == nil {
		return cached, nil
	}

	news, err := s.newsRepo.FindAll()
	if err != nil {
		return nil, apperr.Store(err)
	}
	if news == nil {
		news = []*model.News{}
	}

	_ = cache.Set(ctx, newsCacheKey, news, newsCacheTTL)
	return news, nil
}

func (s *newsService) invalidate() {
	_ = cache.Delete(context.Background(), newsCacheKey)
}
