package service

import (
	"net/http"
	"testing"
	"time"

	"membership/internal/core/repository"
)

func TestCreateNewsValidation(t *testing.T) {
	svc := NewNewsService(repository.NewInMemoryNewsRepository())

	tests := []struct {
		name        string
		title       string
		description string
	}{
		{name: "missing title", title: "", description: "body"},
		{name: "missing description", title: "headline", description: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateNews(tt.title, tt.description, "", "")
			if err == nil {
				t.Fatal("CreateNews() error = nil, want validation error")
			}
			if status := errStatus(t, err); status != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", status)
			}
		})
	}
}

func TestListNewsNewestFirst(t *testing.T) {
	repo := repository.NewInMemoryNewsRepository()
	svc := NewNewsService(repo)

	older, err := svc.CreateNews("first", "body", "", "")
	if err != nil {
		t.Fatalf("CreateNews() error = %v", err)
	}
	older.CreatedAt = older.CreatedAt.Add(-time.Hour)
	if err := repo.Update(older); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	newer, err := svc.CreateNews("second", "body", "", "")
	if err != nil {
		t.Fatalf("CreateNews() error = %v", err)
	}

	news, err := svc.ListNews()
	if err != nil {
		t.Fatalf("ListNews() error = %v", err)
	}
	if len(news) != 2 {
		t.Fatalf("got %d posts, want 2", len(news))
	}
	if news[0].ID != newer.ID {
		t.Errorf("first listed = %q, want newest %q", news[0].ID, newer.ID)
	}
}

func TestUpdateNews(t *testing.T) {
	svc := NewNewsService(repository.NewInMemoryNewsRepository())

	news, err := svc.CreateNews("headline", "body", "/uploads/old.png", "/uploads/old.mp4")
	if err != nil {
		t.Fatalf("CreateNews() error = %v", err)
	}

	// media URLs survive an update that supplies no replacements
	updated, err := svc.UpdateNews(news.ID, "new headline", "new body", "", "")
	if err != nil {
		t.Fatalf("UpdateNews() error = %v", err)
	}
	if updated.Title != "new headline" {
		t.Errorf("title = %q", updated.Title)
	}
	if updated.ImageURL != "/uploads/old.png" {
		t.Errorf("imageUrl = %q, want unchanged", updated.ImageURL)
	}

	// a supplied replacement overwrites
	updated, err = svc.UpdateNews(news.ID, "new headline", "new body", "/uploads/new.png", "")
	if err != nil {
		t.Fatalf("UpdateNews() error = %v", err)
	}
	if updated.ImageURL != "/uploads/new.png" {
		t.Errorf("imageUrl = %q, want replaced", updated.ImageURL)
	}
	if updated.VideoURL != "/uploads/old.mp4" {
		t.Errorf("videoUrl = %q, want unchanged", updated.VideoURL)
	}
}

func TestUpdateNewsNotFound(t *testing.T) {
	svc := NewNewsService(repository.NewInMemoryNewsRepository())

	_, err := svc.UpdateNews("missing", "title", "body", "", "")
	if err == nil {
		t.Fatal("UpdateNews() error = nil, want not found")
	}
	if status := errStatus(t, err); status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
}

func TestDeleteNews(t *testing.T) {
	svc := NewNewsService(repository.NewInMemoryNewsRepository())

	news, err := svc.CreateNews("headline", "body", "/uploads/img.png", "")
	if err != nil {
		t.Fatalf("CreateNews() error = %v", err)
	}

	deleted, err := svc.DeleteNews(news.ID)
	if err != nil {
		t.Fatalf("DeleteNews() error = %v", err)
	}
	if deleted.ImageURL != "/uploads/img.png" {
		t.Errorf("deleted.ImageURL = %q, want original for file cleanup", deleted.ImageURL)
	}

	remaining, err := svc.ListNews()
	if err != nil {
		t.Fatalf("ListNews() error = %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("got %d posts after delete, want 0", len(remaining))
	}

	if _, err := svc.DeleteNews(news.ID); err == nil {
		t.Error("DeleteNews() second call error = nil, want not found")
	}
}
