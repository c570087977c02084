package handler

import (
	"net/http"

	"membership/internal/core/apperr"
	"membership/internal/core/service"
	"membership/internal/storage"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// newsFileFields: one optional image (JPEG/PNG only) and one optional video
// (any type) per post.
var newsFileFields = []storage.FileField{
	{Name: "image", Slot: "image", Types: storage.ImageTypes},
	{Name: "video", Slot: "video"},
}

type NewsHandler struct {
	newsService service.NewsService
	uploads     *storage.LocalStore
	logger      *zap.Logger
}

func NewNewsHandler(newsService service.NewsService, uploads *storage.LocalStore, logger *zap.Logger) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
		uploads:     uploads,
		logger:      logger,
	}
}

func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	news, err := h.newsService.ListNews()
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, news)
}

func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	files, err := h.uploads.Intake(r, newsFileFields)
	if err != nil {
		writeError(w, h.logger, apperr.Validation("%s", err.Error()))
		return
	}

	news, err := h.newsService.CreateNews(
		r.FormValue("title"),
		r.FormValue("description"),
		first(files["image"]),
		first(files["video"]),
	)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, news)
}

func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	files, err := h.uploads.Intake(r, newsFileFields)
	if err != nil {
		writeError(w, h.logger, apperr.Validation("%s", err.Error()))
		return
	}

	news, err := h.newsService.UpdateNews(
		id,
		r.FormValue("title"),
		r.FormValue("description"),
		first(files["image"]),
		first(files["video"]),
	)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, news)
}

func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	news, err := h.newsService.DeleteNews(id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	for _, url := range []string{news.ImageURL, news.VideoURL} {
		if err := h.uploads.Remove(url); err != nil {
			h.logger.Warn("failed to remove news file", zap.String("url", url), zap.Error(err))
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "news deleted"})
}

func first(urls []string) string {
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}
