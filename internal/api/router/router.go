package router

import (
	"encoding/json"
	"net/http"

	"membership/internal/api/handler"
	"membership/internal/api/middleware"
	"membership/internal/auth"
	"membership/internal/core/service"
	"membership/internal/mailer"
	"membership/internal/storage"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Deps is everything the router composes: one service per entity plus the
// token service, upload store and notification relay.
type Deps struct {
	Users    service.UserService
	Members  service.MemberService
	News     service.NewsService
	Contacts service.ContactService
	Tokens   *auth.TokenService
	Uploads  *storage.LocalStore
	Mailer   mailer.Mailer
	Logger   *zap.Logger
}

func New(d Deps) http.Handler {
	authHandler := handler.NewAuthHandler(d.Users, d.Tokens, d.Logger)
	memberHandler := handler.NewMemberHandler(d.Members, d.Uploads, d.Logger)
	newsHandler := handler.NewNewsHandler(d.News, d.Uploads, d.Logger)
	contactHandler := handler.NewContactHandler(d.Contacts, d.Mailer, d.Logger)
	authMiddleware := middleware.NewAuthMiddleware(d.Tokens)

	r := mux.NewRouter()
	r.Use(middleware.CORS, middleware.Logging(d.Logger))

	// admin chains token verification and the role gate in front of a
	// handler.
	admin := func(h http.HandlerFunc) http.Handler {
		return authMiddleware.Authenticate(authMiddleware.RequireAdmin(h))
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/auth/me", authMiddleware.Authenticate(http.HandlerFunc(authHandler.Me))).Methods(http.MethodGet)

	api.Handle("/members", admin(memberHandler.List)).Methods(http.MethodGet)
	api.Handle("/members", admin(memberHandler.Create)).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/members/{id}", admin(memberHandler.Get)).Methods(http.MethodGet)

	api.HandleFunc("/news", newsHandler.List).Methods(http.MethodGet)
	api.Handle("/news", admin(newsHandler.Create)).Methods(http.MethodPost, http.MethodOptions)
	api.Handle("/news/{id}", admin(newsHandler.Update)).Methods(http.MethodPut, http.MethodOptions)
	api.Handle("/news/{id}", admin(newsHandler.Delete)).Methods(http.MethodDelete, http.MethodOptions)

	api.HandleFunc("/contact", contactHandler.Submit).Methods(http.MethodPost, http.MethodOptions)

	// Uploaded files are served read-only from the local file area.
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(d.Uploads.Dir())))).Methods(http.MethodGet)

	return r
}
