package handler

import (
	"encoding/json"
	"net/http"

	"membership/internal/api/middleware"
	"membership/internal/auth"
	"membership/internal/core/apperr"
	"membership/internal/core/model"
	"membership/internal/core/service"

	"go.uber.org/zap"
)

type AuthHandler struct {
	userService service.UserService
	tokens      *auth.TokenService
	logger      *zap.Logger
}

func NewAuthHandler(userService service.UserService, tokens *auth.TokenService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		tokens:      tokens,
		logger:      logger,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperr.Validation("invalid request body"))
		return
	}

	// Self-registration always creates a regular account; admin accounts
	// are provisioned out of band.
	user, err := h.userService.Register(req.Email, req.Password, model.RoleUser)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperr.Validation("invalid request body"))
		return
	}

	user, err := h.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Role)
	if err != nil {
		writeError(w, h.logger, apperr.Store(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Me returns the profile of the authenticated caller.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperr.Unauthorized("authorization required"))
		return
	}

	user, err := h.userService.GetUser(claims.ID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"email": user.Email,
		"role":  user.Role,
	})
}
