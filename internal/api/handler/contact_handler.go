package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"membership/internal/core/apperr"
	"membership/internal/core/service"
	"membership/internal/mailer"

	"go.uber.org/zap"
)

type ContactHandler struct {
	contactService service.ContactService
	mail           mailer.Mailer
	logger         *zap.Logger
}

func NewContactHandler(contactService service.ContactService, mail mailer.Mailer, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		mail:           mail,
		logger:         logger,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submit stores the contact submission and then attempts the email relay.
// Relay failure degrades the response message only; the submission is
// already persisted and stays that way.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperr.Validation("invalid request body"))
		return
	}

	contact, err := h.contactService.SubmitContact(req.Name, req.Email, req.Message)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	message := "message sent successfully"
	subject := "New contact message from " + contact.Name
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", contact.Name, contact.Email, contact.Message)
	if h.mail == nil {
		message = "message saved but notification failed"
	} else if err := h.mail.Send(subject, body); err != nil {
		h.logger.Warn("contact notification failed", zap.Error(err))
		message = "message saved but notification failed"
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": message,
		"contact": contact,
	})
}
