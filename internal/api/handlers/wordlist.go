package handlers

import (
	"net/http"

	"github.com/theawkwardchild/nmap-navigator/internal/errors"
)

// usernameRequest is the POST /api/usernames body.
type usernameRequest struct {
	Username string `json:"username" validate:"required"`
	Source   string `json:"source"`
}

// passwordRequest is the POST /api/passwords body.
type passwordRequest struct {
	Password string `json:"password" validate:"required"`
	Source   string `json:"source"`
}

// ListUsernames handles GET /api/usernames.
func (h *Handler) ListUsernames(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.store.GetAllUsernames())
}

// CreateUsername handles POST /api/usernames.
func (h *Handler) CreateUsername(w http.ResponseWriter, r *http.Request) {
	var req usernameRequest
	if err := parseJSON(r, &req); err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.writeJSON(w, r, http.StatusCreated, h.store.CreateUsername(req.Username, req.Source))
}

// DeleteUsername handles DELETE /api/usernames/{id}.
func (h *Handler) DeleteUsername(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if _, ok := h.store.GetUsername(id); !ok {
		h.writeError(w, r, errors.ErrNotFoundWithID("username", id))
		return
	}

	h.store.DeleteUsername(id)
	h.writeSuccess(w, r)
}

// ListPasswords handles GET /api/passwords.
func (h *Handler) ListPasswords(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.store.GetAllPasswords())
}

// CreatePassword handles POST /api/passwords.
func (h *Handler) CreatePassword(w http.ResponseWriter, r *http.Request) {
	var req passwordRequest
	if err := parseJSON(r, &req); err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.writeJSON(w, r, http.StatusCreated, h.store.CreatePassword(req.Password, req.Source))
}

// DeletePassword handles DELETE /api/passwords/{id}.
func (h *Handler) DeletePassword(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if _, ok := h.store.GetPassword(id); !ok {
		h.writeError(w, r, errors.ErrNotFoundWithID("password", id))
		return
	}

	h.store.DeletePassword(id)
	h.writeSuccess(w, r)
}
