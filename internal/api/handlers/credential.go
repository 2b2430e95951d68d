package handlers

import (
	"net/http"

	"github.com/theawkwardchild/nmap-navigator/internal/errors"
	"github.com/theawkwardchild/nmap-navigator/internal/store"
)

// credentialRequest is the POST /api/credentials body.
type credentialRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
	Hash     string `json:"hash"`
	Type     string `json:"type" validate:"required,oneof=password hash key"`
	Source   string `json:"source"`
}

// credentialTestRequest is the POST /api/credential-tests body.
type credentialTestRequest struct {
	CredentialID string `json:"credentialId" validate:"required"`
	ServiceID    string `json:"serviceId" validate:"required"`
	HostID       string `json:"hostId"`
	Status       string `json:"status" validate:"required,oneof=untested valid invalid"`
}

// ListCredentials handles GET /api/credentials.
func (h *Handler) ListCredentials(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.store.GetAllCredentials())
}

// CreateCredential handles POST /api/credentials.
func (h *Handler) CreateCredential(w http.ResponseWriter, r *http.Request) {
	var req credentialRequest
	if err := parseJSON(r, &req); err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	credential := h.store.CreateCredential(store.CredentialInput{
		Username: req.Username,
		Password: req.Password,
		Hash:     req.Hash,
		Type:     req.Type,
		Source:   req.Source,
	})

	h.writeJSON(w, r, http.StatusCreated, credential)
}

// DeleteCredential handles DELETE /api/credentials/{id}. Test results
// referencing the credential are removed with it.
func (h *Handler) DeleteCredential(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if _, ok := h.store.GetCredential(id); !ok {
		h.writeError(w, r, errors.ErrNotFoundWithID("credential", id))
		return
	}

	h.store.DeleteCredential(id)
	h.writeSuccess(w, r)
}

// ListCredentialTests handles GET /api/credential-tests.
func (h *Handler) ListCredentialTests(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.store.GetAllCredentialTests())
}

// UpsertCredentialTest handles POST /api/credential-tests. A row already
// existing for the (credentialId, serviceId) pair is updated in place and
// keeps its id.
func (h *Handler) UpsertCredentialTest(w http.ResponseWriter, r *http.Request) {
	var req credentialTestRequest
	if err := parseJSON(r, &req); err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	test := h.store.SetCredentialTest(store.CredentialTestInput{
		CredentialID: req.CredentialID,
		ServiceID:    req.ServiceID,
		HostID:       req.HostID,
		Status:       req.Status,
	})

	h.writeJSON(w, r, http.StatusOK, test)
}
