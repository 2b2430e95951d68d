package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/theawkwardchild/nmap-navigator/internal/errors"
)

// ListHosts handles GET /api/hosts.
func (h *Handler) ListHosts(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.store.GetAllHosts())
}

// GetHost handles GET /api/hosts/{id}.
func (h *Handler) GetHost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, err.Error())
		return
	}

	host, ok := h.store.GetHost(id)
	if !ok {
		h.writeError(w, r, errors.ErrNotFoundWithID("host", id))
		return
	}

	h.writeJSON(w, r, http.StatusOK, host)
}

// DeleteHost handles DELETE /api/hosts/{id}. Deleting a host removes its
// services and every progress row referencing them.
func (h *Handler) DeleteHost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if _, ok := h.store.GetHost(id); !ok {
		h.writeError(w, r, errors.ErrNotFoundWithID("host", id))
		return
	}

	h.store.DeleteHost(id)
	h.writeSuccess(w, r)
}

// ListServices handles GET /api/services.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.store.GetAllServices())
}

// ListHostServices handles GET /api/hosts/{hostId}/services. An unknown host
// yields an empty list; absence is not an error for list queries.
func (h *Handler) ListHostServices(w http.ResponseWriter, r *http.Request) {
	hostID := mux.Vars(r)["hostId"]
	h.writeJSON(w, r, http.StatusOK, h.store.GetServicesByHost(hostID))
}

// GetService handles GET /api/services/{id}.
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, err.Error())
		return
	}

	service, ok := h.store.GetService(id)
	if !ok {
		h.writeError(w, r, errors.ErrNotFoundWithID("service", id))
		return
	}

	h.writeJSON(w, r, http.StatusOK, service)
}

// DeleteService handles DELETE /api/services/{id}. Progress rows referencing
// the service are removed with it.
func (h *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if _, ok := h.store.GetService(id); !ok {
		h.writeError(w, r, errors.ErrNotFoundWithID("service", id))
		return
	}

	h.store.DeleteService(id)
	h.writeSuccess(w, r)
}
