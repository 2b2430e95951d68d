package handlers

import (
	"net/http"

	"github.com/theawkwardchild/nmap-navigator/internal/classify"
	"github.com/theawkwardchild/nmap-navigator/internal/store"
)

// checklistStateRequest is the POST /api/checklist-states body.
type checklistStateRequest struct {
	HostID          string `json:"hostId" validate:"required"`
	ServiceID       string `json:"serviceId" validate:"required"`
	ChecklistItemID string `json:"checklistItemId" validate:"required"`
	Completed       bool   `json:"completed"`
	Notes           string `json:"notes"`
}

// ListChecklists handles GET /api/checklists. With a serviceId query
// parameter it returns the templates matching the service's classified type;
// without one it returns the full template collection.
func (h *Handler) ListChecklists(w http.ResponseWriter, r *http.Request) {
	serviceID := r.URL.Query().Get("serviceId")
	if serviceID == "" {
		h.writeJSON(w, r, http.StatusOK, h.store.GetAllChecklistItems())
		return
	}

	service, ok := h.store.GetService(serviceID)
	if !ok {
		// An unknown service yields an empty list, same as a known
		// service whose type has no templates.
		h.writeJSON(w, r, http.StatusOK, []store.ChecklistItem{})
		return
	}

	serviceType := classify.Classify(service.Name)
	h.writeJSON(w, r, http.StatusOK, h.store.GetChecklistItemsByServiceType(serviceType))
}

// ListChecklistStates handles GET /api/checklist-states. Both hostId and
// serviceId are needed to select progress rows; when either is missing the
// result is an empty list rather than an error.
func (h *Handler) ListChecklistStates(w http.ResponseWriter, r *http.Request) {
	hostID := r.URL.Query().Get("hostId")
	serviceID := r.URL.Query().Get("serviceId")
	if hostID == "" || serviceID == "" {
		h.writeJSON(w, r, http.StatusOK, []store.ChecklistState{})
		return
	}

	h.writeJSON(w, r, http.StatusOK, h.store.GetChecklistStates(hostID, serviceID))
}

// UpsertChecklistState handles POST /api/checklist-states. A row already
// existing for the (hostId, serviceId, checklistItemId) triple is updated in
// place and keeps its id.
func (h *Handler) UpsertChecklistState(w http.ResponseWriter, r *http.Request) {
	var req checklistStateRequest
	if err := parseJSON(r, &req); err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	state := h.store.SetChecklistState(store.ChecklistStateInput{
		HostID:          req.HostID,
		ServiceID:       req.ServiceID,
		ChecklistItemID: req.ChecklistItemID,
		Completed:       req.Completed,
		Notes:           req.Notes,
	})

	h.writeJSON(w, r, http.StatusOK, state)
}
