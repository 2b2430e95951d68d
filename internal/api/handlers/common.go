// Package handlers provides HTTP request handlers for the nmap-navigator API.
// This file contains the shared handler state and response utilities used by
// every endpoint.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/theawkwardchild/nmap-navigator/internal/errors"
	"github.com/theawkwardchild/nmap-navigator/internal/importer"
	"github.com/theawkwardchild/nmap-navigator/internal/logging"
	"github.com/theawkwardchild/nmap-navigator/internal/store"
)

// validate is the shared request validator. validator.Validate is safe for
// concurrent use.
var validate = validator.New()

// MessageResponse is the error payload shape shared by every endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse acknowledges a delete.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// Handler holds the dependencies shared by all endpoint handlers.
type Handler struct {
	store         *store.Store
	importer      *importer.Importer
	logger        *logging.Logger
	maxUploadSize int64
}

// New creates a Handler bound to the given store and importer.
func New(st *store.Store, imp *importer.Importer, logger *logging.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		store:         st,
		importer:      imp,
		logger:        logger.WithComponent("handlers"),
		maxUploadSize: maxUploadSize,
	}
}

// writeJSON writes a JSON response with the given status code.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method)
	}
}

// writeMessage writes an error response as a message payload.
func (h *Handler) writeMessage(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	h.writeJSON(w, r, statusCode, MessageResponse{Message: message})
}

// writeSuccess acknowledges a completed delete.
func (h *Handler) writeSuccess(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}

// writeError maps a domain error to its HTTP status and writes the message
// payload.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	// Format errors surface as 500 carrying the parser's message: the
	// document is unusable and the operator must re-export and re-upload.
	status := http.StatusInternalServerError
	switch {
	case errors.IsValidation(err):
		status = http.StatusBadRequest
	case errors.IsNotFound(err):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method)
	}

	h.writeMessage(w, r, status, err.Error())
}

// parseJSON decodes the request body into dest and validates it. Unknown
// fields are rejected.
func parseJSON(r *http.Request, dest interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := validate.Struct(dest); err != nil {
		return err
	}

	return nil
}

// pathID extracts the {id} path variable.
func pathID(r *http.Request) (string, error) {
	vars := mux.Vars(r)
	id, exists := vars["id"]
	if !exists || strings.TrimSpace(id) == "" {
		return "", fmt.Errorf("id not provided")
	}
	return id, nil
}
