package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// UploadScan handles POST /api/scans/upload. It accepts a multipart form with
// a single "file" field holding an nmap XML report, replaces the current
// inventory with the report's contents, and returns the created entities.
func (h *Handler) UploadScan(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeMessage(w, r, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer func() { _ = file.Close() }()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xml" && ext != ".nmap" {
		h.writeMessage(w, r, http.StatusBadRequest, "Only .xml and .nmap files are supported")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.writeMessage(w, r, http.StatusInternalServerError, "Failed to read uploaded file")
		return
	}

	result, err := h.importer.Import(data)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, result)
}
