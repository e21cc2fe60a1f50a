package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"rail-madad/domain"
	"rail-madad/services"
)

type ComplaintHandler struct {
	service        services.IComplaintService
	validate       *validator.Validate
	maxUploadBytes int64
	listLimit      int
}

func NewComplaintHandler(service services.IComplaintService, validate *validator.Validate, maxUploadBytes int64, listLimit int) *ComplaintHandler {
	return &ComplaintHandler{
		service:        service,
		validate:       validate,
		maxUploadBytes: maxUploadBytes,
		listLimit:      listLimit,
	}
}

// Submit handles POST /api/v1/complaints/submit (multipart form with an
// optional file part plus description and extracted_text fields).
func (h *ComplaintHandler) Submit(w http.ResponseWriter, r *http.Request) {
	// Allow one oversized attachment through parsing so the service can
	// reject it with the proper error instead of a truncated read.
	if err := r.ParseMultipartForm(h.maxUploadBytes + 1024*1024); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	submission := services.Submission{
		Description:   r.FormValue("description"),
		ExtractedText: r.FormValue("extracted_text"),
	}

	file, header, err := r.FormFile("file")
	switch err {
	case nil:
		defer func() { _ = file.Close() }()
		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unreadable file part")
			return
		}
		submission.Attachment = &services.Attachment{
			FileName:     header.Filename,
			DeclaredType: header.Header.Get("Content-Type"),
			Data:         data,
		}
	case http.ErrMissingFile:
		// Text-only submission.
	default:
		writeError(w, http.StatusBadRequest, "invalid file part")
		return
	}

	receipt, err := h.service.Submit(r.Context(), submission)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

// Status handles GET /api/v1/complaints/status/{id}
func (h *ComplaintHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid complaint id")
		return
	}

	complaint, err := h.service.Status(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, complaint)
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress resolved closed"`
}

// UpdateStatus handles PUT /api/v1/complaints/status/{id}
func (h *ComplaintHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid complaint id")
		return
	}

	var req StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "status must be one of pending, in_progress, resolved, closed")
		return
	}

	complaint, err := h.service.UpdateStatus(id, domain.Status(req.Status))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, complaint)
}

// List handles GET /api/v1/complaints/list?skip=&limit=
func (h *ComplaintHandler) List(w http.ResponseWriter, r *http.Request) {
	skip := queryInt(r, "skip", 0)
	limit := queryInt(r, "limit", h.listLimit)

	result, err := h.service.List(skip, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Stats handles GET /api/v1/complaints/stats
func (h *ComplaintHandler) Stats(w http.ResponseWriter, _ *http.Request) {
	stats, err := h.service.Stats()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Search handles GET /api/v1/complaints/search?q=&category=
func (h *ComplaintHandler) Search(w http.ResponseWriter, r *http.Request) {
	terms := r.URL.Query().Get("q")
	if terms == "" {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}
	category := domain.Category(r.URL.Query().Get("category"))

	result, err := h.service.Search(r.Context(), terms, category)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
