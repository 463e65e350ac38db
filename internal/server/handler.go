package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"slideforge/internal/logger"
	"slideforge/internal/pipeline"
	"slideforge/internal/storage"
	"slideforge/internal/store"
)

// Handler exposes the presentation endpoints.
type Handler struct {
	pipe    pipeline.Pipeline
	records store.Repository
	objects storage.ObjectStore
	logger  logger.Logger
}

// NewHandler returns a Handler over the given pipeline and collaborators.
func NewHandler(pipe pipeline.Pipeline, records store.Repository, objects storage.ObjectStore, log logger.Logger) *Handler {
	return &Handler{pipe: pipe, records: records, objects: objects, logger: log}
}

type generateRequest struct {
	VideoID string `json:"video_id"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type successResponse struct {
	Success      bool          `json:"success"`
	Presentation *store.Record `json:"presentation,omitempty"`
}

// ownerID reads the caller identity established by the external auth layer.
func ownerID(r *http.Request) string {
	return r.Header.Get("X-Owner-ID")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeFailure(w http.ResponseWriter, status int, reason string) {
	writeJSON(w, status, failureResponse{Success: false, Error: reason})
}

// GeneratePresentation handles POST /presentations.
func (h *Handler) GeneratePresentation(w http.ResponseWriter, r *http.Request) {
	owner := ownerID(r)
	if owner == "" {
		writeFailure(w, http.StatusUnauthorized, "missing owner identity")
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.VideoID == "" {
		writeFailure(w, http.StatusBadRequest, "video_id is required")
		return
	}

	rec, err := h.pipe.Generate(r.Context(), req.VideoID, owner)
	if err != nil {
		status, reason := mapPipelineError(err)
		writeFailure(w, status, reason)
		return
	}

	writeJSON(w, http.StatusCreated, successResponse{Success: true, Presentation: rec})
}

// mapPipelineError turns a stage-tagged pipeline error into an HTTP status
// and a user-facing reason. Internal detail stays in the logs.
func mapPipelineError(err error) (int, string) {
	switch {
	case errors.Is(err, pipeline.ErrVideoTooLong):
		return http.StatusBadRequest, "video needs to be less than 20 minutes"
	case errors.Is(err, pipeline.ErrNoSubtitles):
		return http.StatusBadRequest, "no subtitles found for this video"
	}

	stage, _ := pipeline.StageOf(err)
	switch stage {
	case pipeline.StageMetadata:
		return http.StatusBadGateway, "could not fetch video metadata"
	case pipeline.StageCaptions:
		return http.StatusUnprocessableEntity, "could not read the video captions"
	case pipeline.StageSummarize:
		return http.StatusUnprocessableEntity, "could not generate slide content"
	case pipeline.StageUpload:
		return http.StatusBadGateway, "could not upload the presentation"
	default:
		return http.StatusInternalServerError, "error creating presentation"
	}
}

// ListPresentations handles GET /presentations.
func (h *Handler) ListPresentations(w http.ResponseWriter, r *http.Request) {
	owner := ownerID(r)
	if owner == "" {
		writeFailure(w, http.StatusUnauthorized, "missing owner identity")
		return
	}

	records, err := h.records.FindByOwner(r.Context(), owner)
	if err != nil {
		h.logger.Error(r.Context(), "list presentations: %v", err)
		writeFailure(w, http.StatusInternalServerError, "could not list presentations")
		return
	}
	if records == nil {
		records = []store.Record{}
	}

	writeJSON(w, http.StatusOK, records)
}

// GetPresentation handles GET /presentations/{id}.
func (h *Handler) GetPresentation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.records.FindByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeFailure(w, http.StatusNotFound, "presentation not found")
		return
	}
	if err != nil {
		h.logger.Error(r.Context(), "get presentation %s: %v", id, err)
		writeFailure(w, http.StatusInternalServerError, "could not load presentation")
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// DeletePresentation handles DELETE /presentations/{id}. Deleting the record
// also removes the stored object by its key.
func (h *Handler) DeletePresentation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.records.FindByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeFailure(w, http.StatusNotFound, "presentation not found")
		return
	}
	if err != nil {
		h.logger.Error(r.Context(), "find presentation %s: %v", id, err)
		writeFailure(w, http.StatusInternalServerError, "could not delete presentation")
		return
	}

	if err := h.records.Delete(r.Context(), id); err != nil {
		h.logger.Error(r.Context(), "delete presentation %s: %v", id, err)
		writeFailure(w, http.StatusInternalServerError, "could not delete presentation")
		return
	}

	if err := h.objects.Remove(r.Context(), rec.FileKey); err != nil {
		// Record is gone; the object becomes unreferenced. Surface the
		// failure so the caller knows cleanup is incomplete.
		h.logger.Error(r.Context(), "remove object %s: %v", rec.FileKey, err)
		writeFailure(w, http.StatusInternalServerError, "presentation deleted but file removal failed")
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// Healthz handles GET /healthz.
func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
