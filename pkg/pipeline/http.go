package pipeline

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/caafimaad-ai/triage/pkg/classifier"
	"github.com/caafimaad-ai/triage/pkg/common/logger"
	"github.com/caafimaad-ai/triage/pkg/common/models"
	"github.com/caafimaad-ai/triage/pkg/features"
	"github.com/gorilla/mux"
)

type HTTPHandler struct {
	service *Service
	maxBody int64
}

func NewHTTPHandler(service *Service, maxBody int64) *HTTPHandler {
	return &HTTPHandler{service: service, maxBody: maxBody}
}

func (h *HTTPHandler) Register(router *mux.Router) {
	router.HandleFunc("/assess", h.handleAssess).Methods(http.MethodPost)
	router.HandleFunc("/assessments/{id}", h.handleGet).Methods(http.MethodGet)
	router.HandleFunc("/groups", h.handleGroups).Methods(http.MethodGet)
	router.HandleFunc("/schema", h.handleSchema).Methods(http.MethodGet)
}

func (h *HTTPHandler) handleAssess(w http.ResponseWriter, r *http.Request) {
	if h.maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	}

	var req models.AssessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.WithError(err).Warn("invalid assessment payload")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	assessment, err := h.service.Assess(r.Context(), req)
	if err != nil {
		if IsValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, classifier.ErrModelUnavailable) {
			logger.Log.WithError(err).Error("model unavailable for assessment")
			http.Error(w, "triage model unavailable, cannot assess", http.StatusServiceUnavailable)
			return
		}
		logger.Log.WithError(err).Error("failed to assess")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(assessment)
}

func (h *HTTPHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	assessment, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrAssessmentNotFound) {
			http.Error(w, "assessment not found", http.StatusNotFound)
			return
		}
		logger.Log.WithError(err).Error("failed to fetch assessment")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(assessment)
}

func (h *HTTPHandler) handleGroups(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"age_groups": features.AgeGroupOptions,
		"groups":     features.Groups(),
		"durations":  features.DurationDisplays(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *HTTPHandler) handleSchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.service.engine.Schema())
}
