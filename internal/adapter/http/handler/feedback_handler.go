package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/auntiebot/auntiecount/internal/adapter/http/dto"
	"github.com/auntiebot/auntiecount/internal/domain"
	"github.com/auntiebot/auntiecount/internal/infrastructure/metrics"
	"github.com/auntiebot/auntiecount/internal/usecase"
)

// FeedbackService defines the behavior needed by FeedbackHandler.
type FeedbackService interface {
	Submit(ctx context.Context, input usecase.SubmitFeedbackInput) (string, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Feedback, int, error)
}

// FeedbackHandler handles feedback HTTP requests.
type FeedbackHandler struct {
	feedbackUC FeedbackService
	metrics    *metrics.Metrics
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedbackUC FeedbackService, m *metrics.Metrics) *FeedbackHandler {
	return &FeedbackHandler{feedbackUC: feedbackUC, metrics: m}
}

// Submit stores one feedback record.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	id, err := h.feedbackUC.Submit(r.Context(), req.ToUseCaseInput(clientIP(r)))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to store feedback", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.FeedbackSubmitted.Inc()
	}
	writeJSON(w, http.StatusCreated, dto.SubmitFeedbackResponse{OK: true, ID: id})
}

// List returns one page of feedback records, newest first.
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 10)
	offset := parseIntQuery(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	records, total, err := h.feedbackUC.List(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list feedback", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.FeedbackListResponse{
		Total:  total,
		Offset: offset,
		Limit:  limit,
		Items:  dto.FeedbackItemsFromDomain(records),
	})
}
