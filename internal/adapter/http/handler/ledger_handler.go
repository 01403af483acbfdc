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

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	SummaryByToken(ctx context.Context, token string) (*usecase.TokenSummary, error)
	ClearByToken(ctx context.Context, token string) (int, error)
	Dump(ctx context.Context) (map[string][]domain.Entry, error)
}

// LedgerHandler handles token-keyed ledger HTTP requests.
type LedgerHandler struct {
	ledgerUC   LedgerService
	adminToken string
	metrics    *metrics.Metrics
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC LedgerService, adminToken string, m *metrics.Metrics) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC, adminToken: adminToken, metrics: m}
}

// Summary returns the full entry sequence for the token in the "u" query
// parameter.
func (h *LedgerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.ledgerUC.SummaryByToken(r.Context(), r.URL.Query().Get("u"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to load summary", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.SummaryFromUseCase(summary))
}

// Clear wipes the ledger for the token in the request body.
func (h *LedgerHandler) Clear(w http.ResponseWriter, r *http.Request) {
	var req dto.ClearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	count, err := h.ledgerUC.ClearByToken(r.Context(), req.U)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to clear ledger", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.LedgersCleared.Inc()
	}
	writeJSON(w, http.StatusOK, dto.ClearResponse{OK: true, Cleared: true, CountBefore: count})
}

// Dump returns every ledger keyed by token. Guarded by the admin token,
// accepted either as the "key" query parameter or the X-Admin-Key header.
func (h *LedgerHandler) Dump(w http.ResponseWriter, r *http.Request) {
	if h.adminToken == "" || !h.authorized(r) {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}

	data, err := h.ledgerUC.Dump(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to dump ledgers", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (h *LedgerHandler) authorized(r *http.Request) bool {
	if r.URL.Query().Get("key") == h.adminToken {
		return true
	}
	return r.Header.Get("X-Admin-Key") == h.adminToken
}
