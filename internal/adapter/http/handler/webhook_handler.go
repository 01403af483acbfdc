package handler

import (
	"context"
	"encoding/xml"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/auntiebot/auntiecount/internal/infrastructure/metrics"
	"github.com/auntiebot/auntiecount/internal/usecase"
)

// ChatService defines the behavior needed by WebhookHandler.
type ChatService interface {
	HandleMessage(ctx context.Context, address, body string) (usecase.ChatReply, error)
}

// WebhookHandler handles inbound messaging webhooks.
type WebhookHandler struct {
	chatUC  ChatService
	metrics *metrics.Metrics
	log     zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(chatUC ChatService, m *metrics.Metrics, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{chatUC: chatUC, metrics: m, log: log}
}

// twiml is the reply envelope the messaging gateway expects.
type twiml struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// Receive handles one inbound message and replies with a TwiML envelope.
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form body", err.Error())
		return
	}

	address := r.PostFormValue("From")
	body := r.PostFormValue("Body")

	reply, err := h.chatUC.HandleMessage(r.Context(), address, body)
	if err != nil {
		h.log.Error().Err(err).Str("from", address).Msg("failed to handle message")
		writeError(w, http.StatusInternalServerError, "failed to handle message", err.Error())
		return
	}

	h.count(reply.Kind)
	h.log.Debug().Str("from", address).Str("kind", string(reply.Kind)).Msg("message handled")

	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	xml.NewEncoder(w).Encode(twiml{Message: reply.Body})
}

func (h *WebhookHandler) count(kind usecase.MessageKind) {
	if h.metrics == nil {
		return
	}
	h.metrics.MessagesHandled.WithLabelValues(string(kind)).Inc()
	switch kind {
	case usecase.KindEntry:
		h.metrics.EntriesRecorded.Inc()
	case usecase.KindUnparsed:
		h.metrics.ParseFailures.Inc()
	case usecase.KindUndo:
		h.metrics.UndosApplied.Inc()
	}
}
