package integration

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	adaptershttp "github.com/auntiebot/auntiecount/internal/adapter/http"
	"github.com/auntiebot/auntiecount/internal/adapter/http/dto"
	"github.com/auntiebot/auntiecount/internal/adapter/http/handler"
	"github.com/auntiebot/auntiecount/internal/adapter/repository"
	"github.com/auntiebot/auntiecount/internal/adapter/repository/memory"
	"github.com/auntiebot/auntiecount/internal/infrastructure/token"
	"github.com/auntiebot/auntiecount/internal/reply"
	"github.com/auntiebot/auntiecount/internal/usecase"
)

const sender = "whatsapp:+6511111111"

// newTestServer wires the full stack on the in-memory store with a fixed
// clock and seeded randomness.
func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Singapore")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}
	now := func() time.Time {
		return time.Date(2025, 3, 12, 15, 0, 0, 0, loc)
	}

	users := memory.NewUserStore()
	feedback := memory.NewFeedbackStore()
	tokenizer := token.New("test-salt")
	responder := reply.NewResponder(rand.New(rand.NewSource(1)), "https://bot.example.com")

	chatUC := usecase.NewChatUseCase(users, tokenizer, responder, loc, now)
	ledgerUC := usecase.NewLedgerUseCase(users, loc, now)
	feedbackUC := usecase.NewFeedbackUseCase(feedback, repository.NewULIDGenerator(), now)

	router := adaptershttp.NewRouter(adaptershttp.RouterConfig{
		WebhookHandler:  handler.NewWebhookHandler(chatUC, nil, zerolog.Nop()),
		LedgerHandler:   handler.NewLedgerHandler(ledgerUC, "admin-key", nil),
		FeedbackHandler: handler.NewFeedbackHandler(feedbackUC, nil),
		HealthHandler:   handler.NewHealthHandler(nil),
		Logger:          zerolog.Nop(),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv, tokenizer.Tokenize(sender)
}

func sendMessage(t *testing.T, srv *httptest.Server, body string) string {
	t.Helper()

	form := url.Values{"From": {sender}, "Body": {body}}
	resp, err := http.PostForm(srv.URL+"/whatsapp", form)
	if err != nil {
		t.Fatalf("webhook request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("webhook returned %d", resp.StatusCode)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("failed to read reply: %v", err)
	}
	return buf.String()
}

func TestChatFlow_RecordListSummaryUndoClear(t *testing.T) {
	srv, userToken := newTestServer(t)

	// Record two expenses through the webhook
	if got := sendMessage(t, srv, "4 kopi"); !strings.Contains(got, "4.00") {
		t.Fatalf("first entry not acknowledged: %s", got)
	}
	if got := sendMessage(t, srv, "lunch 12.50"); !strings.Contains(got, "12.50") {
		t.Fatalf("second entry not acknowledged: %s", got)
	}

	// List shows both, newest first
	listReply := sendMessage(t, srv, "list")
	if !strings.Contains(listReply, "lunch") || !strings.Contains(listReply, "kopi") {
		t.Fatalf("list missing entries: %s", listReply)
	}

	// Chat summary totals the week and links the page
	summaryReply := sendMessage(t, srv, "summary")
	if !strings.Contains(summaryReply, "16.50") {
		t.Fatalf("summary total wrong: %s", summaryReply)
	}
	if !strings.Contains(summaryReply, "u="+userToken) {
		t.Fatalf("summary link missing token: %s", summaryReply)
	}

	// The API view matches
	resp, err := http.Get(srv.URL + "/api/summary?u=" + userToken)
	if err != nil {
		t.Fatalf("summary request failed: %v", err)
	}
	defer resp.Body.Close()
	var apiSummary dto.SummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiSummary); err != nil {
		t.Fatalf("failed to decode summary: %v", err)
	}
	if len(apiSummary.Entries) != 2 {
		t.Fatalf("expected 2 entries via API, got %d", len(apiSummary.Entries))
	}

	// Undo removes the newest entry
	undoReply := sendMessage(t, srv, "undo")
	if !strings.Contains(undoReply, "12.50") {
		t.Fatalf("undo did not remove newest entry: %s", undoReply)
	}

	// Clear wipes the remaining entry
	payload, _ := json.Marshal(dto.ClearRequest{U: userToken})
	clearResp, err := http.Post(srv.URL+"/api/clear", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("clear request failed: %v", err)
	}
	defer clearResp.Body.Close()
	var cleared dto.ClearResponse
	if err := json.NewDecoder(clearResp.Body).Decode(&cleared); err != nil {
		t.Fatalf("failed to decode clear response: %v", err)
	}
	if !cleared.OK || cleared.CountBefore != 1 {
		t.Fatalf("unexpected clear response: %+v", cleared)
	}

	// Ledger is now empty
	emptyReply := sendMessage(t, srv, "summary")
	if strings.Contains(emptyReply, "16.50") {
		t.Fatalf("summary still shows cleared spending: %s", emptyReply)
	}
}

func TestChatFlow_UnknownTokenRejected(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/summary?u=000000000000000000000000")
	if err != nil {
		t.Fatalf("summary request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown token, got %d", resp.StatusCode)
	}
}

func TestChatFlow_FeedbackRoundTrip(t *testing.T) {
	srv, userToken := newTestServer(t)

	payload, _ := json.Marshal(dto.FeedbackRequest{U: userToken, Message: "auntie very helpful"})
	resp, err := http.Post(srv.URL+"/api/feedback", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("feedback request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	listResp, err := http.Get(srv.URL + "/api/feedback")
	if err != nil {
		t.Fatalf("feedback list failed: %v", err)
	}
	defer listResp.Body.Close()
	var listing dto.FeedbackListResponse
	if err := json.NewDecoder(listResp.Body).Decode(&listing); err != nil {
		t.Fatalf("failed to decode listing: %v", err)
	}
	if listing.Total != 1 || len(listing.Items) != 1 {
		t.Fatalf("unexpected listing: %+v", listing)
	}
	if listing.Items[0].Message != "auntie very helpful" {
		t.Fatalf("message mismatch: %+v", listing.Items[0])
	}
}

func TestChatFlow_AdminDump(t *testing.T) {
	srv, userToken := newTestServer(t)
	sendMessage(t, srv, "4 kopi")

	resp, err := http.Get(srv.URL + "/admin/data.json?key=admin-key")
	if err != nil {
		t.Fatalf("dump request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var dump map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&dump); err != nil {
		t.Fatalf("failed to decode dump: %v", err)
	}
	if _, ok := dump[userToken]; !ok {
		t.Fatalf("dump not keyed by token: %v", dump)
	}
}
