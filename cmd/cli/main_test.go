package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func withServer(t *testing.T, h http.HandlerFunc) {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	origURL, origTimeout := baseURL, timeout
	baseURL, timeout = srv.URL, 5*time.Second
	t.Cleanup(func() { baseURL, timeout = origURL, origTimeout })
}

func TestGetSummary(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/summary" || r.URL.Query().Get("u") != "tok24" {
			t.Fatalf("unexpected request: %s", r.URL.String())
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"entries":[{"category":"kopi","amount":"1.80","date":"2025-03-12T04:00:00Z"}],"tz":"Asia/Singapore"}`)
	})

	out := captureOutput(t, func() { getSummary("tok24") })

	if !strings.Contains(out, "Timezone: Asia/Singapore") {
		t.Fatalf("missing timezone line:\n%s", out)
	}
	if !strings.Contains(out, "S$1.80") || !strings.Contains(out, "kopi") {
		t.Fatalf("missing entry line:\n%s", out)
	}
}

func TestListFeedback(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("limit") != "2" || r.URL.Query().Get("offset") != "4" {
			t.Fatalf("pagination not forwarded: %s", r.URL.String())
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"total":9,"items":[{"id":"id-1","page":"summary","message":"nice","atServer":"2025-03-12T04:00:00Z"}]}`)
	})

	out := captureOutput(t, func() { listFeedback(2, 4) })

	if !strings.Contains(out, "Total: 9") || !strings.Contains(out, "nice") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestClearLedger(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/clear" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"ok":true,"cleared":true,"countBefore":3}`)
	})

	out := captureOutput(t, func() { clearLedger("tok24") })

	if !strings.Contains(out, "Cleared 3 entries") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
