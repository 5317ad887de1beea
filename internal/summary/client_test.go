package summary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/702greens/farmos/internal/models"
)

func testLog() *models.DailyLog {
	return &models.DailyLog{Date: "2024-06-01", PlanHarvest: strptr("50kg")}
}

func TestSummarize_Success(t *testing.T) {
	var gotReq messagesRequest
	var gotHeaders http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		if r.URL.Path != "/messages" {
			t.Errorf("path = %s, want /messages", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{{"type": "text", "text": "  ✓ Green. Solid day.  "}},
		})
	}))
	defer srv.Close()

	c := NewClient(Opts{APIKey: "sk-test", BaseURL: srv.URL, Model: "claude-3-5-sonnet-20241022"})
	got, err := c.Summarize(context.Background(), testLog())
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if got != "✓ Green. Solid day." {
		t.Errorf("summary = %q", got)
	}

	if gotHeaders.Get("x-api-key") != "sk-test" {
		t.Errorf("x-api-key = %q", gotHeaders.Get("x-api-key"))
	}
	if gotHeaders.Get("anthropic-version") != apiVersion {
		t.Errorf("anthropic-version = %q", gotHeaders.Get("anthropic-version"))
	}
	if gotReq.Model != "claude-3-5-sonnet-20241022" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if gotReq.MaxTokens != maxTokens {
		t.Errorf("max_tokens = %d, want %d", gotReq.MaxTokens, maxTokens)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" {
		t.Fatalf("messages = %+v", gotReq.Messages)
	}
	if !strings.Contains(gotReq.Messages[0].Content, "DAILY LOG - 2024-06-01") {
		t.Error("prompt not embedded in request")
	}
}

func TestSummarize_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"type":"error"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Opts{APIKey: "sk-test", BaseURL: srv.URL})
	if _, err := c.Summarize(context.Background(), testLog()); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestSummarize_EmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"content": []map[string]string{}})
	}))
	defer srv.Close()

	c := NewClient(Opts{APIKey: "sk-test", BaseURL: srv.URL})
	if _, err := c.Summarize(context.Background(), testLog()); err == nil {
		t.Fatal("expected error on empty content")
	}
}

func TestSummarize_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(Opts{APIKey: "sk-test", BaseURL: srv.URL})
	if _, err := c.Summarize(context.Background(), testLog()); err == nil {
		t.Fatal("expected error on malformed body")
	}
}

func TestSummarize_NoAPIKey(t *testing.T) {
	c := NewClient(Opts{})
	if _, err := c.Summarize(context.Background(), testLog()); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Opts{APIKey: "sk-test"})
	if c.baseURL != defaultBaseURL {
		t.Errorf("baseURL = %q", c.baseURL)
	}
	if c.model != defaultModel {
		t.Errorf("model = %q", c.model)
	}
	if c.httpClient.Timeout != defaultTimeout {
		t.Errorf("timeout = %v, want %v", c.httpClient.Timeout, defaultTimeout)
	}
}
