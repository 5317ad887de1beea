package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	closeBaseURL = "https://api.close.com/api/v1"
	// smsTimeout bounds the dispatch call instead of trusting client defaults.
	smsTimeout = 15 * time.Second
)

// SMSAdapter sends texts to one fixed phone number through the Close CRM
// SMS activity endpoint, authenticated with a bearer token.
type SMSAdapter struct {
	apiKey     string
	phone      string
	baseURL    string
	httpClient *http.Client
}

// SMSOpts holds parameters for creating an SMSAdapter. BaseURL and
// HTTPClient exist for tests.
type SMSOpts struct {
	APIKey     string
	Phone      string
	BaseURL    string
	HTTPClient *http.Client
}

// NewSMS creates a Close CRM SMS adapter.
func NewSMS(opts SMSOpts) *SMSAdapter {
	a := &SMSAdapter{
		apiKey:     opts.APIKey,
		phone:      opts.Phone,
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
	}
	if a.baseURL == "" {
		a.baseURL = closeBaseURL
	}
	if a.httpClient == nil {
		a.httpClient = &http.Client{Timeout: smsTimeout}
	}
	return a
}

// Name implements Adapter.
func (a *SMSAdapter) Name() string { return "sms" }

type smsRequest struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

// Send posts text to the configured phone number. A non-2xx response is an
// error; the caller owns the decision to swallow it.
func (a *SMSAdapter) Send(ctx context.Context, text string) error {
	if a.apiKey == "" {
		return fmt.Errorf("notify: close api key not configured")
	}

	body, err := json.Marshal(smsRequest{To: a.phone, Body: text})
	if err != nil {
		return fmt.Errorf("notify: marshal sms: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/activity/sms/", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: build sms request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notify: send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("notify: close api status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}
