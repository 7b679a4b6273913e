package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// GatewaySender implements ports.MessageSender against the SMS gateway's
// HTTP API.
type GatewaySender struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewGatewaySender creates a sender for the given gateway.
func NewGatewaySender(baseURL, apiKey string, timeout time.Duration) *GatewaySender {
	return &GatewaySender{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type sendRequest struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
}

// Send dispatches one text message.
func (s *GatewaySender) Send(ctx context.Context, phone, text string) error {
	body, err := json.Marshal(sendRequest{Phone: phone, Text: text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, s.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway responded %d", resp.StatusCode)
	}
	return nil
}
