// Package monitor posts order status changes to the external monitoring
// endpoint that staff dashboards subscribe to.
package monitor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"rental/internal/core/domain/model/order"
)

// Client implements ports.NotificationClient over HTTP. Every event carries
// a fresh UUID so the receiving side can deduplicate redeliveries.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a monitoring client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type statusEvent struct {
	EventID string `json:"event_id"`
	OrderID int64  `json:"order_id"`
	From    string `json:"from"`
	To      string `json:"to"`
	At      string `json:"at"`
}

// Post sends one status change event.
func (c *Client) Post(ctx context.Context, orderID int64, from, to order.Status) error {
	event := statusEvent{
		EventID: uuid.NewString(),
		OrderID: orderID,
		From:    from.String(),
		To:      to.String(),
		At:      time.Now().Format(time.RFC3339),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/order-events", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("monitor responded %d for order %d", resp.StatusCode, orderID)
	}
	return nil
}
