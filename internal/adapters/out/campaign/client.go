// Package campaign relays booking changes to the external employment-support
// campaign service. The relay is best effort by contract; callers log and
// move on when it fails.
package campaign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client implements ports.CampaignClient over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a campaign client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type scheduleChange struct {
	OrderID int64  `json:"order_id"`
	VisitAt string `json:"visit_at"`
}

// RelayScheduleChange reports a moved visit.
func (c *Client) RelayScheduleChange(ctx context.Context, orderID int64, visitAt time.Time) error {
	body, err := json.Marshal(scheduleChange{
		OrderID: orderID,
		VisitAt: visitAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/schedule-changes", bytes.NewReader(body))
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
		return fmt.Errorf("campaign service responded %d", resp.StatusCode)
	}
	return nil
}
