// Package quota is the HTTP client for the storage quota service consulted
// before a bulk job is accepted.
package quota

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"listing_pipeline/internal/domain"
)

// Config holds quota client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client performs pre-flight capacity checks.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// New creates a quota client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger.With("service", "quota"),
	}
}

type capacityResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
}

// CheckCapacity asks whether the owner may store photoCount more photos.
// A denial is reported as ErrQuotaExceeded with the service's reason.
func (c *Client) CheckCapacity(ctx context.Context, ownerID string, photoCount int) error {
	q := url.Values{}
	q.Set("owner", ownerID)
	q.Set("photos", strconv.Itoa(photoCount))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/capacity?"+q.Encode(), nil)
	if err != nil {
		return &domain.ExternalServiceError{Service: "quota", Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.ExternalServiceError{Service: "quota", Err: fmt.Errorf("execute request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &domain.ExternalServiceError{Service: "quota", Err: fmt.Errorf("unexpected status: %d", resp.StatusCode)}
	}

	var apiResp capacityResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return &domain.ExternalServiceError{Service: "quota", Err: fmt.Errorf("decode response: %w", err)}
	}

	if !apiResp.Allowed {
		return fmt.Errorf("%w: %s", domain.ErrQuotaExceeded, apiResp.Reason)
	}

	return nil
}
