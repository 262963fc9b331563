// Package marketplace is the HTTP client for the external publishing
// automation that creates the actual listing on the target platform.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"listing_pipeline/internal/domain"
)

// Config holds marketplace client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client performs the publish call. It never retries: publishing is
// side-effecting and retry policy belongs to the coordinator's
// idempotency-key protocol.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// New creates a marketplace client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger.With("service", "marketplace"),
	}
}

type publishRequest struct {
	Listing domain.ListingSnapshot `json:"listing"`
}

type publishResponse struct {
	OK           bool   `json:"ok"`
	ListingID    string `json:"listing_id"`
	ListingURL   string `json:"listing_url"`
	Error        string `json:"error"`
	ManualAction bool   `json:"manual_action"`
}

// PublishListing submits the listing snapshot. The returned outcome is one
// of: success, recoverable failure, or manual action (anti-automation
// challenge). A non-nil error means the call's result is unknown at the
// transport level.
func (c *Client) PublishListing(ctx context.Context, snapshot domain.ListingSnapshot) (domain.PublishOutcome, error) {
	body, err := json.Marshal(publishRequest{Listing: snapshot})
	if err != nil {
		return domain.PublishOutcome{}, &domain.ExternalServiceError{
			Service: "marketplace",
			Err:     fmt.Errorf("marshal request: %w", err),
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/listings", bytes.NewReader(body))
	if err != nil {
		return domain.PublishOutcome{}, &domain.ExternalServiceError{
			Service: "marketplace",
			Err:     fmt.Errorf("create request: %w", err),
		}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.PublishOutcome{}, &domain.ExternalServiceError{
			Service: "marketplace",
			Err:     fmt.Errorf("execute request: %w", err),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.PublishOutcome{}, &domain.ExternalServiceError{
			Service: "marketplace",
			Err:     fmt.Errorf("unexpected status: %d", resp.StatusCode),
		}
	}

	var apiResp publishResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return domain.PublishOutcome{}, &domain.ExternalServiceError{
			Service: "marketplace",
			Err:     fmt.Errorf("decode response: %w", err),
		}
	}

	outcome := domain.PublishOutcome{
		OK:           apiResp.OK,
		ManualAction: apiResp.ManualAction,
		ListingID:    apiResp.ListingID,
		ListingURL:   apiResp.ListingURL,
		Message:      apiResp.Error,
	}

	c.logger.Info("publish call completed",
		"draft_id", snapshot.DraftID,
		"ok", outcome.OK,
		"manual_action", outcome.ManualAction,
	)

	return outcome, nil
}
