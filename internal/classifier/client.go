// Package classifier is the HTTP client for the external image classifier,
// which turns a batch of photos into structured item descriptors.
package classifier

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

// Config holds classifier client configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client calls the classifier service with retries and exponential backoff.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a classifier client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("service", "classifier"),
	}
}

// Classify submits one batch of photos and returns the classified items.
// Transport and decode failures are wrapped as ExternalServiceError; the
// caller owns any fallback grouping.
func (c *Client) Classify(ctx context.Context, photoPaths []string, style string) ([]domain.ItemDescriptor, error) {
	var resp *classifyResponse
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		resp, err = c.doRequest(ctx, photoPaths, style)
		if err == nil {
			return c.transform(resp), nil
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("classify request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, &domain.ExternalServiceError{Service: "classifier", Err: ctx.Err()}
		case <-time.After(backoff):
		}
	}

	return nil, &domain.ExternalServiceError{
		Service: "classifier",
		Err:     fmt.Errorf("after %d attempts: %w", c.maxAttempts, err),
	}
}

func (c *Client) doRequest(ctx context.Context, photoPaths []string, style string) (*classifyResponse, error) {
	body, err := json.Marshal(classifyRequest{
		PhotoPaths: photoPaths,
		Style:      style,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/classify", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var apiResp classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &apiResp, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

func (c *Client) transform(resp *classifyResponse) []domain.ItemDescriptor {
	items := make([]domain.ItemDescriptor, 0, len(resp.Items))

	for _, it := range resp.Items {
		items = append(items, domain.ItemDescriptor{
			Title:       it.Title,
			Description: it.Description,
			Price:       it.Price,
			Category:    it.Category,
			Condition:   it.Condition,
			Color:       it.Color,
			Brand:       it.Brand,
			Size:        it.Size,
			Confidence:  it.Confidence,
			Photos:      it.Photos,
		})
	}

	return items
}
