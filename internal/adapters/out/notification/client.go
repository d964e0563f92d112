// Package notification implements the outbound client for the external
// fulfillment notification service.
package notification

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ordercompletion/internal/pkg/errs"
)

const (
	defaultRetryCount   = 5
	defaultRetryTimeout = 2 * time.Second
)

// ClientSettings configures the notification client.
type ClientSettings struct {
	// BaseURL is the notification service address, e.g. "http://notifications:8080".
	BaseURL string

	// RetryCount is the number of additional attempts after a transport
	// failure or a 5xx response. Zero means no retries.
	RetryCount int

	// RetryTimeout is the fixed pause between attempts.
	RetryTimeout time.Duration
}

// DefaultClientSettings returns settings with the retry policy the
// notification service is known to tolerate.
func DefaultClientSettings(baseURL string) ClientSettings {
	return ClientSettings{
		BaseURL:      baseURL,
		RetryCount:   defaultRetryCount,
		RetryTimeout: defaultRetryTimeout,
	}
}

// Client notifies the external fulfillment system that an order has been
// completed. A confirmed notification is a 2xx response; 4xx responses are
// final, 5xx responses and transport failures are retried because the
// notification service answers 500 on transient internal errors.
type Client struct {
	httpClient *http.Client
	settings   ClientSettings
	logger     *slog.Logger
}

// NewClient creates a notification client for the given service address.
// A nil httpClient falls back to http.DefaultClient.
func NewClient(settings ClientSettings, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(settings.BaseURL) == "" {
		return nil, errs.NewValueIsRequiredError("settings.BaseURL")
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		settings:   settings,
		logger:     logger.With("component", "notification_client"),
	}, nil
}

// Notify tells the fulfillment system that the order is complete.
// Returns (true, nil) on a confirmed notification, (false, nil) when the
// service definitively declined, and (false, err) when every attempt failed
// at the transport level or the context was cancelled.
func (c *Client) Notify(ctx context.Context, orderID int64) (bool, error) {
	requestURL := fmt.Sprintf("%s/notify/%d", strings.TrimRight(c.settings.BaseURL, "/"), orderID)

	var lastErr error
	for attempt := 0; attempt <= c.settings.RetryCount; attempt++ {
		if attempt > 0 {
			if err := c.wait(ctx); err != nil {
				return false, err
			}
		}

		notified, retry, err := c.attempt(ctx, requestURL)
		if err != nil {
			if ctx.Err() != nil {
				return false, ctx.Err()
			}
			c.logger.WarnContext(ctx, "notification attempt failed",
				"order_id", orderID, "attempt", attempt+1, "error", err)
			lastErr = err
			continue
		}

		if notified {
			c.logger.InfoContext(ctx, "notified completion", "order_id", orderID)
			return true, nil
		}

		if !retry {
			c.logger.WarnContext(ctx, "notification declined", "order_id", orderID)
			return false, nil
		}

		c.logger.WarnContext(ctx, "notification service unavailable, retrying",
			"order_id", orderID, "attempt", attempt+1)
	}

	// Retries exhausted. A trailing 5xx is a definitive "not notified";
	// a transport failure surfaces as an error.
	return false, lastErr
}

// attempt performs one HTTP round trip. The second return value reports
// whether the failure is retryable.
func (c *Client) attempt(ctx context.Context, requestURL string) (notified bool, retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return false, false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, true, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, false, nil
	case resp.StatusCode >= 500:
		return false, true, nil
	default:
		return false, false, nil
	}
}

func (c *Client) wait(ctx context.Context) error {
	if c.settings.RetryTimeout <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(c.settings.RetryTimeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
