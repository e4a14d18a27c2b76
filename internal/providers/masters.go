package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/fairwaylabs/golf-pool/internal/models"
)

const scoresCacheKey = "masters:scores"

// CacheProvider is the slice of the cache service the client needs.
type CacheProvider interface {
	GetSimple(key string, dest interface{}) error
	SetSimple(key string, value interface{}, expiration time.Duration) error
}

// MastersClient fetches live to-par scores from the tournament's JSON
// feed. The raw player records are cached for the refresh interval so
// recomputes triggered more often than the feed changes skip the fetch.
type MastersClient struct {
	httpClient *http.Client
	cache      CacheProvider
	logger     *logrus.Logger
	feedURL    string
	cacheTTL   time.Duration
	maxRetries uint64
}

// NewMastersClient creates a feed client. cache may be nil, in which
// case every call hits the network.
func NewMastersClient(feedURL string, timeout, cacheTTL time.Duration, maxRetries int, cache CacheProvider, logger *logrus.Logger) *MastersClient {
	return &MastersClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache:      cache,
		logger:     logger,
		feedURL:    feedURL,
		cacheTTL:   cacheTTL,
		maxRetries: uint64(maxRetries),
	}
}

// GetScores returns the current player records from the feed, serving
// from cache within the TTL. An unrecognized envelope comes back as an
// empty slice, not an error; the aggregator turns an empty cycle into
// ErrNoResolvableScores. Transport and decode failures wrap
// ErrFeedUnavailable.
func (c *MastersClient) GetScores(ctx context.Context) ([]models.PlayerRecord, error) {
	if c.cache != nil {
		var cached []models.PlayerRecord
		if err := c.cache.GetSimple(scoresCacheKey, &cached); err == nil && len(cached) > 0 {
			c.logger.WithFields(logrus.Fields{
				"component": "masters_provider",
				"source":    "cache",
				"players":   len(cached),
			}).Debug("Returning cached live scores")
			return cached, nil
		}
	}

	var envelope scoresEnvelope
	if err := c.fetch(ctx, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrFeedUnavailable, err)
	}

	records := envelope.records()
	if len(records) == 0 {
		c.logger.WithField("component", "masters_provider").Warn("Feed envelope contained no player records")
		return records, nil
	}

	if c.cache != nil {
		if err := c.cache.SetSimple(scoresCacheKey, records, c.cacheTTL); err != nil {
			c.logger.WithField("component", "masters_provider").WithError(err).Warn("Failed to cache live scores")
		}
	}

	c.logger.WithFields(logrus.Fields{
		"component": "masters_provider",
		"source":    "feed",
		"players":   len(records),
	}).Info("Fetched live scores")

	return records, nil
}

// fetch performs the HTTP request with bounded exponential backoff.
// Decode failures and client errors are permanent; transport errors and
// server-side statuses are retried.
func (c *MastersClient) fetch(ctx context.Context, target interface{}) error {
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		// The feed rejects non-browser agents.
		req.Header.Set("User-Agent", "Mozilla/5.0")
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
		case resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("feed request failed with status %d", resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("feed request failed with status %d", resp.StatusCode))
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(body, target); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode feed response: %w", err))
		}
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries),
		ctx,
	)

	return backoff.Retry(operation, policy)
}
