package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"
	"github.com/sailfin-io/tap-xero/constants"
	"github.com/sailfin-io/tap-xero/utils/logger"
)

type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeRetryable
	outcomeFatal
)

// classify maps an HTTP response to a retry decision. Order matters: the
// rate limiter reuses 429 for two very different conditions and only the
// presence of Retry-After separates the per-minute limit from daily quota
// exhaustion.
func classify(status int, header http.Header, body []byte) (outcome, error) {
	switch {
	case status == http.StatusTooManyRequests:
		if retryAfter := header.Get(constants.RetryAfterHeader); retryAfter != "" {
			return outcomeRetryable, &RetryableAPIError{
				Status: status,
				Reason: fmt.Sprintf("rate limit exceeded, retry after %s seconds", retryAfter),
			}
		}
		return outcomeFatal, &FatalAPIError{
			Status:  status,
			Message: "daily API rate limit exceeded, cannot retry",
		}
	case status == http.StatusServiceUnavailable:
		return outcomeRetryable, &RetryableAPIError{Status: status, Reason: "service unavailable"}
	case status >= 500:
		return outcomeRetryable, &RetryableAPIError{Status: status, Reason: "server error"}
	case status == http.StatusUnauthorized:
		return outcomeRetryable, &RetryableAPIError{Status: status, Reason: "unauthorized, token may need refresh"}
	case status >= 400:
		return outcomeFatal, &FatalAPIError{Status: status, Message: clientErrorMessage(status, body)}
	default:
		return outcomeSuccess, nil
	}
}

// clientErrorMessage prefers the upstream's structured Message field when
// the body decodes as JSON, the raw body text otherwise.
func clientErrorMessage(status int, body []byte) string {
	decoded := struct {
		Message string `json:"Message"`
	}{}
	if err := json.Unmarshal(body, &decoded); err == nil && decoded.Message != "" {
		return fmt.Sprintf("client error %d: %s", status, decoded.Message)
	}
	return fmt.Sprintf("client error %d: %s", status, string(body))
}

// Client is the request pipeline: header assembly, the HTTP round-trip, and
// the backoff loop around classification outcomes.
type Client struct {
	auth      *Authenticator
	http      *http.Client
	baseURL   string
	tenantID  string
	userAgent string
}

func NewClient(config *Config, auth *Authenticator) *Client {
	return &Client{
		auth:      auth,
		http:      &http.Client{Timeout: constants.RequestTimeout},
		baseURL:   constants.BaseURL,
		tenantID:  config.TenantID,
		userAgent: config.UserAgent,
	}
}

// Get fetches one page and decodes its body. Transient outcomes retry with
// exponential backoff, at most 5 attempts in total; a 401 forces a token
// refresh before the next attempt; fatal outcomes abort immediately without
// consuming the remaining retry budget.
//
// modifiedSince is advisory: not every entity type honors header filtering,
// so the authoritative incremental filter is the query parameter built by
// the pagination strategy.
func (c *Client) Get(ctx context.Context, path string, params url.Values, modifiedSince string) (map[string]any, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = constants.BackoffBaseDelay
	policy.Multiplier = 2
	policy.MaxInterval = constants.BackoffMaxDelay
	policy.MaxElapsedTime = 0

	var body map[string]any
	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		decoded, result, err := c.fetch(ctx, path, params, modifiedSince)
		switch result {
		case outcomeSuccess:
			body = decoded
			return nil
		case outcomeFatal:
			return backoff.Permanent(err)
		default:
			logger.Warnf("attempt %d/%d for %s failed: %s", attempt, constants.MaxRetries, path, err)
			var retryable *RetryableAPIError
			if errors.As(err, &retryable) && retryable.Status == http.StatusUnauthorized {
				c.auth.Invalidate()
			}
			return err
		}
	}, backoff.WithContext(backoff.WithMaxRetries(policy, constants.MaxRetries-1), ctx))
	if err != nil {
		return nil, err
	}
	return body, nil
}

// fetch performs a single attempt.
func (c *Client) fetch(ctx context.Context, path string, params url.Values, modifiedSince string) (map[string]any, outcome, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, outcomeFatal, fmt.Errorf("failed to build request for %s: %s", path, err)
	}

	token, err := c.auth.Token(ctx)
	if err != nil {
		return nil, outcomeFatal, err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(constants.TenantHeader, c.tenantID)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if modifiedSince != "" {
		req.Header.Set(constants.ModifiedSinceHeader, modifiedSince)
	}

	started := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		return nil, outcomeRetryable, &RetryableAPIError{Reason: err.Error()}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, outcomeRetryable, &RetryableAPIError{Status: res.StatusCode, Reason: err.Error()}
	}

	result, err := classify(res.StatusCode, res.Header, raw)
	if err != nil {
		return nil, result, err
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, outcomeFatal, &FatalAPIError{
			Status:  res.StatusCode,
			Message: fmt.Sprintf("undecodable response body: %s", err),
		}
	}

	logger.Debugf("GET %s returned %d in %s", path, res.StatusCode, time.Since(started))
	return body, outcomeSuccess, nil
}
