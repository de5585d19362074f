// Package alohapay is the Aloha Pay external API client used for wallets and payment links.
package alohapay

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"coral_cove/internal/adapters/observability"
	"coral_cove/internal/domain"
)

const DefaultBaseURL = "https://api-dev.alohapay.co"

const service = "alohapay"

type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

// New builds a client. An empty base uses DefaultBaseURL.
func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if base == "" {
		base = DefaultBaseURL
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type apiError struct {
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Errors  map[string][]string `json:"errors"`
}

// ---- Public API ----

// GetWallets lists the currencies the business can receive. It is idempotent,
// so transient failures are retried here; this GET is the only retried call,
// and booking and checkout requests stay single attempts.
func (c *Client) GetWallets(ctx context.Context) ([]domain.Wallet, error) {
	var out envelope[[]domain.Wallet]
	if err := c.get(ctx, c.base+"/api/external/v1/wallets", "wallets", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreatePaymentLink issues exactly one POST. A failed create is never retried
// because the provider may already have created the link.
func (c *Client) CreatePaymentLink(ctx context.Context, req domain.PaymentLinkRequest) (domain.PaymentLink, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return domain.PaymentLink{}, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return domain.PaymentLink{}, err
	}
	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/external/v1/payment-links", bytes.NewReader(body))
	if err != nil {
		return domain.PaymentLink{}, err
	}
	c.headers(hreq)
	hreq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(hreq)
	if err != nil {
		observability.ObserveExternal(service, "payment-links", 0, time.Since(start))
		return domain.PaymentLink{}, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal(service, "payment-links", resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.PaymentLink{}, decodeError(resp, "Failed to create payment link")
	}
	var out envelope[domain.PaymentLink]
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.PaymentLink{}, fmt.Errorf("%w: decode payment link: %v", domain.ErrUpstream, err)
	}
	return out.Data, nil
}

// ---- Internals ----

func (c *Client) headers(req *http.Request) {
	req.Header.Set("X-API-KEY", c.key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "coral-cove/1.0")
}

// decodeError folds the provider's error body into one message.
func decodeError(resp *http.Response, fallback string) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var body apiError
	if err := json.Unmarshal(b, &body); err != nil {
		return fmt.Errorf("%w: %s (Status: %d)", domain.ErrUpstream, fallback, resp.StatusCode)
	}

	msg := fallback
	switch {
	case body.Code == "ORIGIN_NOT_ALLOWED":
		msg = "Origin not allowed. Please configure the API key correctly."
	case body.Message != "":
		msg = body.Message
	case body.Error != "":
		msg = body.Error
	}
	if len(body.Errors) > 0 {
		fields := make([]string, 0, len(body.Errors))
		for f := range body.Errors {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			parts = append(parts, f+": "+strings.Join(body.Errors[f], ", "))
		}
		msg += " - " + strings.Join(parts, "; ")
	}
	return fmt.Errorf("%w: %s", domain.ErrUpstream, msg)
}

// get performs a GET with client-side rate limiting, retries, and JSON decode into out.
// Retries on 429 and transient 5xx, honoring Retry-After when provided.
func (c *Client) get(ctx context.Context, url, endpoint string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		c.headers(req)

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			observability.ObserveExternal(service, endpoint, 0, time.Since(start))
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = fmt.Errorf("%w: %v", domain.ErrUpstream, err)
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveExternal(service, endpoint, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			if err != nil {
				return fmt.Errorf("%w: decode %s: %v", domain.ErrUpstream, endpoint, err)
			}
			return nil

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("%w: remote %d", domain.ErrUpstream, resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			err := decodeError(resp, "Failed to fetch wallets")
			resp.Body.Close()
			return err
		}
	}

	if lastErr == nil {
		lastErr = errors.New("no attempt succeeded")
	}
	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles from 200ms per attempt with up to +50% jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
