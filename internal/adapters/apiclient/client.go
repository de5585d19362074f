// Package apiclient talks to the booking API over HTTP and unwraps its
// {success, data, message} envelope. Calls are single attempts.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"coral_cove/internal/domain"
)

type Client struct {
	base string
	hc   *http.Client
}

// New takes the server root; every method requests an /api/... path under it.
func New(base string) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
	}
}

// NewWithHTTPClient is New with a caller-supplied transport (tests use httptest clients).
func NewWithHTTPClient(base string, hc *http.Client) *Client {
	return &Client{base: strings.TrimRight(base, "/"), hc: hc}
}

// Error is a non-success envelope. It unwraps to the domain sentinel matching the status.
type Error struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api %d: %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error {
	switch {
	case e.Status == http.StatusBadRequest:
		return domain.ErrValidation
	case e.Status == http.StatusNotFound:
		return domain.ErrNotFound
	case e.Status == http.StatusConflict:
		return domain.ErrUnavailable
	}
	return domain.ErrUpstream
}

type envelope struct {
	Success bool                `json:"success"`
	Data    json.RawMessage     `json:"data"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (c *Client) ListRooms(ctx context.Context, q domain.RoomsQuery) ([]domain.Room, error) {
	v := url.Values{}
	if q.Type != "" {
		v.Set("type", q.Type)
	}
	if q.Featured {
		v.Set("featured", "true")
	}
	var out []domain.Room
	return out, c.do(ctx, http.MethodGet, "/api/rooms", v, nil, &out)
}

func (c *Client) GetRoom(ctx context.Context, idOrSlug string) (domain.Room, error) {
	var out domain.Room
	return out, c.do(ctx, http.MethodGet, "/api/rooms/"+url.PathEscape(idOrSlug), nil, nil, &out)
}

func (c *Client) RangeAvailability(ctx context.Context, checkIn, checkOut string) (domain.RangeAvailability, error) {
	v := url.Values{"checkIn": {checkIn}, "checkOut": {checkOut}}
	var out domain.RangeAvailability
	return out, c.do(ctx, http.MethodGet, "/api/availability", v, nil, &out)
}

func (c *Client) RoomAvailability(ctx context.Context, roomID, checkIn, checkOut string) (domain.RoomAvailability, error) {
	v := url.Values{"checkIn": {checkIn}, "checkOut": {checkOut}, "roomId": {roomID}}
	var out domain.RoomAvailability
	return out, c.do(ctx, http.MethodGet, "/api/availability", v, nil, &out)
}

func (c *Client) CreateBooking(ctx context.Context, in domain.CreateBookingInput) (domain.Booking, error) {
	var out domain.Booking
	return out, c.do(ctx, http.MethodPost, "/api/bookings", nil, in, &out)
}

func (c *Client) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	return out, c.do(ctx, http.MethodGet, "/api/bookings", nil, nil, &out)
}

func (c *Client) CreatePaymentLink(ctx context.Context, req domain.PaymentLinkRequest) (domain.PaymentLink, error) {
	var out domain.PaymentLink
	return out, c.do(ctx, http.MethodPost, "/api/payment-links", nil, req, &out)
}

func (c *Client) Wallets(ctx context.Context) ([]domain.Wallet, error) {
	var out []domain.Wallet
	return out, c.do(ctx, http.MethodGet, "/api/wallets", nil, nil, &out)
}

func (c *Client) do(ctx context.Context, method, path string, q url.Values, body, out any) error {
	u := c.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(io.LimitReader(resp.Body, 8<<20)).Decode(&env); err != nil {
		return &Error{Status: resp.StatusCode, Message: "unreadable response: " + err.Error()}
	}
	if resp.StatusCode >= 300 || !env.Success {
		return &Error{Status: resp.StatusCode, Message: env.Message, Fields: env.Errors}
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}
