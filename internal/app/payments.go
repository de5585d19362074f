package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"coral_cove/internal/domain"
	"coral_cove/internal/pricing"
)

type PaymentService struct {
	provider domain.PaymentProvider
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewPaymentService(p domain.PaymentProvider, c domain.Cache, ttl time.Duration) *PaymentService {
	return &PaymentService{provider: p, cache: c, cacheTTL: ttl}
}

// CreatePaymentLink validates and forwards one request. Provider failures come
// back wrapped in ErrUpstream; nothing is retried.
func (s *PaymentService) CreatePaymentLink(ctx context.Context, req domain.PaymentLinkRequest) (domain.PaymentLink, error) {
	if req.AmountType == "" {
		req.AmountType = domain.AmountReceive
	}
	if err := validatePaymentLink(req); err != nil {
		return domain.PaymentLink{}, err
	}
	link, err := s.provider.CreatePaymentLink(ctx, req)
	if err != nil {
		return domain.PaymentLink{}, upstream("create payment link", err)
	}
	return link, nil
}

func (s *PaymentService) Wallets(ctx context.Context) ([]domain.Wallet, error) {
	const key = "wallets"
	var out []domain.Wallet
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &out); ok {
			return out, nil
		}
	}
	out, err := s.provider.GetWallets(ctx)
	if err != nil {
		return nil, upstream("fetch wallets", err)
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

func upstream(op string, err error) error {
	if errors.Is(err, domain.ErrUpstream) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %v", op, domain.ErrUpstream, err)
}

func validatePaymentLink(req domain.PaymentLinkRequest) error {
	v := domain.NewValidationError()
	if req.Amount <= 0 {
		v.Add("amount", "Amount is required and must be greater than 0")
	}
	switch {
	case strings.TrimSpace(req.Currency) == "":
		v.Add("currency", "Currency is required")
	case !pricing.IsPayerCurrency(req.Currency):
		v.Add("currency", "must be one of "+strings.Join(pricing.PayerCurrencies, ", "))
	}
	if strings.TrimSpace(req.Description) == "" {
		v.Add("description", "Description is required")
	}
	if req.AmountType != domain.AmountReceive && req.AmountType != domain.AmountCharge {
		v.Add("amount_type", "must be receive or charge")
	}
	return v.OrNil()
}
