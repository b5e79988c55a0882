package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
)

// ExchangeRateService fetches rates from the upstream FX provider and
// normalizes them to the supported currency set.
type ExchangeRateService struct {
	BaseService
	fxClient    portssvc.FXRatesClient
	defaultBase string
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(fxClient portssvc.FXRatesClient, defaultBase string) *ExchangeRateService {
	defaultBase = domain.NormalizeCurrencyCode(defaultBase)
	if defaultBase == "" {
		defaultBase = domain.DefaultCurrencyCode
	}
	return &ExchangeRateService{
		fxClient:    fxClient,
		defaultBase: defaultBase,
	}
}

var _ portssvc.RatesFetcher = (*ExchangeRateService)(nil)

// DefaultBase returns the base used when callers omit one.
func (s *ExchangeRateService) DefaultBase() string {
	return s.defaultBase
}

// FetchRates returns the allow-listed rates for base as reported by the upstream provider.
func (s *ExchangeRateService) FetchRates(ctx context.Context, base string) (*domain.RateTable, error) {
	base = domain.NormalizeCurrencyCode(base)
	if base == "" {
		base = s.defaultBase
	}

	upstream, err := s.fxClient.LatestRates(ctx, base)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch upstream exchange rates", slog.String("base", base))
		if errors.Is(err, apperrors.ErrFetch) {
			return nil, fmt.Errorf("failed to fetch rates for %s: %w", base, err)
		}
		return nil, fmt.Errorf("%w: failed to fetch rates for %s: %w", apperrors.ErrFetch, base, err)
	}

	rates := make(map[string]float64, len(domain.SupportedCurrencyCodes()))
	for _, code := range domain.SupportedCurrencyCodes() {
		// Codes the provider does not report are omitted, never defaulted.
		if rate, ok := upstream.Rates[code]; ok && rate > 0 {
			rates[code] = rate
		}
	}

	s.LogDebug(ctx, "Fetched exchange rates",
		slog.String("base", base),
		slog.Int("upstream_count", len(upstream.Rates)),
		slog.Int("kept_count", len(rates)))

	return &domain.RateTable{
		Base:       base,
		Rates:      rates,
		LastUpdate: upstream.TimeLastUpdateUTC,
	}, nil
}
