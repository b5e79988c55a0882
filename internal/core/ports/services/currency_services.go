package services

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RatesFetcher retrieves a normalized rate table from an upstream source.
type RatesFetcher interface {
	// FetchRates returns the allow-listed rates for base. An empty base selects the default currency.
	FetchRates(ctx context.Context, base string) (*domain.RateTable, error)
}

// ConverterState is a point-in-time snapshot of the converter cache.
type ConverterState struct {
	Table     *domain.RateTable
	Loading   bool
	LastError string
}

// CurrencyConverterSvc caches the last fetched rate table and converts amounts against it.
type CurrencyConverterSvc interface {
	RatesFetcher

	// Convert converts amount between two codes. ok is false when no conversion path exists.
	Convert(amount decimal.Decimal, from, to string) (result decimal.Decimal, ok bool)

	// State returns a snapshot of the cache.
	State() ConverterState
}

// CurrencyCatalogSvc exposes the static supported-currency reference set.
type CurrencyCatalogSvc interface {
	ListCurrencies(ctx context.Context) ([]domain.SupportedCurrency, error)
	GetCurrencyByCode(ctx context.Context, code string) (*domain.SupportedCurrency, error)
	FormatAmount(amount decimal.Decimal, code string) (string, error)
}

// UpstreamRates is the raw latest-rates payload of an FX provider.
type UpstreamRates struct {
	Rates             map[string]float64
	TimeLastUpdateUTC string
}

// FXRatesClient talks to the third-party FX provider.
type FXRatesClient interface {
	// LatestRates returns every rate the provider knows for base.
	LatestRates(ctx context.Context, base string) (*UpstreamRates, error)
}
