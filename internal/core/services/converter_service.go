package services

import (
	"context"
	"sync"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ratesLoadFailedMessage is what the converter exposes after a failed fetch.
const ratesLoadFailedMessage = "Impossible de charger les taux de change. Veuillez réessayer."

// CurrencyConverterService keeps the last successfully fetched rate table in
// memory and converts amounts against it.
type CurrencyConverterService struct {
	BaseService
	provider portssvc.RatesFetcher

	mu        sync.RWMutex
	table     *domain.RateTable
	inflight  int
	lastError string
}

// NewCurrencyConverterService creates a converter backed by provider.
func NewCurrencyConverterService(provider portssvc.RatesFetcher) *CurrencyConverterService {
	return &CurrencyConverterService{provider: provider}
}

var _ portssvc.CurrencyConverterSvc = (*CurrencyConverterService)(nil)

// FetchRates refreshes the cached table. On failure the previous table is kept,
// a readable message is recorded and nil is returned with the error.
// Loading stays set until every overlapping refresh has returned.
func (s *CurrencyConverterService) FetchRates(ctx context.Context, base string) (*domain.RateTable, error) {
	s.mu.Lock()
	s.inflight++
	s.lastError = ""
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inflight--
		s.mu.Unlock()
	}()

	table, err := s.provider.FetchRates(ctx, base)
	if err != nil {
		s.LogError(ctx, err, "Converter could not refresh rates")
		s.mu.Lock()
		s.lastError = ratesLoadFailedMessage
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	s.table = table
	s.mu.Unlock()

	return table, nil
}

// Convert converts amount from one currency to another using the cached table.
// Identical codes convert to the unchanged amount even before any table is loaded.
func (s *CurrencyConverterService) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, bool) {
	from = domain.NormalizeCurrencyCode(from)
	to = domain.NormalizeCurrencyCode(to)
	if from == to {
		return amount, true
	}

	s.mu.RLock()
	table := s.table
	s.mu.RUnlock()

	return table.Convert(amount, from, to)
}

// State returns a snapshot of the cache.
func (s *CurrencyConverterService) State() portssvc.ConverterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return portssvc.ConverterState{
		Table:     s.table,
		Loading:   s.inflight > 0,
		LastError: s.lastError,
	}
}
