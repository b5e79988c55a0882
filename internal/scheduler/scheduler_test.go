package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRatesFetcher struct {
	mock.Mock
}

func (m *mockRatesFetcher) FetchRates(ctx context.Context, base string) (*domain.RateTable, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

func newTestScheduler(fetcher *mockRatesFetcher) *Scheduler {
	return NewScheduler(context.Background(), fetcher, "EUR", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRefreshRatesNow_UsesConfiguredBase(t *testing.T) {
	fetcher := new(mockRatesFetcher)
	fetcher.On("FetchRates", mock.Anything, "EUR").
		Return(&domain.RateTable{Base: "EUR", Rates: map[string]float64{"USD": 1.1}}, nil).Once()

	newTestScheduler(fetcher).RefreshRatesNow()

	fetcher.AssertExpectations(t)
}

func TestRefreshRatesNow_FailureIsSwallowed(t *testing.T) {
	fetcher := new(mockRatesFetcher)
	fetcher.On("FetchRates", mock.Anything, "EUR").Return(nil, errors.New("upstream down")).Once()

	assert.NotPanics(t, newTestScheduler(fetcher).RefreshRatesNow)
	fetcher.AssertExpectations(t)
}

func TestRegisterRatesRefresh(t *testing.T) {
	s := newTestScheduler(new(mockRatesFetcher))

	require.NoError(t, s.RegisterRatesRefresh(""))
	assert.Empty(t, s.Cron.Entries())

	require.NoError(t, s.RegisterRatesRefresh("0 0 */6 * * *"))
	assert.Len(t, s.Cron.Entries(), 1)

	assert.Error(t, s.RegisterRatesRefresh("every six hours"))
}
