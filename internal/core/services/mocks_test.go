package services_test

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock FXRatesClient ---
type MockFXRatesClient struct {
	mock.Mock
}

func (m *MockFXRatesClient) LatestRates(ctx context.Context, base string) (*portssvc.UpstreamRates, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.UpstreamRates), args.Error(1)
}

// --- Mock RatesFetcher ---
type MockRatesFetcher struct {
	mock.Mock
}

func (m *MockRatesFetcher) FetchRates(ctx context.Context, base string) (*domain.RateTable, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateTable), args.Error(1)
}

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) FindShareToken(ctx context.Context, documentID string) (*string, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *MockDocumentRepository) FindDocumentByShareToken(ctx context.Context, token string) (*domain.Document, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) SetShareTokenIfAbsent(ctx context.Context, documentID, token string) (string, bool, error) {
	args := m.Called(ctx, documentID, token)
	return args.String(0), args.Bool(1), args.Error(2)
}

// --- Mock CompanySettingsRepository ---
type MockCompanySettingsRepository struct {
	mock.Mock
}

func (m *MockCompanySettingsRepository) GetSetting(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCompanySettingsRepository) PutSetting(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func strPtr(s string) *string {
	return &s
}
