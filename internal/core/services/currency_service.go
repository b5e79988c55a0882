package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CurrencyService serves the static supported-currency set.
type CurrencyService struct {
	BaseService
}

func NewCurrencyService() *CurrencyService {
	return &CurrencyService{}
}

var _ portssvc.CurrencyCatalogSvc = (*CurrencyService)(nil)

func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.SupportedCurrency, error) {
	currency, ok := domain.LookupSupportedCurrency(currencyCode)
	if !ok {
		return nil, fmt.Errorf("currency %q: %w", currencyCode, apperrors.ErrNotFound)
	}
	return &currency, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.SupportedCurrency, error) {
	return domain.SupportedCurrencies(), nil
}

// FormatAmount renders amount in the currency's locale with its symbol.
func (s *CurrencyService) FormatAmount(amount decimal.Decimal, code string) (string, error) {
	currency, ok := domain.LookupSupportedCurrency(code)
	if !ok {
		return "", fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, code)
	}
	return utils.FormatWithCurrency(amount, currency), nil
}
