package dto

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Locale       string `json:"locale"`
}

// ToCurrencyResponse converts a domain.SupportedCurrency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.SupportedCurrency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: curr.Code,
		Symbol:       curr.Symbol,
		Name:         curr.Name,
		Locale:       curr.Locale,
	}
}

// ToListCurrencyResponse converts a slice of currencies to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.SupportedCurrency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
