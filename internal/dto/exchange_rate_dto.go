package dto

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRatesRequest is the body accepted by the exchange-rate proxy function.
type ExchangeRatesRequest struct {
	Base string `json:"base"`
}

// ExchangeRatesResponse is the proxy function's success payload.
type ExchangeRatesResponse struct {
	Base           string             `json:"base"`
	Rates          map[string]float64 `json:"rates"`
	TimeLastUpdate string             `json:"time_last_update"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToExchangeRatesResponse converts a domain.RateTable to the proxy payload.
func ToExchangeRatesResponse(table *domain.RateTable) ExchangeRatesResponse {
	return ExchangeRatesResponse{
		Base:           table.Base,
		Rates:          table.Rates,
		TimeLastUpdate: table.LastUpdate,
	}
}

// RefreshRatesRequest asks the converter to refetch its table.
type RefreshRatesRequest struct {
	Base string `json:"base" binding:"omitempty,len=3"`
}

// RatesStateResponse describes the converter cache.
type RatesStateResponse struct {
	Table     *domain.RateTable `json:"table"`
	Loading   bool              `json:"loading"`
	LastError string            `json:"lastError,omitempty"`
}

// ConvertQuery is bound from the convert endpoint's query string.
type ConvertQuery struct {
	Amount string `form:"amount" binding:"required"`
	From   string `form:"from" binding:"required,len=3"`
	To     string `form:"to" binding:"required,len=3"`
}

// ConvertResponse carries a successful conversion.
type ConvertResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Result    decimal.Decimal `json:"result"`
	Formatted string          `json:"formatted,omitempty"`
}
