package domain

import "strings"

// DefaultCurrencyCode is used whenever a caller omits the base currency.
const DefaultCurrencyCode = "EUR"

// SupportedCurrency is an entry of the static currency reference set.
type SupportedCurrency struct {
	Code   string `json:"code"`   // e.g., "XOF"
	Symbol string `json:"symbol"` // e.g., "FCFA"
	Name   string `json:"name"`   // e.g., "Franc CFA (BCEAO)"
	Locale string `json:"locale"` // BCP 47 tag used for number formatting
}

// supportedCurrencies is the allow-list. Order is the display order.
var supportedCurrencies = []SupportedCurrency{
	{Code: "EUR", Symbol: "€", Name: "Euro", Locale: "fr-FR"},
	{Code: "XOF", Symbol: "FCFA", Name: "Franc CFA (BCEAO)", Locale: "fr-SN"},
	{Code: "XAF", Symbol: "FCFA", Name: "Franc CFA (BEAC)", Locale: "fr-CM"},
	{Code: "USD", Symbol: "$", Name: "Dollar américain", Locale: "en-US"},
	{Code: "GBP", Symbol: "£", Name: "Livre sterling", Locale: "en-GB"},
	{Code: "MAD", Symbol: "DH", Name: "Dirham marocain", Locale: "fr-MA"},
	{Code: "TND", Symbol: "DT", Name: "Dinar tunisien", Locale: "fr-TN"},
	{Code: "GNF", Symbol: "FG", Name: "Franc guinéen", Locale: "fr-GN"},
}

var supportedByCode = func() map[string]SupportedCurrency {
	m := make(map[string]SupportedCurrency, len(supportedCurrencies))
	for _, c := range supportedCurrencies {
		m[c.Code] = c
	}
	return m
}()

// SupportedCurrencies returns a copy of the reference set.
func SupportedCurrencies() []SupportedCurrency {
	out := make([]SupportedCurrency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// SupportedCurrencyCodes returns the allow-listed codes in display order.
func SupportedCurrencyCodes() []string {
	codes := make([]string, len(supportedCurrencies))
	for i, c := range supportedCurrencies {
		codes[i] = c.Code
	}
	return codes
}

// LookupSupportedCurrency finds a currency by code, case-insensitively.
func LookupSupportedCurrency(code string) (SupportedCurrency, bool) {
	c, ok := supportedByCode[NormalizeCurrencyCode(code)]
	return c, ok
}

// IsSupportedCurrency reports whether code belongs to the allow-list.
func IsSupportedCurrency(code string) bool {
	_, ok := supportedByCode[NormalizeCurrencyCode(code)]
	return ok
}

// NormalizeCurrencyCode trims and upper-cases a currency code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
