package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencyPrecision returns the ISO 4217 minor-unit digits of code, defaulting to 2.
// Example: XOF and GNF have no minor unit, TND has 3.
func CurrencyPrecision(code string) int {
	if c := money.GetCurrency(code); c != nil {
		return c.Fraction
	}
	return 2
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).StringFixed(int32(precision))
}

// FormatWithCurrency formats an amount using the currency's locale and symbol.
// Example: 1234.5 USD (en-US) returns "$1,234.50"
// Example: 150000 XOF (fr-SN) returns "150 000 FCFA" (locale group separator)
func FormatWithCurrency(amount decimal.Decimal, currency domain.SupportedCurrency) string {
	precision := CurrencyPrecision(currency.Code)

	tag, err := language.Parse(currency.Locale)
	if err != nil {
		tag = language.French
	}
	printer := message.NewPrinter(tag)

	value := amount.Round(int32(precision)).InexactFloat64()
	formatted := printer.Sprint(number.Decimal(value, number.Scale(precision)))

	if base, _ := tag.Base(); base.String() == "en" {
		return currency.Symbol + formatted
	}
	return formatted + " " + currency.Symbol
}
