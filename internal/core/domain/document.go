package domain

import "github.com/shopspring/decimal"

// DocumentKind distinguishes invoices from quotes.
type DocumentKind string

const (
	DocumentInvoice DocumentKind = "INVOICE"
	DocumentQuote   DocumentKind = "QUOTE"
)

// Document is an invoice or quote that can be shared through a public link.
type Document struct {
	DocumentID   string          `json:"documentID"`
	Kind         DocumentKind    `json:"kind"`
	Number       string          `json:"number"`
	ClientName   string          `json:"clientName"`
	CurrencyCode string          `json:"currencyCode"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	ShareToken   *string         `json:"shareToken,omitempty"` // nil until first share request
	AuditFields
}

// HasShareToken reports whether a token has already been issued.
func (d *Document) HasShareToken() bool {
	return d.ShareToken != nil && *d.ShareToken != ""
}
