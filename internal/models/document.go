package models

import (
	"github.com/shopspring/decimal"
)

// Document is the row shape of the documents table.
type Document struct {
	DocumentID   string          `db:"document_id"`
	Kind         string          `db:"kind"`
	Number       string          `db:"number"`
	ClientName   string          `db:"client_name"`
	CurrencyCode string          `db:"currency_code"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	ShareToken   *string         `db:"share_token"` // Nullable, unique
	AuditFields
}
