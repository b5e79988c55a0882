package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToDomainDocument(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	token := "a1b2c3d4e5f60718"
	m := models.Document{
		DocumentID:   "doc-1",
		Kind:         "INVOICE",
		Number:       "F-2024-001",
		ClientName:   "Société Dakaroise",
		CurrencyCode: "XOF",
		TotalAmount:  decimal.NewFromInt(150000),
		ShareToken:   &token,
		AuditFields:  models.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	d := ToDomainDocument(m)

	assert.Equal(t, domain.DocumentInvoice, d.Kind)
	assert.Equal(t, "F-2024-001", d.Number)
	assert.True(t, d.TotalAmount.Equal(decimal.NewFromInt(150000)))
	assert.Equal(t, &token, d.ShareToken)
	assert.Equal(t, now, d.CreatedAt)

	// Round trip back to the row shape keeps the nullable token.
	assert.Equal(t, m, ToModelDocument(d))
}

func TestToDomainDocument_NoToken(t *testing.T) {
	d := ToDomainDocument(models.Document{DocumentID: "doc-2", Kind: "QUOTE"})

	assert.Nil(t, d.ShareToken)
	assert.False(t, d.HasShareToken())
	assert.Equal(t, domain.DocumentQuote, d.Kind)
}
