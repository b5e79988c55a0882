package mapping

import (
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/models"
)

// ToModelDocument converts a domain Document to a model Document
func ToModelDocument(d domain.Document) models.Document {
	return models.Document{
		DocumentID:   d.DocumentID,
		Kind:         string(d.Kind),
		Number:       d.Number,
		ClientName:   d.ClientName,
		CurrencyCode: d.CurrencyCode,
		TotalAmount:  d.TotalAmount,
		ShareToken:   d.ShareToken,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDocument converts a model Document to a domain Document
func ToDomainDocument(m models.Document) domain.Document {
	return domain.Document{
		DocumentID:   m.DocumentID,
		Kind:         domain.DocumentKind(m.Kind),
		Number:       m.Number,
		ClientName:   m.ClientName,
		CurrencyCode: m.CurrencyCode,
		TotalAmount:  m.TotalAmount,
		ShareToken:   m.ShareToken,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
