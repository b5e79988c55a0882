package dto

import (
	"time"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ShareLinkResponse is returned when a share link is requested for a document.
type ShareLinkResponse struct {
	DocumentID string `json:"documentID"`
	Token      string `json:"token"`
	ShareURL   string `json:"shareUrl"`
	MailtoURL  string `json:"mailtoUrl"`
}

// SharedDocumentResponse is the public view of a shared document.
type SharedDocumentResponse struct {
	Kind         string          `json:"kind"`
	Number       string          `json:"number"`
	ClientName   string          `json:"clientName"`
	CurrencyCode string          `json:"currencyCode"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Formatted    string          `json:"formattedTotal,omitempty"`
	IssuedAt     time.Time       `json:"issuedAt"`
}

// ToSharedDocumentResponse converts a domain.Document to its public view.
// The share token and internal id are intentionally left out.
func ToSharedDocumentResponse(doc *domain.Document) SharedDocumentResponse {
	return SharedDocumentResponse{
		Kind:         string(doc.Kind),
		Number:       doc.Number,
		ClientName:   doc.ClientName,
		CurrencyCode: doc.CurrencyCode,
		TotalAmount:  doc.TotalAmount,
		IssuedAt:     doc.CreatedAt,
	}
}

// ShareDocumentRequest optionally names who the share e-mail is addressed to.
type ShareDocumentRequest struct {
	Recipient string `json:"recipient" binding:"omitempty,email"`
}
