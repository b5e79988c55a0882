package repositories

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// DocumentReader defines read operations for document data
type DocumentReader interface {
	// FindShareToken returns the document's current share token.
	// A missing document and a document without a token both yield (nil, nil).
	FindShareToken(ctx context.Context, documentID string) (*string, error)

	// FindDocumentByShareToken resolves a public share token to its document.
	FindDocumentByShareToken(ctx context.Context, token string) (*domain.Document, error)
}

// DocumentWriter defines write operations for document data
type DocumentWriter interface {
	// SetShareTokenIfAbsent stores token only when the document has none yet.
	// It returns the token now stored on the row and whether this call wrote it.
	// It returns apperrors.ErrNotFound when the document does not exist and
	// apperrors.ErrDuplicate when another document already owns token.
	SetShareTokenIfAbsent(ctx context.Context, documentID, token string) (stored string, written bool, err error)
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}
