package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	"github.com/SscSPs/invoicing_app/internal/models"
	"github.com/SscSPs/invoicing_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// shareTokenConstraint is the unique constraint on documents.share_token.
const shareTokenConstraint = "uq_documents_share_token"

// PgxDocumentRepository reads documents and stores their share tokens.
type PgxDocumentRepository struct {
	BaseRepository
}

// newPgxDocumentRepository creates a new repository for document data.
func newPgxDocumentRepository(pool *pgxpool.Pool) *PgxDocumentRepository {
	return &PgxDocumentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)
var _ portsrepo.TransactionManager = (*PgxDocumentRepository)(nil)

// FindShareToken returns the document's share token, or nil when the document
// has none or does not exist.
func (r *PgxDocumentRepository) FindShareToken(ctx context.Context, documentID string) (*string, error) {
	query := `SELECT share_token FROM documents WHERE document_id = $1;`

	var token *string
	err := r.Pool.QueryRow(ctx, query, documentID).Scan(&token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read share token of document %s: %w", documentID, err)
	}
	return token, nil
}

// FindDocumentByShareToken resolves a public share token to its document.
func (r *PgxDocumentRepository) FindDocumentByShareToken(ctx context.Context, token string) (*domain.Document, error) {
	query := `
		SELECT document_id, kind, number, client_name, currency_code, total_amount, share_token, created_at, last_updated_at
		FROM documents
		WHERE share_token = $1;
	`
	var modelDoc models.Document
	err := r.Pool.QueryRow(ctx, query, token).Scan(
		&modelDoc.DocumentID,
		&modelDoc.Kind,
		&modelDoc.Number,
		&modelDoc.ClientName,
		&modelDoc.CurrencyCode,
		&modelDoc.TotalAmount,
		&modelDoc.ShareToken,
		&modelDoc.CreatedAt,
		&modelDoc.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("shared document not found")
		}
		return nil, fmt.Errorf("failed to find document by share token: %w", err)
	}

	doc := mapping.ToDomainDocument(modelDoc)
	return &doc, nil
}

// SetShareTokenIfAbsent writes token only where share_token is still NULL.
// When another request stored a token first, that stored token is returned
// with written == false.
func (r *PgxDocumentRepository) SetShareTokenIfAbsent(ctx context.Context, documentID, token string) (string, bool, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return "", false, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	updateQuery := `
		UPDATE documents
		SET share_token = $2, last_updated_at = NOW()
		WHERE document_id = $1 AND share_token IS NULL
		RETURNING share_token;
	`
	var stored string
	err = tx.QueryRow(ctx, updateQuery, documentID, token).Scan(&stored)
	switch {
	case err == nil:
		if err := r.Commit(ctx, tx); err != nil {
			return "", false, err
		}
		return stored, true, nil
	case isUniqueViolation(err, shareTokenConstraint):
		return "", false, fmt.Errorf("%w: share token already in use", apperrors.ErrDuplicate)
	case !errors.Is(err, pgx.ErrNoRows):
		return "", false, fmt.Errorf("failed to store share token of document %s: %w", documentID, err)
	}

	// Nothing updated: either the row is gone or a token is already set.
	var existing *string
	err = tx.QueryRow(ctx, `SELECT share_token FROM documents WHERE document_id = $1;`, documentID).Scan(&existing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, apperrors.NewNotFoundError("document " + documentID + " not found")
		}
		return "", false, fmt.Errorf("failed to re-read share token of document %s: %w", documentID, err)
	}
	if existing == nil || *existing == "" {
		return "", false, fmt.Errorf("document %s has no share token after a skipped conditional write", documentID)
	}
	return *existing, false, nil
}
