package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/utils"
)

// sharePathSegment prefixes every public share URL path.
const sharePathSegment = "/share/"

// maxShareTokenAttempts bounds regeneration after a token collision.
const maxShareTokenAttempts = 3

// shareLinkService implements portssvc.ShareLinkSvc
type shareLinkService struct {
	BaseService
	documentRepo  portsrepo.DocumentRepositoryFacade
	publicBaseURL string
	newToken      func() (string, error)
}

// ShareLinkOption configures a shareLinkService.
type ShareLinkOption func(*shareLinkService)

// WithShareTokenGenerator replaces the token generator.
func WithShareTokenGenerator(gen func() (string, error)) ShareLinkOption {
	return func(s *shareLinkService) {
		s.newToken = gen
	}
}

// NewShareLinkService creates a share-link issuer building URLs under publicBaseURL.
func NewShareLinkService(documentRepo portsrepo.DocumentRepositoryFacade, publicBaseURL string, options ...ShareLinkOption) portssvc.ShareLinkSvc {
	s := &shareLinkService{
		documentRepo:  documentRepo,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		newToken:      utils.GenerateShareToken,
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// GetOrCreateShareURL returns the document's public URL, issuing a token on first use.
func (s *shareLinkService) GetOrCreateShareURL(ctx context.Context, documentID string) (string, error) {
	link, err := s.GetOrCreateShareLink(ctx, documentID)
	if err != nil {
		return "", err
	}
	return link.URL, nil
}

// GetOrCreateShareLink reuses an existing token or stores a new one with a
// conditional write, so concurrent first requests converge on one token.
func (s *shareLinkService) GetOrCreateShareLink(ctx context.Context, documentID string) (*portssvc.ShareLink, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return nil, fmt.Errorf("%w: document ID is required", apperrors.ErrValidation)
	}

	existing, err := s.documentRepo.FindShareToken(ctx, documentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read document share token", slog.String("document_id", documentID))
		return nil, fmt.Errorf("%w: failed to read share token of document %s: %w", apperrors.ErrStorage, documentID, err)
	}
	if existing != nil && *existing != "" {
		return s.link(documentID, *existing, false), nil
	}

	for attempt := 1; attempt <= maxShareTokenAttempts; attempt++ {
		token, err := s.newToken()
		if err != nil {
			return nil, fmt.Errorf("failed to generate share token: %w", err)
		}

		stored, written, err := s.documentRepo.SetShareTokenIfAbsent(ctx, documentID, token)
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				s.LogWarn(ctx, "Share token collision, regenerating",
					slog.String("document_id", documentID), slog.Int("attempt", attempt))
				continue
			}
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("document %s: %w", documentID, err)
			}
			s.LogError(ctx, err, "Failed to store document share token", slog.String("document_id", documentID))
			return nil, fmt.Errorf("%w: failed to store share token of document %s: %w", apperrors.ErrStorage, documentID, err)
		}

		if !written {
			s.LogInfo(ctx, "Share token was issued concurrently, reusing stored token",
				slog.String("document_id", documentID))
		} else {
			s.LogInfo(ctx, "Share token issued", slog.String("document_id", documentID))
		}
		return s.link(documentID, stored, written), nil
	}

	return nil, fmt.Errorf("%w: could not allocate a unique share token after %d attempts",
		apperrors.ErrStorage, maxShareTokenAttempts)
}

// ResolveShareToken returns the document a public token points at.
func (s *shareLinkService) ResolveShareToken(ctx context.Context, token string) (*domain.Document, error) {
	if !utils.IsValidShareToken(token) {
		return nil, apperrors.NewNotFoundError("shared document not found")
	}

	doc, err := s.documentRepo.FindDocumentByShareToken(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to resolve share token")
		return nil, fmt.Errorf("%w: failed to resolve share token: %w", apperrors.ErrStorage, err)
	}
	return doc, nil
}

func (s *shareLinkService) link(documentID, token string, created bool) *portssvc.ShareLink {
	return &portssvc.ShareLink{
		DocumentID: documentID,
		Token:      token,
		URL:        s.publicBaseURL + sharePathSegment + token,
		Created:    created,
	}
}
