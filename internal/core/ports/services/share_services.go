package services

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
)

// ShareLink is the result of issuing (or reusing) a public share link.
type ShareLink struct {
	DocumentID string
	Token      string
	URL        string
	Created    bool // true when this call generated and stored the token
}

// ShareLinkSvc issues and resolves public document share links.
type ShareLinkSvc interface {
	// GetOrCreateShareURL returns the public URL of a document, issuing a token on first use.
	GetOrCreateShareURL(ctx context.Context, documentID string) (string, error)

	// GetOrCreateShareLink is GetOrCreateShareURL with the token details.
	GetOrCreateShareLink(ctx context.Context, documentID string) (*ShareLink, error)

	// ResolveShareToken returns the document a public token points at.
	ResolveShareToken(ctx context.Context, token string) (*domain.Document, error)
}
