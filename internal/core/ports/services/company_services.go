package services

import (
	"context"

	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
)

// CompanyProfileSvc loads and saves the company profile.
type CompanyProfileSvc interface {
	// LoadProfile returns the stored profile, or the defaults when none was saved.
	LoadProfile(ctx context.Context) (*domain.CompanyProfile, error)

	// UpdateProfile applies req on top of the current profile and saves the result.
	UpdateProfile(ctx context.Context, req dto.UpdateCompanyProfileRequest) (*domain.CompanyProfile, error)
}
