package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/go-playground/validator/v10"
)

// CompanyService loads the company profile from the settings store and saves
// it back after every change.
type CompanyService struct {
	BaseService
	settingsRepo portsrepo.CompanySettingsRepository
	validate     *validator.Validate
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(settingsRepo portsrepo.CompanySettingsRepository) *CompanyService {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("supported_currency", func(fl validator.FieldLevel) bool {
		return domain.IsSupportedCurrency(fl.Field().String())
	})

	return &CompanyService{
		settingsRepo: settingsRepo,
		validate:     v,
	}
}

var _ portssvc.CompanyProfileSvc = (*CompanyService)(nil)

// LoadProfile returns the stored profile. Missing or unreadable entries fall
// back to the defaults; missing fields keep their default values.
func (s *CompanyService) LoadProfile(ctx context.Context) (*domain.CompanyProfile, error) {
	profile := domain.DefaultCompanyProfile()

	raw, err := s.settingsRepo.GetSetting(ctx, domain.CompanyProfileKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &profile, nil
		}
		s.LogError(ctx, err, "Failed to load company profile")
		return nil, fmt.Errorf("%w: failed to load company profile: %w", apperrors.ErrStorage, err)
	}

	if err := json.Unmarshal(raw, &profile); err != nil {
		s.LogWarn(ctx, "Stored company profile is unreadable, using defaults", slog.String("error", err.Error()))
		profile = domain.DefaultCompanyProfile()
	}
	return &profile, nil
}

// UpdateProfile validates req, applies it on top of the current profile and saves the result.
func (s *CompanyService) UpdateProfile(ctx context.Context, req dto.UpdateCompanyProfileRequest) (*domain.CompanyProfile, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	profile, err := s.LoadProfile(ctx)
	if err != nil {
		return nil, err
	}

	applyString(&profile.Name, req.Name)
	applyString(&profile.Email, req.Email)
	applyString(&profile.Phone, req.Phone)
	applyString(&profile.Address, req.Address)
	applyString(&profile.TaxID, req.TaxID)
	applyString(&profile.LogoURL, req.LogoURL)
	if req.DefaultCurrency != nil {
		profile.DefaultCurrency = domain.NormalizeCurrencyCode(*req.DefaultCurrency)
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode company profile: %w", err)
	}
	if err := s.settingsRepo.PutSetting(ctx, domain.CompanyProfileKey, raw); err != nil {
		s.LogError(ctx, err, "Failed to save company profile")
		return nil, fmt.Errorf("%w: failed to save company profile: %w", apperrors.ErrStorage, err)
	}

	s.LogInfo(ctx, "Company profile saved")
	return profile, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
