package dto

import "github.com/SscSPs/invoicing_app/internal/core/domain"

// UpdateCompanyProfileRequest is a partial update; nil fields are left unchanged.
type UpdateCompanyProfileRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Phone           *string `json:"phone" validate:"omitempty,max=50"`
	Address         *string `json:"address" validate:"omitempty,max=500"`
	TaxID           *string `json:"taxID" validate:"omitempty,max=100"`
	DefaultCurrency *string `json:"defaultCurrency" validate:"omitempty,len=3,supported_currency"`
	LogoURL         *string `json:"logoURL" validate:"omitempty,url"`
}

// CompanyProfileResponse defines the data returned for the company profile.
type CompanyProfileResponse struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	TaxID           string `json:"taxID"`
	DefaultCurrency string `json:"defaultCurrency"`
	LogoURL         string `json:"logoURL"`
}

// ToCompanyProfileResponse converts a domain.CompanyProfile to its DTO.
func ToCompanyProfileResponse(p *domain.CompanyProfile) CompanyProfileResponse {
	return CompanyProfileResponse(*p)
}
