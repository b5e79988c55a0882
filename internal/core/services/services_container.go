package services

import (
	portsrepo "github.com/SscSPs/invoicing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, fxClient portssvc.FXRatesClient) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The converter delegates to the same provider the proxy function exposes.
	rateProvider := NewExchangeRateService(fxClient, cfg.DefaultCurrency)
	container.RateProvider = rateProvider
	container.Converter = NewCurrencyConverterService(rateProvider)

	container.Currency = NewCurrencyService()
	container.ShareLink = NewShareLinkService(repos.DocumentRepo, cfg.PublicBaseURL)
	container.Company = NewCompanyService(repos.CompanySettingsRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ShareLinkSvc      = (*shareLinkService)(nil)
	_ portssvc.CompanyProfileSvc = (*CompanyService)(nil)
)
