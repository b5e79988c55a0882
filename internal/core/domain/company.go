package domain

// CompanyProfileKey is the key-value entry the profile is persisted under.
const CompanyProfileKey = "company_profile"

// CompanyProfile is the issuing company's identity printed on documents.
type CompanyProfile struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	TaxID           string `json:"taxID"`
	DefaultCurrency string `json:"defaultCurrency"`
	LogoURL         string `json:"logoURL"`
}

// DefaultCompanyProfile is returned when nothing has been saved yet.
func DefaultCompanyProfile() CompanyProfile {
	return CompanyProfile{
		Name:            "Mon entreprise",
		DefaultCurrency: DefaultCurrencyCode,
	}
}
