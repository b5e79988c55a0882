package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestShareDocument_ReturnsURLAndMailto() {
	shareURL := testPublicBaseURL + "/share/0123456789abcdef"
	suite.mockShare.On("GetOrCreateShareLink", mock.Anything, "doc-1").Return(&portssvc.ShareLink{
		DocumentID: "doc-1",
		Token:      "0123456789abcdef",
		URL:        shareURL,
		Created:    true,
	}, nil).Once()
	suite.mockCompany.On("LoadProfile", mock.Anything).Return(&domain.CompanyProfile{Name: "Atelier Diallo"}, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/documents/doc-1/share", `{"recipient":"client@example.com"}`, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp dto.ShareLinkResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("doc-1", resp.DocumentID)
	suite.Equal(shareURL, resp.ShareURL)

	mailto, err := url.Parse(resp.MailtoURL)
	suite.Require().NoError(err)
	suite.Equal("mailto", mailto.Scheme)
	suite.Equal("client@example.com", mailto.Opaque)
	suite.Contains(mailto.Query().Get("body"), shareURL)
	suite.Contains(mailto.Query().Get("body"), "Atelier Diallo")
}

func (suite *HandlerTestSuite) TestShareDocument_NotFound() {
	suite.mockShare.On("GetOrCreateShareLink", mock.Anything, "missing").
		Return(nil, apperrors.NewNotFoundError("document missing not found")).Once()

	w := suite.serve(http.MethodPost, "/api/v1/documents/missing/share", "", true)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestShareDocument_StorageFailure() {
	suite.mockShare.On("GetOrCreateShareLink", mock.Anything, "doc-2").Return(nil, apperrors.ErrStorage).Once()

	w := suite.serve(http.MethodPost, "/api/v1/documents/doc-2/share", "", true)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "shareUrl")
}

func (suite *HandlerTestSuite) TestShareDocument_InvalidRecipient() {
	w := suite.serve(http.MethodPost, "/api/v1/documents/doc-3/share", `{"recipient":"nope"}`, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockShare.AssertNotCalled(suite.T(), "GetOrCreateShareLink", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestGetSharedDocument_Public() {
	issued := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	doc := &domain.Document{
		DocumentID:   "doc-1",
		Kind:         domain.DocumentInvoice,
		Number:       "FAC-2024-001",
		ClientName:   "Client SARL",
		CurrencyCode: "USD",
		TotalAmount:  decimal.RequireFromString("1234.5"),
		AuditFields:  domain.AuditFields{CreatedAt: issued},
	}
	suite.mockShare.On("ResolveShareToken", mock.Anything, "0123456789abcdef").Return(doc, nil).Once()

	w := suite.serve(http.MethodGet, "/share/0123456789abcdef", "", false)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("FAC-2024-001", resp["number"])
	suite.Equal("$1,234.50", resp["formattedTotal"])
	suite.NotContains(w.Body.String(), "doc-1")
	suite.NotEmpty(w.Header().Get("X-RateLimit-Limit"))
}

func (suite *HandlerTestSuite) TestGetSharedDocument_Unknown() {
	suite.mockShare.On("ResolveShareToken", mock.Anything, "ffffffffffffffff").
		Return(nil, apperrors.NewNotFoundError("shared document not found")).Once()

	w := suite.serve(http.MethodGet, "/share/ffffffffffffffff", "", false)

	suite.Equal(http.StatusNotFound, w.Code)
}
