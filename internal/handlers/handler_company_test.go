package handlers_test

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestGetCompanyProfile_Defaults() {
	profile := domain.DefaultCompanyProfile()
	suite.mockCompany.On("LoadProfile", mock.Anything).Return(&profile, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/company", "", true)

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"name":"Mon entreprise"`)
	suite.Contains(w.Body.String(), `"defaultCurrency":"EUR"`)
}

func (suite *HandlerTestSuite) TestUpdateCompanyProfile_Success() {
	updated := &domain.CompanyProfile{Name: "Atelier Diallo", DefaultCurrency: "XOF"}
	suite.mockCompany.On("UpdateProfile", mock.Anything, mock.MatchedBy(func(req dto.UpdateCompanyProfileRequest) bool {
		return req.Name != nil && *req.Name == "Atelier Diallo" && req.Email == nil
	})).Return(updated, nil).Once()

	w := suite.serve(http.MethodPut, "/api/v1/company", `{"name":"Atelier Diallo","defaultCurrency":"XOF"}`, true)

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"defaultCurrency":"XOF"`)
}

func (suite *HandlerTestSuite) TestUpdateCompanyProfile_ValidationError() {
	suite.mockCompany.On("UpdateProfile", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: unsupported currency", apperrors.ErrValidation)).Once()

	w := suite.serve(http.MethodPut, "/api/v1/company", `{"defaultCurrency":"JPY"}`, true)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateCompanyProfile_StorageError() {
	suite.mockCompany.On("UpdateProfile", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()

	w := suite.serve(http.MethodPut, "/api/v1/company", `{"name":"X"}`, true)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Failed to save company profile"}`, w.Body.String())
}
