package handlers_test

import (
	"encoding/json"
	"net/http"

	"github.com/SscSPs/invoicing_app/internal/dto"
)

func (suite *HandlerTestSuite) TestListCurrencies() {
	w := suite.serve(http.MethodGet, "/api/v1/currencies", "", true)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp []dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 8)
}

func (suite *HandlerTestSuite) TestGetCurrencyByCode() {
	w := suite.serve(http.MethodGet, "/api/v1/currencies/mad", "", true)

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"currencyCode":"MAD"`)
}

func (suite *HandlerTestSuite) TestGetCurrencyByCode_Unsupported() {
	w := suite.serve(http.MethodGet, "/api/v1/currencies/JPY", "", true)

	suite.Equal(http.StatusNotFound, w.Code)
}
