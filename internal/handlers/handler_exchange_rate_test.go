package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	"github.com/SscSPs/invoicing_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const proxyPath = "/functions/v1/exchange-rates"

func (suite *HandlerTestSuite) TestProxy_FiltersToSupportedCurrencies() {
	w := suite.serve(http.MethodPost, proxyPath, `{"base":"USD"}`, false)

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
	suite.Equal("/v6/latest/USD", suite.upstream.lastPath.Load())

	var resp dto.ExchangeRatesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.Base)
	suite.Equal(map[string]float64{"EUR": 0.9, "XOF": 600}, resp.Rates)
	suite.Equal("Mon, 01 Jan 2024 00:00:01 +0000", resp.TimeLastUpdate)
}

func (suite *HandlerTestSuite) TestProxy_EmptyBodyUsesDefaultBase() {
	w := suite.serve(http.MethodPost, proxyPath, "", false)

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("/v6/latest/EUR", suite.upstream.lastPath.Load())
}

func (suite *HandlerTestSuite) TestProxy_PreflightDoesNotCallUpstream() {
	w := suite.serve(http.MethodOptions, proxyPath, "", false)

	suite.Equal(http.StatusOK, w.Code)
	suite.Empty(w.Body.String())
	suite.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
	suite.Contains(w.Header().Get("Access-Control-Allow-Headers"), "x-client-info")
	suite.Equal(int32(0), suite.upstream.hits.Load())
}

func (suite *HandlerTestSuite) TestProxy_BrowserPreflightDoesNotCallUpstream() {
	req := httptest.NewRequest(http.MethodOptions, proxyPath, nil)
	req.Header.Set("Origin", "https://invoices.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "authorization, x-client-info, apikey, content-type")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Empty(w.Body.String())
	suite.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
	allowed := strings.ToLower(w.Header().Get("Access-Control-Allow-Headers"))
	for _, h := range []string{"authorization", "x-client-info", "apikey", "content-type"} {
		suite.Contains(allowed, h)
	}
	suite.Equal(int32(0), suite.upstream.hits.Load())
}

func (suite *HandlerTestSuite) TestProxy_UpstreamFailureIsUniform() {
	suite.upstream.status = http.StatusServiceUnavailable
	suite.upstream.body = `{"result":"error","error-type":"quota-reached"}`

	w := suite.serve(http.MethodPost, proxyPath, `{"base":"EUR"}`, false)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Impossible de récupérer les taux de change"}`, w.Body.String())
	suite.Equal("*", w.Header().Get("Access-Control-Allow-Origin"))
}

func (suite *HandlerTestSuite) TestProxy_MalformedBodyIsUniform() {
	w := suite.serve(http.MethodPost, proxyPath, `{"base":`, false)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Impossible de récupérer les taux de change"}`, w.Body.String())
	suite.Equal(int32(0), suite.upstream.hits.Load())
}

func (suite *HandlerTestSuite) TestConvert_Success() {
	suite.mockConverter.On("Convert", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(100))
	}), "EUR", "USD").Return(decimal.NewFromInt(110), true).Once()

	w := suite.serve(http.MethodGet, "/api/v1/convert?amount=100&from=eur&to=USD", "", true)

	suite.Require().Equal(http.StatusOK, w.Code)
	var resp map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("110", resp["result"])
	suite.Equal("$110.00", resp["formatted"])
	suite.mockConverter.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestConvert_NotConvertible() {
	suite.mockConverter.On("Convert", mock.Anything, "EUR", "GNF").Return(decimal.Zero, false).Once()

	w := suite.serve(http.MethodGet, "/api/v1/convert?amount=5&from=EUR&to=GNF", "", true)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlerTestSuite) TestConvert_InvalidAmount() {
	w := suite.serve(http.MethodGet, "/api/v1/convert?amount=abc&from=EUR&to=USD", "", true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockConverter.AssertNotCalled(suite.T(), "Convert", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestRatesState() {
	table := &domain.RateTable{Base: "EUR", Rates: map[string]float64{"USD": 1.1}, LastUpdate: "today"}
	suite.mockConverter.On("State").Return(portssvc.ConverterState{Table: table}).Once()

	w := suite.serve(http.MethodGet, "/api/v1/rates", "", true)

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"table":{"base":"EUR","rates":{"USD":1.1},"lastUpdate":"today"},"loading":false}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestRefreshRates_Failure() {
	suite.mockConverter.On("FetchRates", mock.Anything, "XOF").Return(nil, errors.Join(apperrors.ErrFetch)).Once()
	suite.mockConverter.On("State").Return(portssvc.ConverterState{
		LastError: "Impossible de charger les taux de change. Veuillez réessayer.",
	}).Once()

	w := suite.serve(http.MethodPost, "/api/v1/rates/refresh", `{"base":"XOF"}`, true)

	suite.Equal(http.StatusBadGateway, w.Code)
	suite.JSONEq(`{"error":"Impossible de charger les taux de change. Veuillez réessayer."}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestRefreshRates_Success() {
	table := &domain.RateTable{Base: "EUR", Rates: map[string]float64{"USD": 1.1}}
	suite.mockConverter.On("FetchRates", mock.Anything, "").Return(table, nil).Once()
	suite.mockConverter.On("State").Return(portssvc.ConverterState{Table: table}).Once()

	w := suite.serve(http.MethodPost, "/api/v1/rates/refresh", "", true)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockConverter.AssertExpectations(suite.T())
}
