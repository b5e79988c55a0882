package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"github.com/SscSPs/invoicing_app/internal/dto"
	"github.com/SscSPs/invoicing_app/internal/middleware"
	"github.com/SscSPs/invoicing_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ratesUnavailableMessage is the only failure text the public proxy ever returns.
const ratesUnavailableMessage = "Impossible de récupérer les taux de change"

// exchangeRateFunctionPath is the proxy route, relative to the engine root.
const exchangeRateFunctionPath = "/functions/v1/exchange-rates"

// exchangeRateFunctionHandler serves the public exchange-rate proxy.
type exchangeRateFunctionHandler struct {
	rateProvider portssvc.RatesFetcher
	analytics    *utils.PosthogClientWrapper
}

// registerExchangeRateFunctionRoutes registers the proxy for every body-carrying method plus OPTIONS.
func registerExchangeRateFunctionRoutes(r *gin.Engine, rateProvider portssvc.RatesFetcher, analytics *utils.PosthogClientWrapper) {
	h := &exchangeRateFunctionHandler{rateProvider: rateProvider, analytics: analytics}

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch} {
		r.Handle(method, exchangeRateFunctionPath, h.fetchExchangeRates)
	}
	r.OPTIONS(exchangeRateFunctionPath, h.preflight)
}

func setFunctionCORSHeaders(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", strings.Join(middleware.FunctionAllowedHeaders, ", "))
}

// preflight godoc
// @Summary Exchange-rate proxy preflight
// @Description Answers CORS preflight requests without contacting the upstream provider.
// @Tags functions
// @Success 200 "Empty body with CORS headers"
// @Router /functions/v1/exchange-rates [options]
func (h *exchangeRateFunctionHandler) preflight(c *gin.Context) {
	setFunctionCORSHeaders(c)
	c.Status(http.StatusOK)
}

// fetchExchangeRates godoc
// @Summary Latest exchange rates
// @Description Fetches the latest rates for a base currency, restricted to the supported currencies.
// @Tags functions
// @Accept  json
// @Produce  json
// @Param   request body dto.ExchangeRatesRequest false "Base currency (defaults to the configured currency)"
// @Success 200 {object} dto.ExchangeRatesResponse
// @Failure 500 {object} dto.ErrorResponse "Rates could not be retrieved"
// @Router /functions/v1/exchange-rates [post]
func (h *exchangeRateFunctionHandler) fetchExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	setFunctionCORSHeaders(c)

	var req dto.ExchangeRatesRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		logger.Warn("Failed to bind exchange-rate request", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: ratesUnavailableMessage})
		return
	}

	table, err := h.rateProvider.FetchRates(c.Request.Context(), req.Base)
	if err != nil {
		logger.Error("Exchange-rate proxy failed", slog.String("base", req.Base), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: ratesUnavailableMessage})
		return
	}

	middleware.PosthogEvent(c, h.analytics, utils.EventRatesProxyFetched, map[string]any{"base": table.Base})
	c.JSON(http.StatusOK, dto.ToExchangeRatesResponse(table))
}

// ratesHandler exposes the owner's converter cache.
type ratesHandler struct {
	converter       portssvc.CurrencyConverterSvc
	currencyService portssvc.CurrencyCatalogSvc
}

// registerRatesRoutes registers the converter routes.
func registerRatesRoutes(rg *gin.RouterGroup, converter portssvc.CurrencyConverterSvc, currencyService portssvc.CurrencyCatalogSvc) {
	h := &ratesHandler{converter: converter, currencyService: currencyService}

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getRatesState)
		rates.POST("/refresh", h.refreshRates)
	}
	rg.GET("/convert", h.convert)
}

// getRatesState godoc
// @Summary Converter cache state
// @Description Returns the cached rate table, whether a refresh is in flight, and the last refresh error.
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RatesStateResponse
// @Security BearerAuth
// @Router /api/v1/rates [get]
func (h *ratesHandler) getRatesState(c *gin.Context) {
	state := h.converter.State()
	c.JSON(http.StatusOK, dto.RatesStateResponse{
		Table:     state.Table,
		Loading:   state.Loading,
		LastError: state.LastError,
	})
}

// refreshRates godoc
// @Summary Refresh the converter cache
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   request body dto.RefreshRatesRequest false "Base currency"
// @Success 200 {object} dto.RatesStateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 502 {object} map[string]string "Upstream provider unavailable"
// @Security BearerAuth
// @Router /api/v1/rates/refresh [post]
func (h *ratesHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RefreshRatesRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		logger.Warn("Failed to bind JSON for RefreshRates", slog.String("error", err.Error()))
		respondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if _, err := h.converter.FetchRates(c.Request.Context(), req.Base); err != nil {
		respondError(c, http.StatusBadGateway, h.converter.State().LastError)
		return
	}

	state := h.converter.State()
	logger.Info("Converter rates refreshed", slog.String("base", state.Table.Base))
	c.JSON(http.StatusOK, dto.RatesStateResponse{Table: state.Table, Loading: state.Loading})
}

// convert godoc
// @Summary Convert an amount
// @Description Converts an amount between two currencies with the cached rates, rounded to 2 decimals.
// @Tags rates
// @Produce  json
// @Param   amount query string true "Amount"
// @Param   from query string true "Source currency" MinLength(3) MaxLength(3)
// @Param   to query string true "Target currency" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "No rate available for this pair"
// @Security BearerAuth
// @Router /api/v1/convert [get]
func (h *ratesHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.ConvertQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid query: "+err.Error())
		return
	}
	amount, err := decimal.NewFromString(q.Amount)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid amount")
		return
	}

	from, to := strings.ToUpper(q.From), strings.ToUpper(q.To)
	result, ok := h.converter.Convert(amount, from, to)
	if !ok {
		logger.Info("Conversion unavailable", slog.String("from", from), slog.String("to", to))
		respondError(c, http.StatusUnprocessableEntity, "No exchange rate available for "+from+" to "+to)
		return
	}

	resp := dto.ConvertResponse{Amount: amount, From: from, To: to, Result: result}
	if formatted, err := h.currencyService.FormatAmount(result, to); err == nil {
		resp.Formatted = formatted
	}
	c.JSON(http.StatusOK, resp)
}
