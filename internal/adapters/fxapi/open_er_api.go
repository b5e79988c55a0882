package fxapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/invoicing_app/internal/apperrors"
	portssvc "github.com/SscSPs/invoicing_app/internal/core/ports/services"
	"resty.dev/v3"
)

// DefaultBaseURL is the public open access endpoint of ExchangeRate-API.
const DefaultBaseURL = "https://open.er-api.com"

type openERAPI struct {
	httpClient *resty.Client
}

// Options configures the open.er-api client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
}

// New creates a new instance of the open.er-api client.
func New(opts Options) *openERAPI {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	httpClient := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json")

	if opts.RetryCount > 0 {
		httpClient.
			SetRetryCount(opts.RetryCount).
			SetRetryWaitTime(200 * time.Millisecond).
			SetRetryMaxWaitTime(2 * time.Second)
	}

	return &openERAPI{
		httpClient: httpClient,
	}
}

var _ portssvc.FXRatesClient = (*openERAPI)(nil)

// LatestRates calls GET /v6/latest/{base}.
func (c *openERAPI) LatestRates(ctx context.Context, base string) (*portssvc.UpstreamRates, error) {
	var result latestRatesResponse

	response, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("base", base).
		SetResult(&result).
		Get("/v6/latest/{base}")
	if err != nil {
		return nil, fmt.Errorf("%w: send latest rates request: %v", apperrors.ErrFetch, err)
	}
	if response.StatusCode() < http.StatusOK || response.StatusCode() >= http.StatusMultipleChoices {
		return nil, apperrors.NewFetchError(response.StatusCode(),
			fmt.Sprintf("could not get latest rates(statusCode: %d)", response.StatusCode()))
	}
	if result.Result == "error" {
		return nil, apperrors.NewFetchError(response.StatusCode(),
			fmt.Sprintf("provider rejected base %s: %s", base, result.ErrorType))
	}

	return &portssvc.UpstreamRates{
		Rates:             result.Rates,
		TimeLastUpdateUTC: result.TimeLastUpdateUTC,
	}, nil
}
