// Package exchangerate is the gateway to the external USD→INR rate provider
// (exchangerate-api.com v6). Every call performs a fresh request; nothing is
// cached and failed requests are not retried.
package exchangerate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/config"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/currency"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/model"
)

// maxBodyBytes caps how much of a provider response is read.
const maxBodyBytes = 1 << 20

// Client fetches the current USD→INR rate.
type Client interface {
	LatestRate(ctx context.Context) (model.ExchangeRate, error)
}

// APIClient implements Client against exchangerate-api.com.
type APIClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	now        func() time.Time
}

// NewAPIClient creates a client from configuration. A missing API key is
// accepted here and reported by every LatestRate call instead.
func NewAPIClient(cfg config.ExchangeRateConfig) *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		now:        time.Now,
	}
}

// LatestRate fetches the latest rates with USD as base and returns the INR rate.
//
// Returns:
//   - apperrors.ErrExchangeRateNotConfigured if no API key is set (no request is made)
//   - an error wrapping apperrors.ErrExchangeRateUpstream if the request fails, the
//     provider answers with a non-2xx status or result other than "success", or the
//     payload has no positive INR rate
func (c *APIClient) LatestRate(ctx context.Context) (model.ExchangeRate, error) {
	if c.apiKey == "" {
		return model.ExchangeRate{}, apperrors.ErrExchangeRateNotConfigured
	}

	endpoint := fmt.Sprintf("%s/v6/%s/latest/%s", c.baseURL, url.PathEscape(c.apiKey), currency.USD)
	response, err := c.query(ctx, endpoint)
	if err != nil {
		return model.ExchangeRate{}, err
	}

	rate, ok := response.ConversionRates[string(currency.INR)]
	if !ok {
		return model.ExchangeRate{}, fmt.Errorf("%w: INR rate not found in exchange rate data", apperrors.ErrExchangeRateUpstream)
	}
	if !rate.IsPositive() {
		return model.ExchangeRate{}, fmt.Errorf("%w: non-positive INR rate %s", apperrors.ErrExchangeRateUpstream, rate)
	}

	fetchedAt := c.now()
	return model.ExchangeRate{
		Rate:              rate,
		LastUpdated:       fetchedAt.Format("15:04:05"),
		FetchedAt:         fetchedAt.UTC(),
		ProviderUpdatedAt: response.TimeLastUpdateUTC,
	}, nil
}

// query executes the HTTP request and decodes the provider envelope.
// Transport errors are unwrapped from *url.Error so the API key, which is part
// of the URL path, never ends up in error messages or logs.
func (c *APIClient) query(ctx context.Context, endpoint string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Response{}, fmt.Errorf("%w: failed to build request", apperrors.ErrExchangeRateUpstream)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return Response{}, fmt.Errorf("%w: request failed: %w", apperrors.ErrExchangeRateUpstream, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Response{}, fmt.Errorf("%w: failed to read response: %w", apperrors.ErrExchangeRateUpstream, err)
	}

	var response Response
	decodeErr := json.Unmarshal(data, &response)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && response.ErrorType != "" {
			return Response{}, fmt.Errorf("%w: status %d: %s", apperrors.ErrExchangeRateUpstream, resp.StatusCode, response.ErrorType)
		}
		return Response{}, fmt.Errorf("%w: status %d", apperrors.ErrExchangeRateUpstream, resp.StatusCode)
	}
	if decodeErr != nil {
		return Response{}, fmt.Errorf("%w: invalid response body: %w", apperrors.ErrExchangeRateUpstream, decodeErr)
	}

	if response.Result != "success" {
		errorType := response.ErrorType
		if errorType == "" {
			errorType = "Unknown error"
		}
		return Response{}, fmt.Errorf("%w: %s", apperrors.ErrExchangeRateUpstream, errorType)
	}

	return response, nil
}
