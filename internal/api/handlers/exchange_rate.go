package handlers

import (
	"net/http"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/currency"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/service"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/validation"
)

// ExchangeRateHandler handles exchange rate and conversion endpoints.
type ExchangeRateHandler struct {
	exchangeRateService *service.ExchangeRateService
}

// NewExchangeRateHandler creates a new ExchangeRateHandler with the provided service dependency.
func NewExchangeRateHandler(exchangeRateService *service.ExchangeRateService) *ExchangeRateHandler {
	return &ExchangeRateHandler{
		exchangeRateService: exchangeRateService,
	}
}

// ExchangeRate handles GET requests for the current USD→INR rate.
//
// Endpoint: GET /api/exchange-rate
// Response: 200 OK with ExchangeRateResponse
// Error: 500 Internal Server Error if the provider is not configured or fails
func (h *ExchangeRateHandler) ExchangeRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.exchangeRateService.GetExchangeRate(r.Context())
	if err != nil {
		response.RespondInternalError(w, r, http.StatusInternalServerError,
			apperrors.ErrFailedToRetrieveExchangeRate.Error(), detailOrNil(rateErrorDetail(err)), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, newExchangeRateResponse(rate))
}

// Convert handles GET requests to convert an amount between INR and USD.
//
// Endpoint: GET /api/convert?amount=100&from=USD&to=INR
// Response: 200 OK with ConvertResponse
// Error: 400 Bad Request if a parameter is invalid (details: field map)
// Error: 500 Internal Server Error if the rate cannot be fetched
func (h *ExchangeRateHandler) Convert(w http.ResponseWriter, r *http.Request) {
	amount, from, to, err := validation.ValidateConvert(request.ParseConvertRequest(r.URL.Query()))
	if err != nil {
		response.RespondValidationError(w, err)
		return
	}

	conversion, err := h.exchangeRateService.Convert(r.Context(), amount, from, to)
	if err != nil {
		response.RespondInternalError(w, r, http.StatusInternalServerError,
			apperrors.ErrFailedToConvert.Error(), detailOrNil(rateErrorDetail(err)), err)
		return
	}

	response.RespondJSON(w, http.StatusOK, ConvertResponse{
		Amount:    currency.FixedString(conversion.Amount),
		From:      conversion.From.String(),
		To:        conversion.To.String(),
		Converted: currency.FixedString(conversion.Converted),
		Rate:      newExchangeRateResponse(conversion.Rate).Rate,
		Display:   currency.Format(conversion.Converted, conversion.To),
	})
}
