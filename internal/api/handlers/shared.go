package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/validation"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// parseJSON decodes the request body into T. Unknown fields are ignored and
// a body holding more than one JSON value is rejected.
func parseJSON[T any](r *http.Request) (T, error) {
	var v T

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return v, errors.New("request body is empty")
		}
		return v, err
	}
	if dec.More() {
		return v, fmt.Errorf("request body must contain a single JSON object")
	}

	return v, nil
}

// respondBodyError reports a body parseJSON could not decode. A field holding
// the wrong JSON type becomes a 400 field error like any other validation
// failure; everything else is an invalid request body.
func respondBodyError(w http.ResponseWriter, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		response.RespondValidationError(w, &validation.Error{
			Fields: map[string]string{typeErr.Field: typeErr.Field + " " + typeMismatchMessage(typeErr.Type)},
		})
		return
	}
	response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
}

func typeMismatchMessage(t reflect.Type) string {
	switch {
	case t == nil:
		return "has an invalid type"
	case t == reflect.TypeFor[request.Amount]():
		return "must be a number"
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "must be an integer"
	case reflect.String:
		return "must be a string"
	default:
		return "has an invalid type"
	}
}

// rateErrorDetail maps an exchange rate failure to a client-safe category.
// The underlying error may carry provider responses and is only logged.
func rateErrorDetail(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrExchangeRateNotConfigured):
		return "exchange rate provider not configured"
	case errors.Is(err, apperrors.ErrExchangeRateUpstream):
		return "exchange rate provider unavailable"
	default:
		return ""
	}
}

// detailOrNil keeps an empty detail out of the JSON response.
func detailOrNil(detail string) any {
	if detail == "" {
		return nil
	}
	return detail
}
