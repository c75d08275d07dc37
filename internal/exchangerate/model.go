package exchangerate

import "github.com/shopspring/decimal"

// Response represents the raw JSON response of the exchangerate-api.com v6
// "latest" endpoint. Rates decode straight into decimals so no float64
// rounding happens between the wire and the converter.
//
// On failure the provider answers with Result "error" and ErrorType set,
// for example "invalid-key" or "quota-reached".
type Response struct {
	Result             string                     `json:"result"`
	ErrorType          string                     `json:"error-type,omitempty"`
	TimeLastUpdateUnix int64                      `json:"time_last_update_unix"`
	TimeLastUpdateUTC  string                     `json:"time_last_update_utc"`
	BaseCode           string                     `json:"base_code"`
	ConversionRates    map[string]decimal.Decimal `json:"conversion_rates"`
}
