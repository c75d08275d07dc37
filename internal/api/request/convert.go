package request

import "net/url"

// ConvertRequest holds the query parameters of GET /api/convert.
type ConvertRequest struct {
	Amount string
	From   string
	To     string
}

// ParseConvertRequest extracts the conversion parameters from a query string.
// Values are returned as sent; validation.ValidateConvert checks them.
func ParseConvertRequest(query url.Values) ConvertRequest {
	return ConvertRequest{
		Amount: query.Get("amount"),
		From:   query.Get("from"),
		To:     query.Get("to"),
	}
}
