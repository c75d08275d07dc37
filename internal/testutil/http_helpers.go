package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// NewRequestWithURLParams builds a request whose chi route context already
// holds the given path parameters, so a handler can be called directly
// without going through the router.
//
// Example:
//
//	req := testutil.NewRequestWithURLParams(
//	    http.MethodGet,
//	    "/api/goals/7",
//	    map[string]string{"id": "7"},
//	)
//	handler.Goal(w, req)
func NewRequestWithURLParams(method, target string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if len(params) == 0 {
		return req
	}

	routeCtx := chi.NewRouteContext()
	for name, value := range params {
		routeCtx.URLParams.Add(name, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

// NewRequestWithQueryParams builds a request with the given query string
// values, encoded and sorted by key.
//
// Example:
//
//	req := testutil.NewRequestWithQueryParams(
//	    http.MethodGet,
//	    "/api/convert",
//	    map[string]string{"amount": "100", "from": "USD", "to": "INR"},
//	)
//	handler.Convert(w, req)
func NewRequestWithQueryParams(method, target string, query map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if len(query) == 0 {
		return req
	}

	values := url.Values{}
	for name, value := range query {
		values.Set(name, value)
	}
	req.URL.RawQuery = values.Encode()
	return req
}
