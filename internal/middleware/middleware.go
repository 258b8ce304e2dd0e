// Package middleware holds the global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request correlation, request logging, tracing, CORS and panic recovery,
// and translate every returned error into the API failure envelope.
package middleware
