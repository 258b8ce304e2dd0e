// Package errs defines the application's error types.
//
// Every failure that reaches a client is an *HTTPError. It carries the HTTP
// status, a stable machine-readable code and a human-readable message, and it
// is written to the wire as the failure envelope
//
//	{ "success": false, "error": "...", "code": "...", "details": "..." }
//
// The four kinds of failure the API distinguishes map onto constructors:
//
//	validation failure -> NewBadRequestError (400)
//	missing row        -> NewNotFoundError (404)
//	database failure   -> NewStoreError (500)
//	anything else      -> NewInternalServerError (500)
package errs
