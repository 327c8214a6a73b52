// Package client is the client side of the Citylifes marketplace API.
//
// Client describes the calls the CLI makes; GRPCClient implements it over
// the JSON-coded gRPC transport. Every call carries the configured access
// token in metadata and is bounded by the configured request timeout.
//
// # Error Handling
//
// Status codes are mapped to sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrForbidden, ErrNotFound and
// ErrInvalid. The server's message is kept in the wrapped error text.
package client
