// Package client is the remote auth gateway of the Crammer+ client.
//
// Client is the transport-agnostic contract used by the screens: Signup,
// Login, GetCurrentUser, Ping. HTTPClient implements it over the REST API,
// decoding the {success, message, data, details} envelope every endpoint
// returns.
//
// # Error Handling
//
// Every failure is an *APIError carrying the HTTP status and the server
// message ("Request failed" when there is none). Transport failures have
// Status 0 and the message "Network request failed". APIError unwraps to
// ErrUnauthorized for 401/403 and to ErrUnavailable when the server could not
// be reached, so callers can use errors.Is.
//
// The gateway never retries and never refreshes tokens.
package client
