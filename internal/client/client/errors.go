package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
)

// Fallback messages used when the server does not provide one.
const (
	MsgRequestFailed  = "Request failed"
	MsgNetworkFailure = "Network request failed"
)

// APIError is returned by HTTPClient for every failed call. Status is 0 when
// the request never got a response.
type APIError struct {
	Status  int
	Message string
	Details json.RawMessage
	Err     error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		return e.Message
	}
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Unwrap exposes the transport cause and the sentinel matching the status,
// so errors.Is(err, ErrUnauthorized) and errors.Is(err, ErrUnavailable) work.
func (e *APIError) Unwrap() []error {
	var errs []error
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		errs = append(errs, ErrUnauthorized)
	case 0, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		errs = append(errs, ErrUnavailable)
	}
	return errs
}

// Message returns the user facing text of err: the server message for an
// APIError, fallback otherwise.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
