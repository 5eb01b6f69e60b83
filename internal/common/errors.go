// Package common defines shared constants, helpers and sentinel errors used
// across the Crammer client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Wire-level errors.
	ErrInvalidResponse = errors.New("invalid response")

	// Input errors.
	ErrEmptyInput = errors.New("empty input")
)
