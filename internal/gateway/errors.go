package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrRequestFailed indicates a network or service error, or a response
	// the schema validation rejected.
	ErrRequestFailed = errors.New("request failed")

	// ErrEmptyResult indicates the service answered but returned nothing
	// usable for the operation.
	ErrEmptyResult = errors.New("empty result")
)

// IsGenerationError reports whether err belongs to the gateway error
// taxonomy. Callers treat both kinds as "operation failed".
func IsGenerationError(err error) bool {
	return errors.Is(err, ErrRequestFailed) || errors.Is(err, ErrEmptyResult)
}

func requestFailed(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrRequestFailed, err)
}

func emptyResult(op string) error {
	return fmt.Errorf("%s: %w", op, ErrEmptyResult)
}
