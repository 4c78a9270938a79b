// backend-go/internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the four failure classes the API distinguishes.
// Handlers map ErrValidation and ErrNotFound to 400, everything else
// to 500. Nothing is retried.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("resource not found")
	ErrUpstream      = errors.New("upstream error")
)

// MissingConfig reports a required external identifier that was never
// configured, e.g. the spreadsheet ID.
func MissingConfig(name string) error {
	return fmt.Errorf("%w: missing required configuration %s", ErrConfiguration, name)
}

// MissingField reports a required request field that was absent or empty.
func MissingField(name string) error {
	return fmt.Errorf("missing %s: %w", name, ErrValidation)
}

// Invalid reports any other request payload problem that should map
// to 400.
func Invalid(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrValidation)
}

// NotFound reports a business key with no matching sheet row.
func NotFound(kind, key string) error {
	return fmt.Errorf("%s not found: %s: %w", kind, key, ErrNotFound)
}

// Upstream wraps a failed call to the backing store.
func Upstream(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, ErrUpstream)
}
