package signer

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultExpiry is the token lifetime used when the caller does not
	// request one.
	DefaultExpiry = 12 * time.Hour

	// MaxExpiry is the longest lifetime the Bedrock API accepts for a
	// bearer token.
	MaxExpiry = 12 * time.Hour
)

// ErrInvalidExpiry is returned when a requested expiry is zero, negative, or
// longer than MaxExpiry.
var ErrInvalidExpiry = errors.New("expiry must be greater than 0 and at most 12h")

// ResolveExpiry validates a requested token lifetime. A nil request means the
// caller wants the default. An explicit zero or negative duration is
// rejected, not defaulted, and so is anything above MaxExpiry; in-range
// values are returned unchanged.
func ResolveExpiry(requested *time.Duration) (time.Duration, error) {
	if requested == nil {
		return DefaultExpiry, nil
	}
	if *requested <= 0 || *requested > MaxExpiry {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidExpiry, *requested)
	}
	return *requested, nil
}
