package bedrocktoken

import (
	"context"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/majorcontext/bedrock-token-generator/internal/log"
	"github.com/majorcontext/bedrock-token-generator/internal/signer"
)

// Expiry bounds for generated tokens.
const (
	DefaultExpiry = signer.DefaultExpiry
	MaxExpiry     = signer.MaxExpiry
)

var (
	// ErrInvalidExpiry is returned when a requested expiry is zero,
	// negative, or longer than MaxExpiry.
	ErrInvalidExpiry = signer.ErrInvalidExpiry
	// ErrMissingCredentials is returned when the access key id or secret
	// key is empty at signing time.
	ErrMissingCredentials = signer.ErrMissingCredentials
	// ErrMissingRegion is returned when no region is supplied or resolved.
	ErrMissingRegion = signer.ErrMissingRegion
)

// GenerateToken returns a bearer token for the given credentials and region
// with the default 12 hour lifetime.
func GenerateToken(ctx context.Context, creds aws.Credentials, region string) (string, error) {
	return signer.Token(ctx, creds, region, DefaultExpiry, time.Now())
}

// GenerateTokenWithExpiry is GenerateToken with an explicit lifetime. The
// lifetime must be in (0, 12h]; out-of-range values are rejected with
// ErrInvalidExpiry, not clamped.
func GenerateTokenWithExpiry(ctx context.Context, creds aws.Credentials, region string, expiry time.Duration) (string, error) {
	resolved, err := signer.ResolveExpiry(&expiry)
	if err != nil {
		return "", err
	}
	return signer.Token(ctx, creds, region, resolved, time.Now())
}

// ResolveExpiry validates a requested token lifetime. A nil request returns
// DefaultExpiry; an in-range duration is returned unchanged; anything else
// fails with ErrInvalidExpiry.
func ResolveExpiry(requested *time.Duration) (time.Duration, error) {
	return signer.ResolveExpiry(requested)
}

// SetLogger routes the library's diagnostic output to l. Only the
// configuration-resolution path logs, and never credential material; output
// is discarded by default. Passing nil turns logging back off.
func SetLogger(l *slog.Logger) {
	log.SetLogger(l)
}
