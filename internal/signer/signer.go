// Package signer builds Amazon Bedrock bearer tokens from SigV4 presigned
// URLs. The token is a presigned CallWithBearerToken request with the scheme
// stripped, a version marker appended, and the result base64-encoded behind
// a fixed prefix.
package signer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
)

const (
	host         = "bedrock.amazonaws.com"
	endpoint     = "https://" + host + "/"
	serviceName  = "bedrock"
	actionParam  = "Action"
	actionValue  = "CallWithBearerToken"
	expiresParam = "X-Amz-Expires"
	schemePrefix = "https://"
	tokenPrefix  = "bedrock-api-key-"
	tokenVersion = "&Version=1"

	// SHA-256 of an empty payload; the presigned request carries no body.
	emptyPayloadHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
)

var (
	// ErrMissingCredentials is returned when the access key id or secret
	// key is empty at signing time.
	ErrMissingCredentials = errors.New("credentials must not be empty")
	// ErrMissingRegion is returned when no region is supplied.
	ErrMissingRegion = errors.New("region must not be empty")
)

// Token signs a CallWithBearerToken request for the given credentials and
// region and returns the encoded bearer token. The expiry must already be
// resolved via ResolveExpiry; now is the signing timestamp (taken as UTC).
// Two calls with identical inputs and the same timestamp produce identical
// tokens.
func Token(ctx context.Context, creds aws.Credentials, region string, expiry time.Duration, now time.Time) (string, error) {
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return "", ErrMissingCredentials
	}
	if region == "" {
		return "", ErrMissingRegion
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}

	// The expiry rides along as a query parameter so the signature covers
	// it; the verifier enforces the window, not this library.
	q := req.URL.Query()
	q.Set(actionParam, actionValue)
	q.Set(expiresParam, strconv.FormatInt(int64(expiry/time.Second), 10))
	req.URL.RawQuery = q.Encode()

	signedURI, _, err := v4.NewSigner().PresignHTTP(ctx, creds, req, emptyPayloadHash, serviceName, region, now.UTC())
	if err != nil {
		return "", fmt.Errorf("signing request: %w", err)
	}

	raw := strings.TrimPrefix(signedURI, schemePrefix) + tokenVersion
	return tokenPrefix + base64.StdEncoding.EncodeToString([]byte(raw)), nil
}
