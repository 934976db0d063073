// Package bedrocktoken generates short-lived bearer tokens for the Amazon
// Bedrock API. A token is a SigV4 query-string presigned CallWithBearerToken
// request, base64-encoded behind the bedrock-api-key- prefix, and lets a
// client authenticate without sending long-term credentials on every call.
//
// GenerateToken and GenerateTokenWithExpiry sign with credentials the caller
// has already resolved. Generator layers the usual AWS discovery chains
// (environment, shared profile, instance role) and optional STS role
// assumption on top, resolving defaults once at construction:
//
//	gen, err := bedrocktoken.New(ctx, bedrocktoken.Config{Region: "us-west-2"})
//	if err != nil {
//		return err
//	}
//	token, err := gen.GetToken(ctx)
//
// Tokens are valid for at most 12 hours, are never stored by this package,
// and cannot be refreshed or revoked; expiry is enforced by the service that
// verifies the embedded signature. Callers must treat the token string as
// opaque.
package bedrocktoken
