package bedrocktoken

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/majorcontext/bedrock-token-generator/internal/arn"
	"github.com/majorcontext/bedrock-token-generator/internal/log"
	"github.com/majorcontext/bedrock-token-generator/internal/signer"
)

// defaultSessionName names assume-role sessions opened by the generator.
const defaultSessionName = "bedrock-token-generator"

// STSAssumeRoler interface for the STS AssumeRole operation (enables testing).
type STSAssumeRoler interface {
	AssumeRole(ctx context.Context, params *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
}

// Config holds optional generator settings. Zero values mean "use the AWS
// defaults": an empty Region is resolved from the default region chain, a nil
// CredentialsProvider from the default credential chain, and a zero Expiry
// becomes DefaultExpiry. All defaulting happens once, in New.
type Config struct {
	// Region targets a Bedrock deployment, e.g. "us-west-2".
	Region string

	// CredentialsProvider supplies signing credentials. When nil the SDK
	// default chain is used (environment, shared profile, instance role).
	CredentialsProvider aws.CredentialsProvider

	// Expiry is the lifetime of generated tokens, at most 12 hours.
	Expiry time.Duration

	// RoleARN, when set, makes the generator assume this IAM role via STS
	// and sign with the session credentials.
	RoleARN string

	// ExternalID is passed on AssumeRole when RoleARN is set.
	ExternalID string

	// SessionName overrides the AssumeRole session name.
	SessionName string

	// STSClient overrides the STS client used for role assumption
	// (for testing). Ignored unless RoleARN is set.
	STSClient STSAssumeRoler
}

// Generator issues bearer tokens from a resolved configuration. It is safe
// for concurrent use; every GetToken call is independent.
type Generator struct {
	region   string
	provider aws.CredentialsProvider
	expiry   time.Duration
}

// New resolves cfg against the AWS default chains and returns a Generator.
// It fails with ErrInvalidExpiry for an out-of-range expiry, ErrMissingRegion
// when no region is configured and none can be discovered, and
// ErrMissingCredentials when no credential source exists. Credentials
// themselves are not retrieved until GetToken.
func New(ctx context.Context, cfg Config) (*Generator, error) {
	var requested *time.Duration
	if cfg.Expiry != 0 {
		requested = &cfg.Expiry
	}
	expiry, err := signer.ResolveExpiry(requested)
	if err != nil {
		return nil, err
	}

	region := cfg.Region
	provider := cfg.CredentialsProvider

	// One default-chain load covers every unset field.
	var awsCfg aws.Config
	if region == "" || provider == nil || (cfg.RoleARN != "" && cfg.STSClient == nil) {
		var opts []func(*config.LoadOptions) error
		if region != "" {
			opts = append(opts, config.WithRegion(region))
		}
		awsCfg, err = config.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("loading AWS config: %w", err)
		}
	}

	if region == "" {
		region = awsCfg.Region
		log.Debug("resolved region from default chain", "region", region)
	}
	if region == "" {
		return nil, ErrMissingRegion
	}

	if provider == nil {
		provider = awsCfg.Credentials
	}
	if provider == nil {
		return nil, ErrMissingCredentials
	}

	if cfg.RoleARN != "" {
		provider, err = assumeRoleProvider(cfg, awsCfg, provider, region)
		if err != nil {
			return nil, err
		}
	}

	return &Generator{
		region:   region,
		provider: provider,
		expiry:   expiry,
	}, nil
}

// assumeRoleProvider wraps base credentials in an STS assume-role provider
// for cfg.RoleARN.
func assumeRoleProvider(cfg Config, awsCfg aws.Config, base aws.CredentialsProvider, region string) (aws.CredentialsProvider, error) {
	if _, err := arn.ParseRole(cfg.RoleARN); err != nil {
		return nil, fmt.Errorf("invalid role ARN: %w", err)
	}

	client := cfg.STSClient
	if client == nil {
		stsCfg := awsCfg
		stsCfg.Region = region
		stsCfg.Credentials = base
		client = sts.NewFromConfig(stsCfg)
	}

	sessionName := cfg.SessionName
	if sessionName == "" {
		sessionName = defaultSessionName
	}

	assume := stscreds.NewAssumeRoleProvider(client, cfg.RoleARN, func(o *stscreds.AssumeRoleOptions) {
		o.RoleSessionName = sessionName
		if cfg.ExternalID != "" {
			o.ExternalID = aws.String(cfg.ExternalID)
		}
	})

	log.Debug("signing with assumed role", "role_arn", cfg.RoleARN, "session_name", sessionName)
	return aws.NewCredentialsCache(assume), nil
}

// Region returns the resolved region.
func (g *Generator) Region() string {
	return g.region
}

// Expiry returns the resolved token lifetime.
func (g *Generator) Expiry() time.Duration {
	return g.expiry
}

// GetToken retrieves credentials from the configured provider and returns a
// bearer token. Retrieval may perform I/O (shared profile, IMDS, STS) and
// honors ctx; the signing step itself is a local computation.
func (g *Generator) GetToken(ctx context.Context) (string, error) {
	creds, err := g.provider.Retrieve(ctx)
	if err != nil {
		return "", fmt.Errorf("resolving credentials: %w", err)
	}
	return signer.Token(ctx, creds, g.region, g.expiry, time.Now())
}
