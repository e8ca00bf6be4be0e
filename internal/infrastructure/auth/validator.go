package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"smart-search-agent/internal/infrastructure/config"
	"smart-search-agent/internal/interfaces/httpserver/responses"
	"smart-search-agent/utils/platformerrors"
)

// TokenContextKey is the gin context key holding the validated *jwt.Token.
const TokenContextKey = "auth_token"

var errKeysNotLoaded = errors.New("signing keys not loaded yet")

// Validator checks bearer tokens on the HTTP transport.
type Validator struct {
	keyfunc atomic.Pointer[jwt.Keyfunc]
	issuer  string
	account string
	logger  zerolog.Logger
}

// NewValidator returns nil when auth is disabled. JWKS keys are fetched in
// the background; until then requests are rejected and Ready reports false.
func NewValidator(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Validator, error) {
	if !cfg.AuthEnabled {
		return nil, nil
	}

	v := newValidator(cfg.AuthIssuer, cfg.Account, logger)
	go v.loadJWKS(ctx, cfg.AuthJWKSURL)
	return v, nil
}

// NewStaticValidator builds a validator around an already known key function
// instead of a JWKS endpoint. Tests use it to sign tokens with a local secret.
func NewStaticValidator(issuer, account string, kf jwt.Keyfunc, logger zerolog.Logger) *Validator {
	v := newValidator(issuer, account, logger)
	v.keyfunc.Store(&kf)
	return v
}

func newValidator(issuer, account string, logger zerolog.Logger) *Validator {
	return &Validator{
		issuer:  issuer,
		account: account,
		logger:  logger.With().Str("component", "auth").Logger(),
	}
}

func (v *Validator) loadJWKS(ctx context.Context, jwksURL string) {
	backoff := time.Second
	for {
		jwks, err := keyfunc.Get(jwksURL, keyfunc.Options{
			Ctx:               ctx,
			RefreshInterval:   time.Hour,
			RefreshRateLimit:  5 * time.Minute,
			RefreshTimeout:    10 * time.Second,
			RefreshUnknownKID: true,
			RefreshErrorHandler: func(err error) {
				v.logger.Warn().Err(err).Msg("failed to refresh JWKS")
			},
		})
		if err == nil {
			kf := jwt.Keyfunc(jwks.Keyfunc)
			v.keyfunc.Store(&kf)
			v.logger.Info().Str("jwks_url", jwksURL).Msg("JWKS loaded")
			return
		}

		v.logger.Warn().Err(err).Str("jwks_url", jwksURL).Dur("retry_in", backoff).Msg("failed to load JWKS")
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, time.Minute)
	}
}

// Ready reports whether signing keys are available.
func (v *Validator) Ready() bool {
	return v.keyfunc.Load() != nil
}

// Validate parses and verifies a raw bearer token.
func (v *Validator) Validate(raw string) (*jwt.Token, error) {
	kf := v.keyfunc.Load()
	if kf == nil {
		return nil, errKeysNotLoaded
	}

	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.account != "" {
		opts = append(opts, jwt.WithAudience(v.account))
	}
	return jwt.Parse(raw, *kf, opts...)
}

// Middleware rejects requests without a valid bearer token. Health and
// metrics endpoints are exempt.
func (v *Validator) Middleware() gin.HandlerFunc {
	return func(reqCtx *gin.Context) {
		switch reqCtx.Request.URL.Path {
		case "/healthz", "/readyz", "/health/auth", "/metrics":
			reqCtx.Next()
			return
		}

		header := reqCtx.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "missing bearer token", "auth-missing-token")
			return
		}

		token, err := v.Validate(strings.TrimSpace(raw))
		if err != nil {
			if errors.Is(err, errKeysNotLoaded) {
				reqCtx.AbortWithStatusJSON(http.StatusServiceUnavailable, responses.ErrorResponse{
					Code:  "auth-not-ready",
					Error: "authentication is initializing",
				})
				return
			}
			v.logger.Debug().Err(err).Msg("rejected bearer token")
			responses.HandleNewError(reqCtx, platformerrors.ErrorTypeUnauthorized, "invalid bearer token", "auth-invalid-token")
			return
		}

		reqCtx.Set(TokenContextKey, token)
		reqCtx.Next()
	}
}
