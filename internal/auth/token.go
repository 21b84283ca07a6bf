package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/task-forge/task_forge/internal/config"
)

var (
	// ErrTokenExpired is returned when a token's exp claim is in the past.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for malformed tokens, bad signatures and
	// unexpected signing algorithms.
	ErrTokenInvalid = errors.New("token invalid")
)

// Issuer creates and verifies signed, time-bound tokens. Access and refresh
// tokens share the signing key and algorithm and differ only in lifetime.
type Issuer struct {
	secret     []byte
	method     jwt.SigningMethod
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewIssuer builds an Issuer from configuration. The secret must be
// non-empty, the algorithm one of the HMAC family, and both lifetimes
// strictly positive; anything else is a startup error.
func NewIssuer(cfg config.Config) (*Issuer, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}
	switch cfg.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return nil, fmt.Errorf("unsupported jwt algorithm %q", cfg.JWTAlgorithm)
	}
	if cfg.AccessTokenTTL <= 0 || cfg.RefreshTokenTTL <= 0 {
		return nil, fmt.Errorf("token lifetimes must be strictly positive")
	}

	return &Issuer{
		secret:     []byte(cfg.JWTSecret),
		method:     jwt.GetSigningMethod(cfg.JWTAlgorithm),
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
		now:        time.Now,
	}, nil
}

// WithClock overrides the issuer's time source. Tests use this to cross
// expiry boundaries without sleeping.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

// IssueAccessToken signs a short-lived token carrying the given claims.
func (i *Issuer) IssueAccessToken(claims map[string]any) (string, error) {
	return i.sign(claims, i.accessTTL)
}

// IssueRefreshToken signs a longer-lived token carrying the given claims.
func (i *Issuer) IssueRefreshToken(claims map[string]any) (string, error) {
	return i.sign(claims, i.refreshTTL)
}

func (i *Issuer) sign(claims map[string]any, ttl time.Duration) (string, error) {
	now := i.now().UTC()
	mapped := jwt.MapClaims{}
	for k, v := range claims {
		mapped[k] = v
	}
	mapped["iat"] = now.Unix()
	mapped["exp"] = now.Add(ttl).Unix()

	return jwt.NewWithClaims(i.method, mapped).SignedString(i.secret)
}

// Decode verifies a token's signature and expiry and returns its claims.
// No claim is trusted until the signature checks out.
func (i *Issuer) Decode(token string) (map[string]any, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, i.keyFunc,
		jwt.WithValidMethods([]string{i.method.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func (i *Issuer) keyFunc(*jwt.Token) (any, error) {
	return i.secret, nil
}
