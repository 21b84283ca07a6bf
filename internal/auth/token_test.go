package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/task-forge/task_forge/internal/config"
)

func issuerConfig() config.Config {
	return config.Config{
		JWTSecret:       "test-secret",
		JWTAlgorithm:    "HS256",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	}
}

func TestNewIssuerValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"empty secret", func(c *config.Config) { c.JWTSecret = "" }},
		{"unsupported algorithm", func(c *config.Config) { c.JWTAlgorithm = "RS256" }},
		{"zero access ttl", func(c *config.Config) { c.AccessTokenTTL = 0 }},
		{"negative refresh ttl", func(c *config.Config) { c.RefreshTokenTTL = -time.Second }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := issuerConfig()
			tc.mutate(&cfg)
			_, err := NewIssuer(cfg)
			require.Error(t, err)
		})
	}
}

func TestIssueAndDecodeRoundTrip(t *testing.T) {
	issuer, err := NewIssuer(issuerConfig())
	require.NoError(t, err)

	token, err := issuer.IssueAccessToken(map[string]any{"user_id": "u-1", "email": "a@x.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Decode(token)
	require.NoError(t, err)
	require.Equal(t, "u-1", claims["user_id"])
	require.Equal(t, "a@x.com", claims["email"])
	require.Contains(t, claims, "exp")
	require.Contains(t, claims, "iat")
}

func TestAccessAndRefreshDifferInExpiry(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer, err := NewIssuer(issuerConfig())
	require.NoError(t, err)
	issuer.WithClock(func() time.Time { return at })

	access, err := issuer.IssueAccessToken(map[string]any{"user_id": "u-1"})
	require.NoError(t, err)
	refresh, err := issuer.IssueRefreshToken(map[string]any{"user_id": "u-1"})
	require.NoError(t, err)
	require.NotEqual(t, access, refresh)

	accessClaims, err := issuer.Decode(access)
	require.NoError(t, err)
	refreshClaims, err := issuer.Decode(refresh)
	require.NoError(t, err)

	require.Equal(t, at.Add(time.Hour).Unix(), int64(accessClaims["exp"].(float64)))
	require.Equal(t, at.Add(24*time.Hour).Unix(), int64(refreshClaims["exp"].(float64)))
}

func TestDecodeExpiredToken(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer, err := NewIssuer(issuerConfig())
	require.NoError(t, err)
	issuer.WithClock(func() time.Time { return at })

	token, err := issuer.IssueAccessToken(map[string]any{"user_id": "u-1"})
	require.NoError(t, err)

	// Still valid just inside the boundary.
	issuer.WithClock(func() time.Time { return at.Add(59 * time.Minute) })
	_, err = issuer.Decode(token)
	require.NoError(t, err)

	issuer.WithClock(func() time.Time { return at.Add(2 * time.Hour) })
	_, err = issuer.Decode(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestDecodeWrongSecret(t *testing.T) {
	issuer, err := NewIssuer(issuerConfig())
	require.NoError(t, err)
	token, err := issuer.IssueAccessToken(map[string]any{"user_id": "u-1"})
	require.NoError(t, err)

	otherCfg := issuerConfig()
	otherCfg.JWTSecret = "different-secret"
	other, err := NewIssuer(otherCfg)
	require.NoError(t, err)

	_, err = other.Decode(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestDecodeTamperedToken(t *testing.T) {
	issuer, err := NewIssuer(issuerConfig())
	require.NoError(t, err)
	token, err := issuer.IssueAccessToken(map[string]any{"user_id": "u-1"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	flip := func(s string) string {
		b := []byte(s)
		if b[0] == 'A' {
			b[0] = 'B'
		} else {
			b[0] = 'A'
		}
		return string(b)
	}

	for i := 1; i < 3; i++ {
		mutated := make([]string, 3)
		copy(mutated, parts)
		mutated[i] = flip(mutated[i])
		_, err := issuer.Decode(strings.Join(mutated, "."))
		require.ErrorIs(t, err, ErrTokenInvalid)
	}

	_, err = issuer.Decode("not-a-token")
	require.ErrorIs(t, err, ErrTokenInvalid)
}
