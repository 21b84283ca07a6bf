package auth

import (
	"github.com/task-forge/task_forge/internal/apperr"
	"github.com/task-forge/task_forge/internal/identity"
)

// Service issues tokens for authenticated users. It keeps no state between
// calls; everything it needs travels in the token claims.
type Service struct {
	issuer *Issuer
}

// NewService creates the token-issuing service.
func NewService(issuer *Issuer) *Service {
	return &Service{issuer: issuer}
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Login issues an access/refresh token pair for an already-authenticated
// user. It must only be called after identity.Service.Authenticate reported a
// match; no token is ever minted for a failed authentication.
func (s *Service) Login(user identity.User) (TokenPair, error) {
	claims := map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	}

	access, err := s.issuer.IssueAccessToken(claims)
	if err != nil {
		return TokenPair{}, apperr.Internal("could not issue access token", err)
	}
	refresh, err := s.issuer.IssueRefreshToken(claims)
	if err != nil {
		return TokenPair{}, apperr.Internal("could not issue refresh token", err)
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh verifies a refresh token and mints a new access token for the same
// subject. There is no server-side session state, so a refresh token stays
// usable until its expiry.
func (s *Service) Refresh(refreshToken string) (string, error) {
	claims, err := s.issuer.Decode(refreshToken)
	if err != nil {
		return "", apperr.Unauthorized("invalid or expired refresh token")
	}

	userID, _ := claims["user_id"].(string)
	email, _ := claims["email"].(string)
	if userID == "" {
		return "", apperr.Unauthorized("invalid or expired refresh token")
	}

	access, err := s.issuer.IssueAccessToken(map[string]any{
		"user_id": userID,
		"email":   email,
	})
	if err != nil {
		return "", apperr.Internal("could not issue access token", err)
	}
	return access, nil
}
