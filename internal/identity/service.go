package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/task-forge/task_forge/internal/apperr"
	"github.com/task-forge/task_forge/internal/password"
)

// Service manages the credential lifecycle: registration and authentication.
// It is stateless across requests; every call stands on its own.
type Service struct {
	repo Repository
}

// NewService creates a new identity service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register hashes the password and persists a new user. Callers are expected
// to have validated input shape already; a duplicate email or username is
// still treated here as its own failure case because only the store can
// arbitrate uniqueness. The hash is always derived in-process — a
// caller-supplied hash is never accepted.
func (s *Service) Register(ctx context.Context, reg Registration) (User, error) {
	hash, err := password.Hash(reg.Password)
	if err != nil {
		if errors.Is(err, password.ErrEmptyPassword) {
			return User{}, apperr.Invalid("password cannot be empty")
		}
		return User{}, apperr.Service("unexpected error during registration")
	}

	user := User{
		ID:           uuid.NewString(),
		Username:     reg.Username,
		Email:        reg.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return User{}, apperr.Conflict("username or email already registered")
		}
		return User{}, apperr.Internal("database error during user registration", err)
	}

	return user, nil
}

// Authenticate looks up a user by email and verifies the password. A lookup
// miss and a wrong password both return ok=false with no error, so the
// boundary cannot leak which of the two happened. Only storage failures
// other than not-found are errors.
func (s *Service) Authenticate(ctx context.Context, email, pass string) (User, bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, false, nil
		}
		return User{}, false, apperr.Internal("database error during authentication", err)
	}

	if !password.Verify(pass, user.PasswordHash) {
		return User{}, false, nil
	}

	return user, true, nil
}
