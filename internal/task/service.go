package task

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/task-forge/task_forge/internal/apperr"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 500
)

// Service exposes task operations for a single owner.
type Service struct {
	repo Repository
}

// NewService builds a task service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput captures data required to create a task.
type CreateInput struct {
	Title       string
	Description string
	UserID      string
}

// Create stores a new task for the owning user.
func (s *Service) Create(ctx context.Context, input CreateInput) (Task, error) {
	if input.Title == "" || len(input.Title) > maxTitleLen {
		return Task{}, apperr.Invalid("title is required and must be at most 200 characters")
	}
	if len(input.Description) > maxDescriptionLen {
		return Task{}, apperr.Invalid("description must be at most 500 characters")
	}

	t := Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		UserID:      input.UserID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return Task{}, apperr.Internal("database error while creating task", err)
	}

	return t, nil
}

// ListByUser returns the user's tasks, newest first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Task, error) {
	tasks, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("database error while listing tasks", err)
	}
	return tasks, nil
}
