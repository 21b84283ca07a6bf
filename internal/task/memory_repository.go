package task

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	tasks map[string]Task
}

// NewMemoryRepository builds an in-memory task store for testing and
// database-less development.
func NewMemoryRepository() Repository {
	return &memoryRepository{tasks: make(map[string]Task)}
}

func (r *memoryRepository) Create(_ context.Context, task Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID] = task
	return nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var tasks []Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].CreatedAt.After(tasks[j].CreatedAt) })
	return tasks, nil
}
