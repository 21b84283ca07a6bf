package task

import "time"

// Task is a todo item owned by a user. The domain has no behavior beyond
// this record; it exists so the API has something to protect.
type Task struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	UserID      string
	CreatedAt   time.Time
}
