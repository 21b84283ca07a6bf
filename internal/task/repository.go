package task

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists tasks.
type Repository interface {
	Create(ctx context.Context, task Task) error
	ListByUser(ctx context.Context, userID string) ([]Task, error)
}

// PostgresRepository stores tasks in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a task record.
func (r *PostgresRepository) Create(ctx context.Context, task Task) error {
	taskID, err := uuid.Parse(task.ID)
	if err != nil {
		return err
	}
	userID, err := uuid.Parse(task.UserID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO tasks (id, title, description, completed, user_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`, taskID, task.Title, task.Description, task.Completed, userID, task.CreatedAt.UTC())
	return err
}

// ListByUser fetches all tasks owned by the given user, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Task, error) {
	ownerID, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, `SELECT id, title, description, completed, user_id, created_at
        FROM tasks WHERE user_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var (
			t         Task
			id, owner uuid.UUID
			createdAt time.Time
		)
		if err := rows.Scan(&id, &t.Title, &t.Description, &t.Completed, &owner, &createdAt); err != nil {
			return nil, err
		}
		t.ID = id.String()
		t.UserID = owner.String()
		t.CreatedAt = createdAt.UTC()
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
