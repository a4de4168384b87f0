package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/platform/logger"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/store"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/task"
)

// PostgresTaskStore implements the task.TaskStore interface using PostgreSQL
type PostgresTaskStore struct {
	db store.DBTX
}

// NewPostgresTaskStore creates a new PostgresTaskStore
func NewPostgresTaskStore(db store.DBTX) *PostgresTaskStore {
	return &PostgresTaskStore{
		db: db,
	}
}

// Ensure PostgresTaskStore implements task.TaskStore interface
var _ task.TaskStore = (*PostgresTaskStore)(nil)

// SaveTask persists a task to the database
func (s *PostgresTaskStore) SaveTask(ctx context.Context, t task.Task) error {
	log := logger.FromContext(ctx)

	query := `
		INSERT INTO tasks (id, type, payload, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, query,
		t.ID(),
		t.Type(),
		t.Payload(),
		t.Status(),
		now,
		now,
	)
	if err != nil {
		log.Error("failed to save task",
			"task_id", t.ID(),
			"task_type", t.Type(),
			"error", err)
		return fmt.Errorf("failed to save task to database: %w", err)
	}

	return nil
}

// UpdateTaskStatus updates the status of a task in the database
func (s *PostgresTaskStore) UpdateTaskStatus(
	ctx context.Context,
	taskID uuid.UUID,
	status task.TaskStatus,
	errorMsg string,
) error {
	log := logger.FromContext(ctx)

	query := `
		UPDATE tasks
		SET status = $1, error_message = $2, updated_at = $3
		WHERE id = $4
	`

	result, err := s.db.ExecContext(ctx, query,
		status,
		errorMsg,
		time.Now().UTC(),
		taskID,
	)
	if err != nil {
		log.Error("failed to update task status",
			"task_id", taskID,
			"status", status,
			"error", err)
		return fmt.Errorf("failed to update task status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		log.Warn("no task found with ID to update status",
			"task_id", taskID)
		return nil // Task not found, treat as no-op
	}

	return nil
}

// GetPendingTasks retrieves all tasks with "pending" status
func (s *PostgresTaskStore) GetPendingTasks(ctx context.Context) ([]task.Task, error) {
	return s.getTasksByStatus(ctx, task.TaskStatusPending, 0)
}

// GetProcessingTasks retrieves tasks with "processing" status
func (s *PostgresTaskStore) GetProcessingTasks(
	ctx context.Context,
	olderThan time.Duration,
) ([]task.Task, error) {
	return s.getTasksByStatus(ctx, task.TaskStatusProcessing, olderThan)
}

// WithTx implements task.TaskStore.WithTx
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) task.TaskStore {
	return &PostgresTaskStore{db: tx}
}

// getTasksByStatus is a helper method to get tasks by status with optional age filter
func (s *PostgresTaskStore) getTasksByStatus(
	ctx context.Context,
	status task.TaskStatus,
	olderThan time.Duration,
) ([]task.Task, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, type, payload, status, error_message, created_at, updated_at
		FROM tasks
		WHERE status = $1
		ORDER BY created_at ASC
	`
	args := []any{status}

	if olderThan > 0 {
		query = `
			SELECT id, type, payload, status, error_message, created_at, updated_at
			FROM tasks
			WHERE status = $1 AND updated_at < $2
			ORDER BY created_at ASC
		`
		args = append(args, time.Now().UTC().Add(-olderThan))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query tasks by status",
			"status", status,
			"error", err)
		return nil, fmt.Errorf("failed to query tasks by status: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []task.Task
	for rows.Next() {
		var (
			dbTask       databaseTask
			errorMessage sql.NullString
		)

		err := rows.Scan(
			&dbTask.id,
			&dbTask.taskType,
			&dbTask.payload,
			&dbTask.status,
			&errorMessage,
			&dbTask.createdAt,
			&dbTask.updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		dbTask.errorMessage = errorMessage.String

		tasks = append(tasks, &dbTask)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}

// databaseTask implements the task.Task interface for tasks loaded from the
// database during recovery. The runner requeues these so their status can be
// tracked; the concrete execution function is attached by the task factory
// that recognizes the task type.
type databaseTask struct {
	id           uuid.UUID
	taskType     string
	payload      []byte
	status       task.TaskStatus
	errorMessage string
	createdAt    time.Time
	updatedAt    time.Time
	executeFn    func(ctx context.Context) error
}

// ID returns the task's unique identifier
func (t *databaseTask) ID() uuid.UUID {
	return t.id
}

// Type returns the task type identifier
func (t *databaseTask) Type() string {
	return t.taskType
}

// Payload returns the task data as a byte slice
func (t *databaseTask) Payload() []byte {
	return t.payload
}

// Status returns the current task status
func (t *databaseTask) Status() task.TaskStatus {
	return t.status
}

// Execute runs the task logic if an execution function has been attached
func (t *databaseTask) Execute(ctx context.Context) error {
	if t.executeFn != nil {
		return t.executeFn(ctx)
	}
	return errors.New("no execution function defined for recovered task")
}
