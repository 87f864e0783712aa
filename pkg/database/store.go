package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/soypete/taskroster/pkg/roster"
)

// SQLiteStore implements roster.Store using SQLite
type SQLiteStore struct {
	db   *sql.DB
	path string
}

var _ roster.Store = (*SQLiteStore)(nil)

// InsertWorker appends a worker and returns the id SQLite assigned to it.
// The statement commits on its own.
func (s *SQLiteStore) InsertWorker(ctx context.Context, w roster.Worker) (int64, error) {
	if s == nil || s.db == nil {
		return 0, ErrNotOpen
	}

	query := `
		INSERT INTO workers (first_name, last_name, date_of_birth, phone_number)
		VALUES (?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		w.FirstName,
		w.LastName,
		w.DateOfBirth,
		w.PhoneNumber,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert worker: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read worker id: %w", err)
	}
	return id, nil
}

// InsertTask appends a task and returns its id. The worker id is stored as
// given.
func (s *SQLiteStore) InsertTask(ctx context.Context, t roster.Task) (int64, error) {
	if s == nil || s.db == nil {
		return 0, ErrNotOpen
	}

	query := `
		INSERT INTO tasks (name, priority, done, worker_id)
		VALUES (?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		t.Name,
		t.Priority,
		t.Done.String(),
		t.WorkerID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read task id: %w", err)
	}
	return id, nil
}

// ListWorkers lists all workers ordered by id
func (s *SQLiteStore) ListWorkers(ctx context.Context) ([]roster.Worker, error) {
	if s == nil || s.db == nil {
		return nil, ErrNotOpen
	}

	query := `
		SELECT id, first_name, last_name, date_of_birth, phone_number
		FROM workers
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	var workers []roster.Worker
	for rows.Next() {
		var w roster.Worker
		if err := rows.Scan(&w.ID, &w.FirstName, &w.LastName, &w.DateOfBirth, &w.PhoneNumber); err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}

	return workers, rows.Err()
}

// ListTasks lists all tasks ordered by id
func (s *SQLiteStore) ListTasks(ctx context.Context) ([]roster.Task, error) {
	if s == nil || s.db == nil {
		return nil, ErrNotOpen
	}

	query := `
		SELECT id, name, priority, done, worker_id
		FROM tasks
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []roster.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}

	return tasks, rows.Err()
}

// CountWorkers returns the number of rows in the workers table
func (s *SQLiteStore) CountWorkers(ctx context.Context) (int, error) {
	if s == nil || s.db == nil {
		return 0, ErrNotOpen
	}

	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM workers").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count workers: %w", err)
	}
	return n, nil
}

// scanTask scans a task from rows
func scanTask(rows *sql.Rows) (*roster.Task, error) {
	var task roster.Task
	var priority sql.NullInt64
	var done string

	if err := rows.Scan(&task.ID, &task.Name, &priority, &done, &task.WorkerID); err != nil {
		return nil, fmt.Errorf("failed to scan task: %w", err)
	}

	// priority is the only nullable column
	if priority.Valid {
		task.Priority = int(priority.Int64)
	}

	status, err := roster.ParseDoneStatus(done)
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", task.ID, err)
	}
	task.Done = status

	return &task, nil
}
