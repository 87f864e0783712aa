// Package roster defines the workers and tasks tracked by taskroster and the
// store contract the rest of the program depends on.
package roster

import (
	"context"
)

// Worker is a person that tasks can be assigned to
type Worker struct {
	ID          int64
	FirstName   string
	LastName    string
	DateOfBirth string
	PhoneNumber string
}

// Task is a unit of work with a priority, a completion status and an assignee
type Task struct {
	ID       int64
	Name     string
	Priority int
	Done     DoneStatus
	// WorkerID is not checked against the workers table.
	WorkerID int64
}

// WorkerWriter appends workers
type WorkerWriter interface {
	InsertWorker(ctx context.Context, w Worker) (int64, error)
}

// TaskWriter appends tasks
type TaskWriter interface {
	InsertTask(ctx context.Context, t Task) (int64, error)
}

// Reader exposes the read side of the store
type Reader interface {
	ListWorkers(ctx context.Context) ([]Worker, error)
	ListTasks(ctx context.Context) ([]Task, error)
	CountWorkers(ctx context.Context) (int, error)
}

// Store is everything the menu and the seed loader need from persistence.
// Both entity types are append-only, so there is no update or delete.
type Store interface {
	WorkerWriter
	TaskWriter
	Reader
}
