// Package testutil provides an in-memory roster.Store for tests.
package testutil

import (
	"context"
	"sync"

	"github.com/soypete/taskroster/pkg/roster"
)

// MemoryStore is a roster.Store backed by slices.
// Ids are assigned from 1 upward, like SQLite rowids.
type MemoryStore struct {
	mu sync.Mutex

	Workers []roster.Worker
	Tasks   []roster.Task

	// Err, when set, is returned by every call.
	Err error

	// InsertCalls counts successful inserts of either kind.
	InsertCalls int
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// InsertWorker appends w and returns its new id
func (m *MemoryStore) InsertWorker(ctx context.Context, w roster.Worker) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	w.ID = int64(len(m.Workers) + 1)
	m.Workers = append(m.Workers, w)
	m.InsertCalls++
	return w.ID, nil
}

// InsertTask appends t and returns its new id
func (m *MemoryStore) InsertTask(ctx context.Context, t roster.Task) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	t.ID = int64(len(m.Tasks) + 1)
	m.Tasks = append(m.Tasks, t)
	m.InsertCalls++
	return t.ID, nil
}

// ListWorkers returns a copy of the stored workers
func (m *MemoryStore) ListWorkers(ctx context.Context) ([]roster.Worker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]roster.Worker(nil), m.Workers...), nil
}

// ListTasks returns a copy of the stored tasks
func (m *MemoryStore) ListTasks(ctx context.Context) ([]roster.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]roster.Task(nil), m.Tasks...), nil
}

// CountWorkers returns the number of stored workers
func (m *MemoryStore) CountWorkers(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Workers), nil
}

var _ roster.Store = (*MemoryStore)(nil)
