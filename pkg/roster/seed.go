package roster

import (
	"context"
	"fmt"
)

// SeedWorkers are inserted into an empty store, in this order
var SeedWorkers = []Worker{
	{FirstName: "Milos", LastName: "Korac", DateOfBirth: "1996", PhoneNumber: "xxx yyy xx xx"},
	{FirstName: "Pera", LastName: "Peric", DateOfBirth: "1990", PhoneNumber: "xyy yxx zz zz"},
	{FirstName: "Zika", LastName: "Zikic", DateOfBirth: "1995", PhoneNumber: "xyz zxy xy yx"},
}

// seedTask refers to its worker by position in SeedWorkers, since the real
// id is only known after the insert.
type seedTask struct {
	task   Task
	worker int
}

var seedTasks = []seedTask{
	{Task{Name: "Design the project", Priority: 2, Done: Done}, 0},
	{Task{Name: "Create the project", Priority: 1, Done: NotDone}, 0},
	{Task{Name: "Market the project", Priority: 3, Done: NotDone}, 1},
}

// Seed fills an empty store with the sample workers and tasks.
// It reports whether anything was inserted; a store that already has
// workers is left alone.
func Seed(ctx context.Context, store Store) (bool, error) {
	n, err := store.CountWorkers(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check for existing workers: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	ids := make([]int64, len(SeedWorkers))
	for i, w := range SeedWorkers {
		id, err := store.InsertWorker(ctx, w)
		if err != nil {
			return false, fmt.Errorf("failed to seed worker %s %s: %w", w.FirstName, w.LastName, err)
		}
		ids[i] = id
	}

	for _, st := range seedTasks {
		t := st.task
		t.WorkerID = ids[st.worker]
		if _, err := store.InsertTask(ctx, t); err != nil {
			return false, fmt.Errorf("failed to seed task %q: %w", t.Name, err)
		}
	}

	return true, nil
}
