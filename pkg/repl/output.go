package repl

import (
	"context"
	"fmt"
	"io"

	"github.com/soypete/taskroster/pkg/roster"
)

// Column layouts of the two tables, left aligned and space separated.
const (
	workerRowFormat = "%-3v %-11v %-11v %-5v %-15v\n"
	taskRowFormat   = "%-3v %-20v %-10v %-5v %-10v\n"
)

// PrintWorkers writes workers as a fixed-width table with a header row
func PrintWorkers(w io.Writer, workers []roster.Worker) {
	fmt.Fprintf(w, workerRowFormat, "ID", "First Name", "Last Name", "DoB", "Phone Number")
	for _, wk := range workers {
		fmt.Fprintf(w, workerRowFormat, wk.ID, wk.FirstName, wk.LastName, wk.DateOfBirth, wk.PhoneNumber)
	}
}

// PrintTasks writes tasks as a fixed-width table with a header row
func PrintTasks(w io.Writer, tasks []roster.Task) {
	fmt.Fprintf(w, taskRowFormat, "ID", "Name", "Priority", "Done", "Assigned to")
	for _, t := range tasks {
		fmt.Fprintf(w, taskRowFormat, t.ID, t.Name, t.Priority, t.Done, t.WorkerID)
	}
}

// ShowWorkers loads all workers and prints them
func ShowWorkers(ctx context.Context, r roster.Reader, w io.Writer) error {
	workers, err := r.ListWorkers(ctx)
	if err != nil {
		return err
	}
	PrintWorkers(w, workers)
	return nil
}

// ShowTasks loads all tasks and prints them
func ShowTasks(ctx context.Context, r roster.Reader, w io.Writer) error {
	tasks, err := r.ListTasks(ctx)
	if err != nil {
		return err
	}
	PrintTasks(w, tasks)
	return nil
}
