// Package repl runs the interactive worker and task menu.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/soypete/taskroster/pkg/roster"
)

// errCancelled aborts the current action and returns to the menu
var errCancelled = errors.New("cancelled")

const menuText = `What do you wish to do with the current database? (input number to select)

1. View the workers table
2. View the tasks table
3. Add a new worker
4. Add a new task
5. Close the program
`

// Menu choices
const (
	choiceViewWorkers = "1"
	choiceViewTasks   = "2"
	choiceAddWorker   = "3"
	choiceAddTask     = "4"
	choiceExit        = "5"
)

// Menu is the interactive loop over a roster store
type Menu struct {
	store   roster.Store
	input   LineReader
	out     io.Writer
	session *Session
}

// NewMenu creates a menu. A nil session gets a fresh non-verbose one.
func NewMenu(store roster.Store, input LineReader, out io.Writer, session *Session) *Menu {
	if session == nil {
		session = NewSession(false)
	}
	return &Menu{
		store:   store,
		input:   input,
		out:     out,
		session: session,
	}
}

// Run shows the menu until the user exits or input ends.
//
// Store failures and unparseable numeric input (roster.ErrInvalidPriority,
// roster.ErrInvalidWorkerID) end the loop with an error. An unknown choice
// only re-displays the menu.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(m.out, menuText)

		line, err := m.input.ReadLine()
		if err != nil {
			if errors.Is(err, ErrInterrupt) {
				// Ctrl+C - just show the menu again
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		choice := strings.TrimSpace(line)
		m.session.AddToHistory(choice)
		m.session.debugf("menu choice %q", choice)

		switch choice {
		case choiceViewWorkers:
			err = m.viewWorkers(ctx)
		case choiceViewTasks:
			err = m.viewTasks(ctx)
		case choiceAddWorker:
			err = m.addWorker(ctx)
		case choiceAddTask:
			err = m.addTask(ctx)
		case choiceExit:
			return nil
		default:
			fmt.Fprintln(m.out, "Incorrect input, please try again")
			fmt.Fprintln(m.out)
			continue
		}

		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, errCancelled):
			fmt.Fprintln(m.out, "Cancelled")
		case err != nil:
			return err
		}

		if err := m.pause(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (m *Menu) viewWorkers(ctx context.Context) error {
	fmt.Fprintln(m.out, "Worker table selected")
	return ShowWorkers(ctx, m.store, m.out)
}

func (m *Menu) viewTasks(ctx context.Context) error {
	fmt.Fprintln(m.out, "Task table selected")
	return ShowTasks(ctx, m.store, m.out)
}

func (m *Menu) addWorker(ctx context.Context) error {
	fmt.Fprintln(m.out, "Worker input selected")

	var w roster.Worker
	var err error
	if w.FirstName, err = m.ask("Please enter the worker's first name:"); err != nil {
		return err
	}
	if w.LastName, err = m.ask("Please enter their last name:"); err != nil {
		return err
	}
	if w.DateOfBirth, err = m.ask("Enter their date of birth:"); err != nil {
		return err
	}
	if w.PhoneNumber, err = m.ask("Finally, their phone number:"); err != nil {
		return err
	}

	id, err := m.store.InsertWorker(ctx, w)
	if err != nil {
		return err
	}
	m.session.debugf("inserted worker %d", id)

	fmt.Fprintf(m.out, "Worker %s successfully added\n", w.FirstName)
	return nil
}

func (m *Menu) addTask(ctx context.Context) error {
	fmt.Fprintln(m.out, "Task input selected")

	var t roster.Task
	var err error
	if t.Name, err = m.ask("Please enter the task in question:"); err != nil {
		return err
	}

	priority, err := m.ask("Please enter the task's priority:")
	if err != nil {
		return err
	}
	if t.Priority, err = roster.ParsePriority(priority); err != nil {
		return err
	}

	if t.Done, err = m.askDone("Is the task already completed?"); err != nil {
		return err
	}

	worker, err := m.ask("Who is it assigned to? (Insert the ID of the worker in question)")
	if err != nil {
		return err
	}
	if t.WorkerID, err = roster.ParseWorkerID(worker); err != nil {
		return err
	}

	id, err := m.store.InsertTask(ctx, t)
	if err != nil {
		return err
	}
	m.session.debugf("inserted task %d for worker %d", id, t.WorkerID)

	fmt.Fprintf(m.out, "Task %s successfully added\n", t.Name)
	return nil
}

// ask prints a question and reads the answer
func (m *Menu) ask(question string) (string, error) {
	fmt.Fprintln(m.out, question)
	line, err := m.input.ReadLine()
	if errors.Is(err, ErrInterrupt) {
		return "", errCancelled
	}
	return line, err
}

// askDone repeats the question until the answer reads as yes or no
func (m *Menu) askDone(question string) (roster.DoneStatus, error) {
	for {
		answer, err := m.ask(question)
		if err != nil {
			return roster.NotDone, err
		}
		done, err := roster.ParseDoneStatus(answer)
		if err == nil {
			return done, nil
		}
		fmt.Fprintln(m.out, "Please answer yes or no")
	}
}

// pause waits for the user to acknowledge before the menu is shown again
func (m *Menu) pause() error {
	fmt.Fprintln(m.out, "Press Enter to continue:")
	_, err := m.input.ReadLine()
	if errors.Is(err, ErrInterrupt) {
		return nil
	}
	return err
}
