package repl

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/soypete/taskroster/pkg/roster"
	"github.com/soypete/taskroster/pkg/roster/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedReader replays lines and errors in order, then io.EOF
type scriptedReader struct {
	steps []step
}

type step struct {
	line string
	err  error
}

func (s *scriptedReader) ReadLine() (string, error) {
	if len(s.steps) == 0 {
		return "", io.EOF
	}
	st := s.steps[0]
	s.steps = s.steps[1:]
	return st.line, st.err
}

func (s *scriptedReader) Close() error { return nil }

// runMenu runs a menu over a seeded memory store with the given input
func runMenu(t *testing.T, store *testutil.MemoryStore, input string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	menu := NewMenu(store, NewPlainReader(strings.NewReader(input)), &out, nil)
	err := menu.Run(context.Background())
	return out.String(), err
}

func seededStore(t *testing.T) *testutil.MemoryStore {
	t.Helper()
	store := testutil.NewMemoryStore()
	_, err := roster.Seed(context.Background(), store)
	require.NoError(t, err)
	return store
}

func TestMenu_Exit(t *testing.T) {
	store := seededStore(t)

	out, err := runMenu(t, store, "5\n")
	require.NoError(t, err)

	assert.Equal(t, menuText, out)
}

func TestMenu_EOFExits(t *testing.T) {
	out, err := runMenu(t, testutil.NewMemoryStore(), "")
	require.NoError(t, err)
	assert.Equal(t, menuText, out)
}

func TestMenu_InvalidChoice(t *testing.T) {
	store := seededStore(t)
	before := store.InsertCalls

	out, err := runMenu(t, store, "6\n5\n")
	require.NoError(t, err)

	assert.Equal(t, before, store.InsertCalls)
	assert.Len(t, store.Workers, 3)
	assert.Len(t, store.Tasks, 3)

	assert.Contains(t, out, "Incorrect input, please try again\n\n")
	assert.Equal(t, 2, strings.Count(out, menuText))
	assert.NotContains(t, out, "Press Enter to continue:")
}

func TestMenu_ViewWorkers(t *testing.T) {
	store := seededStore(t)

	out, err := runMenu(t, store, "1\n\n5\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Worker table selected\n")
	assert.Contains(t, out, "ID  First Name  Last Name   DoB   Phone Number   \n")
	assert.Contains(t, out, "1   Milos       Korac       1996  xxx yyy xx xx  \n")
	assert.Contains(t, out, "Press Enter to continue:\n")
	assert.Equal(t, 2, strings.Count(out, menuText))
}

func TestMenu_ViewTasks(t *testing.T) {
	store := seededStore(t)

	out, err := runMenu(t, store, "2\n\n5\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Task table selected\n")
	assert.Contains(t, out, "ID  Name                 Priority   Done  Assigned to\n")
	assert.Contains(t, out, "1   Design the project   2          Yes   1         \n")
	assert.Contains(t, out, "3   Market the project   3          No    2         \n")
}

func TestMenu_AddWorker(t *testing.T) {
	store := seededStore(t)

	out, err := runMenu(t, store, "3\nAna\nAnic\n2000\n555\n\n5\n")
	require.NoError(t, err)

	require.Len(t, store.Workers, 4)
	w := store.Workers[3]
	assert.Equal(t, int64(4), w.ID)
	assert.Equal(t, "Ana", w.FirstName)
	assert.Equal(t, "Anic", w.LastName)
	assert.Equal(t, "2000", w.DateOfBirth)
	assert.Equal(t, "555", w.PhoneNumber)

	assert.Contains(t, out, "Worker input selected\n")
	assert.Contains(t, out, "Please enter the worker's first name:\n")
	assert.Contains(t, out, "Finally, their phone number:\n")
	assert.Contains(t, out, "Worker Ana successfully added\n")
}

func TestMenu_AddTask(t *testing.T) {
	store := seededStore(t)

	out, err := runMenu(t, store, "4\nTest the project\n1\nNo\n3\n\n5\n")
	require.NoError(t, err)

	require.Len(t, store.Tasks, 4)
	task := store.Tasks[3]
	assert.Equal(t, int64(4), task.ID)
	assert.Equal(t, "Test the project", task.Name)
	assert.Equal(t, 1, task.Priority)
	assert.Equal(t, roster.NotDone, task.Done)
	assert.Equal(t, int64(3), task.WorkerID)

	assert.Contains(t, out, "Task Test the project successfully added\n")
}

func TestMenu_AddTask_DanglingWorker(t *testing.T) {
	store := seededStore(t)

	_, err := runMenu(t, store, "4\nOrphan\n1\nyes\n99\n\n5\n")
	require.NoError(t, err)

	require.Len(t, store.Tasks, 4)
	assert.Equal(t, int64(99), store.Tasks[3].WorkerID)
	assert.Equal(t, roster.Done, store.Tasks[3].Done)
}

func TestMenu_AddTask_InvalidPriority(t *testing.T) {
	store := seededStore(t)
	before := store.InsertCalls

	out, err := runMenu(t, store, "4\nT\nhigh\nNo\n1\n\n5\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, roster.ErrInvalidPriority)

	assert.Equal(t, before, store.InsertCalls)
	assert.NotContains(t, out, "Is the task already completed?")
}

func TestMenu_AddTask_InvalidWorkerID(t *testing.T) {
	store := seededStore(t)

	_, err := runMenu(t, store, "4\nT\n1\nNo\nMilos\n")
	assert.ErrorIs(t, err, roster.ErrInvalidWorkerID)
	assert.Len(t, store.Tasks, 3)
}

func TestMenu_AddTask_DoneReprompt(t *testing.T) {
	store := seededStore(t)

	out, err := runMenu(t, store, "4\nT\n1\nmaybe\nY\n1\n\n5\n")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "Is the task already completed?"))
	assert.Contains(t, out, "Please answer yes or no\n")
	require.Len(t, store.Tasks, 4)
	assert.Equal(t, roster.Done, store.Tasks[3].Done)
}

func TestMenu_EOFDuringAdd(t *testing.T) {
	store := seededStore(t)

	_, err := runMenu(t, store, "3\nAna\n")
	require.NoError(t, err)
	assert.Len(t, store.Workers, 3)
}

func TestMenu_StoreError(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.Err = errors.New("no such table: workers")

	_, err := runMenu(t, store, "1\n\n5\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such table")
}

func TestMenu_Interrupt(t *testing.T) {
	store := seededStore(t)
	input := &scriptedReader{steps: []step{
		{err: ErrInterrupt}, // at the menu
		{line: "3"},
		{line: "Ana"},
		{err: ErrInterrupt}, // abandon the new worker
		{line: ""},          // press enter
		{line: "5"},
	}}

	var out bytes.Buffer
	session := NewSession(false)
	err := NewMenu(store, input, &out, session).Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, store.Workers, 3)
	assert.Contains(t, out.String(), "Cancelled\n")
	assert.Equal(t, []string{"3", "5"}, session.GetHistory())
}

func TestMenu_InputError(t *testing.T) {
	input := &scriptedReader{steps: []step{{err: errors.New("tty gone")}}}

	err := NewMenu(testutil.NewMemoryStore(), input, io.Discard, nil).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input error")
}

func TestMenu_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewMenu(testutil.NewMemoryStore(), NewPlainReader(strings.NewReader("5\n")), io.Discard, nil).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlainReader(t *testing.T) {
	r := NewPlainReader(strings.NewReader("one\r\ntwo\nlast"))

	line, err := r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "one", line)

	line, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "two", line)

	line, err = r.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = r.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
	assert.NoError(t, r.Close())
}

func TestNewInput_NonTerminal(t *testing.T) {
	in, err := NewInput(InputConfig{In: strings.NewReader("x\n"), Out: io.Discard})
	require.NoError(t, err)
	_, ok := in.(*PlainReader)
	assert.True(t, ok, "non-terminal input should use the plain reader")
}

func TestPrintTasks_Empty(t *testing.T) {
	var out bytes.Buffer
	PrintTasks(&out, nil)
	assert.Equal(t, "ID  Name                 Priority   Done  Assigned to\n", out.String())
}

func TestSession(t *testing.T) {
	s := NewSession(true)
	assert.Len(t, s.ID, 36)
	assert.Equal(t, s.ID[:8], s.ShortID())
	assert.NotEqual(t, s.ID, NewSession(true).ID)

	s.AddToHistory("1")
	h := s.GetHistory()
	h[0] = "changed"
	assert.Equal(t, []string{"1"}, s.GetHistory())
}

func TestConfigureLogging(t *testing.T) {
	var buf bytes.Buffer
	verbose := NewSession(true)

	restore := ConfigureLogging(verbose, &buf)
	verbose.debugf("hello %d", 1)
	NewSession(false).debugf("quiet")
	log.Print("always")
	restore()

	out := buf.String()
	assert.Contains(t, out, "["+verbose.ShortID()+"] hello 1")
	assert.Contains(t, out, "always")
	assert.NotContains(t, out, "quiet")
}
