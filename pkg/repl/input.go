package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

// ErrInterrupt is returned by ReadLine when the user presses Ctrl+C
var ErrInterrupt = errors.New("interrupted")

// LineReader reads one line of user input at a time.
// It returns io.EOF once input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
	Close() error
}

// InputConfig selects and configures the line reader
type InputConfig struct {
	In          io.Reader
	Out         io.Writer
	HistoryFile string
	// Plain disables readline even when In is a terminal
	Plain bool
}

// NewInput returns a readline-backed reader when In is a terminal and a
// plain buffered reader otherwise (pipes, files, tests).
func NewInput(cfg InputConfig) (LineReader, error) {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	if f, ok := cfg.In.(*os.File); ok && !cfg.Plain && readline.IsTerminal(int(f.Fd())) {
		return NewInputHandler(f, cfg.Out, cfg.HistoryFile)
	}
	return NewPlainReader(cfg.In), nil
}

// InputHandler manages user input with readline support
type InputHandler struct {
	rl *readline.Instance
}

// NewInputHandler creates a new input handler
func NewInputHandler(in *os.File, out io.Writer, historyFile string) (*InputHandler, error) {
	// Configure readline
	config := &readline.Config{
		Prompt:                 "> ",
		HistoryFile:            historyFile,
		HistoryLimit:           1000,
		DisableAutoSaveHistory: false,
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
		Stdin:                  in,
		Stdout:                 out,
	}

	// Create readline instance
	rl, err := readline.NewEx(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &InputHandler{rl: rl}, nil
}

// ReadLine reads a single line of input
func (h *InputHandler) ReadLine() (string, error) {
	line, err := h.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupt
	}
	return line, err
}

// Close closes the input handler
func (h *InputHandler) Close() error {
	return h.rl.Close()
}

// PlainReader reads newline-terminated input without line editing
type PlainReader struct {
	r *bufio.Reader
}

// NewPlainReader wraps r
func NewPlainReader(r io.Reader) *PlainReader {
	return &PlainReader{r: bufio.NewReader(r)}
}

// ReadLine reads up to the next newline. A final line without a newline
// is returned as is; io.EOF follows it.
func (p *PlainReader) ReadLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close is a no-op; the underlying reader is owned by the caller
func (p *PlainReader) Close() error {
	return nil
}
