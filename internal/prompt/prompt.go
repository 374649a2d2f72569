// Package prompt implements the terminal interaction used when a resize
// request leaves something open: a validated number input and a small
// choice menu, both rendered with bubbletea.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	// ErrAborted is returned when the user cancels with Esc, or the prompt's
	// context is cancelled.
	ErrAborted = errors.New("prompt aborted")
	// ErrInterrupted is returned for Ctrl+C. It wraps ErrAborted.
	ErrInterrupted = fmt.Errorf("%w: interrupted", ErrAborted)
)

// Prompter runs one bubbletea program per question.
type Prompter struct {
	ctx         context.Context
	in          io.Reader
	out         io.Writer
	onInterrupt func()
}

// New returns a Prompter reading keys from in and drawing on out.
// Cancelling ctx aborts any prompt in progress.
func New(ctx context.Context, in io.Reader, out io.Writer) *Prompter {
	return &Prompter{ctx: ctx, in: in, out: out}
}

// OnInterrupt registers f to run when the user presses Ctrl+C. The terminal
// is in raw mode while a prompt is open, so no SIGINT is delivered; callers
// use this to stop the process as the signal would have.
func (p *Prompter) OnInterrupt(f func()) {
	p.onInterrupt = f
}

func (p *Prompter) interrupt() error {
	if p.onInterrupt != nil {
		p.onInterrupt()
	}
	return ErrInterrupted
}

// Number asks for a value and re-asks in place until validate accepts it.
// The accepted text is returned verbatim.
func (p *Prompter) Number(label string, validate func(string) error) (string, error) {
	final, err := p.run(newInputModel(label, validate))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	switch {
	case m.interrupted:
		return "", p.interrupt()
	case m.aborted:
		return "", ErrAborted
	}
	return m.input.Value(), nil
}

// Choose asks the user to pick one of options and returns its index.
func (p *Prompter) Choose(label string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("prompt %q: no options", label)
	}
	final, err := p.run(newSelectModel(label, options))
	if err != nil {
		return 0, err
	}
	m := final.(selectModel)
	switch {
	case m.interrupted:
		return 0, p.interrupt()
	case m.aborted:
		return 0, ErrAborted
	}
	return m.cursor, nil
}

func (p *Prompter) run(m tea.Model) (tea.Model, error) {
	prog := tea.NewProgram(m,
		tea.WithContext(p.ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	final, err := prog.Run()
	if err != nil {
		switch {
		case errors.Is(err, tea.ErrInterrupted):
			return nil, p.interrupt()
		case errors.Is(err, tea.ErrProgramKilled):
			return nil, ErrAborted
		}
		return nil, fmt.Errorf("prompt: %w", err)
	}
	return final, nil
}
