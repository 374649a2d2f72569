package prompt

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.klb.dev/picst/internal/sizing"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// send feeds msgs through m and returns the final model and last command.
func send(m tea.Model, msgs ...tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// Input model

func percentValidator(s string) error {
	_, err := sizing.ParsePercent(s)
	return err
}

func TestInput_AcceptsValidValue(t *testing.T) {
	m, cmd := send(newInputModel("Height (%)", percentValidator), runes("2"), runes("5"), key(tea.KeyEnter))

	im := m.(inputModel)
	assert.True(t, im.done)
	assert.Equal(t, "25", im.input.Value())
	assert.True(t, isQuit(cmd))
	assert.Contains(t, im.View(), "25")
}

func TestInput_RejectsAndStaysOpen(t *testing.T) {
	m, cmd := send(newInputModel("Height (%)", percentValidator), runes("100"), key(tea.KeyEnter))

	im := m.(inputModel)
	assert.False(t, im.done)
	assert.Error(t, im.err)
	assert.False(t, isQuit(cmd))
	assert.Contains(t, im.View(), "between 1 and 99")

	// Fix the value in place.
	m, cmd = send(im, key(tea.KeyBackspace), key(tea.KeyBackspace), key(tea.KeyEnter))
	im = m.(inputModel)
	assert.True(t, im.done)
	assert.Nil(t, im.err)
	assert.Equal(t, "1", im.input.Value())
	assert.True(t, isQuit(cmd))
}

func TestInput_TypingClearsError(t *testing.T) {
	m, _ := send(newInputModel("Ratio", func(string) error { return assert.AnError }), key(tea.KeyEnter))
	require.Error(t, m.(inputModel).err)

	m, _ = send(m, runes("1"))
	assert.Nil(t, m.(inputModel).err)
}

func TestInput_Escape(t *testing.T) {
	m, cmd := send(newInputModel("Width (px)", nil), runes("12"), key(tea.KeyEsc))

	im := m.(inputModel)
	assert.True(t, im.aborted)
	assert.False(t, im.interrupted)
	assert.True(t, isQuit(cmd))
}

func TestInput_CtrlC(t *testing.T) {
	m, cmd := send(newInputModel("Width (px)", nil), key(tea.KeyCtrlC))

	im := m.(inputModel)
	assert.True(t, im.aborted)
	assert.True(t, im.interrupted)
	assert.True(t, isQuit(cmd))
}

// Select model

func TestSelect_MoveAndPick(t *testing.T) {
	m, cmd := send(newSelectModel("Resize by", unitOptions), runes("j"), runes("j"), key(tea.KeyEnter))

	sm := m.(selectModel)
	assert.True(t, sm.done)
	assert.Equal(t, 2, sm.cursor)
	assert.True(t, isQuit(cmd))
	assert.Contains(t, sm.View(), "Ratio")
}

func TestSelect_Bounds(t *testing.T) {
	m, _ := send(newSelectModel("Dimension", dimensionOptions), key(tea.KeyUp), key(tea.KeyUp))
	assert.Equal(t, 0, m.(selectModel).cursor)

	m, _ = send(m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown))
	assert.Equal(t, 2, m.(selectModel).cursor)

	m, _ = send(m, runes("g"))
	assert.Equal(t, 0, m.(selectModel).cursor)
}

func TestSelect_Escape(t *testing.T) {
	m, cmd := send(newSelectModel("Dimension", dimensionOptions), key(tea.KeyEsc))

	assert.True(t, m.(selectModel).aborted)
	assert.False(t, m.(selectModel).interrupted)
	assert.True(t, isQuit(cmd))
}

func TestSelect_CtrlC(t *testing.T) {
	m, cmd := send(newSelectModel("Dimension", dimensionOptions), key(tea.KeyCtrlC))

	assert.True(t, m.(selectModel).interrupted)
	assert.True(t, isQuit(cmd))
}

func TestSelect_ViewListsOptions(t *testing.T) {
	v := newSelectModel("Resize by", unitOptions).View()

	for _, opt := range unitOptions {
		assert.Contains(t, v, opt)
	}
	assert.Contains(t, v, "Resize by")
}

// Full programs over a byte stream

func newTestPrompter(t *testing.T, input string) *Prompter {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return New(ctx, bytes.NewBufferString(input), io.Discard)
}

func TestPrompter_Choose(t *testing.T) {
	p := newTestPrompter(t, "j\r")

	i, err := p.Choose("Dimension", dimensionOptions)

	require.NoError(t, err)
	assert.Equal(t, 1, i)
}

func TestPrompter_NoOptions(t *testing.T) {
	p := newTestPrompter(t, "")

	_, err := p.Choose("Nothing", nil)

	assert.Error(t, err)
}

func TestPrompter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := New(ctx, bytes.NewBufferString(""), io.Discard)

	_, err := p.Number("Height", nil)

	assert.ErrorIs(t, err, ErrAborted)
}

func TestAsker_MapsAbort(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := NewAsker(New(ctx, bytes.NewBufferString(""), io.Discard))

	_, err := a.AskUnit()
	assert.ErrorIs(t, err, sizing.ErrInteractionAborted)

	_, err = a.AskValue(sizing.Height, sizing.Percent)
	assert.ErrorIs(t, err, sizing.ErrInteractionAborted)
}

func TestAsker_Value(t *testing.T) {
	a := NewAsker(newTestPrompter(t, "25\r"))

	v, err := a.AskValue(sizing.Width, sizing.Percent)

	require.NoError(t, err)
	assert.Equal(t, uint32(25), v)
}

func TestPrompter_CtrlCRunsInterruptHook(t *testing.T) {
	for name, ask := range map[string]func(p *Prompter) error{
		"number": func(p *Prompter) error { _, err := p.Number("Height", nil); return err },
		"choose": func(p *Prompter) error { _, err := p.Choose("Dimension", dimensionOptions); return err },
	} {
		t.Run(name, func(t *testing.T) {
			p := newTestPrompter(t, "\x03")
			calls := 0
			p.OnInterrupt(func() { calls++ })

			err := ask(p)

			assert.ErrorIs(t, err, ErrInterrupted)
			assert.ErrorIs(t, err, ErrAborted)
			assert.Equal(t, 1, calls)
		})
	}
}

func TestAsker_InterruptIsAnAbort(t *testing.T) {
	p := newTestPrompter(t, "\x03")
	stopped := false
	p.OnInterrupt(func() { stopped = true })

	_, err := NewAsker(p).AskRatio()

	assert.ErrorIs(t, err, sizing.ErrInteractionAborted)
	assert.True(t, stopped)
}
