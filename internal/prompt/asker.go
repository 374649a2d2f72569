package prompt

import (
	"errors"
	"fmt"

	"go.klb.dev/picst/internal/sizing"
)

var (
	unitOptions      = []string{"Pixel", "Percentage", "Ratio"}
	dimensionOptions = []string{"Height", "Width", "Both"}
)

// Asker answers sizing questions through a Prompter.
type Asker struct {
	p *Prompter
}

var _ sizing.Asker = (*Asker)(nil)

// NewAsker wraps p.
func NewAsker(p *Prompter) *Asker {
	return &Asker{p: p}
}

func (a *Asker) AskUnit() (sizing.UnitChoice, error) {
	i, err := a.p.Choose("Resize by", unitOptions)
	if err != nil {
		return 0, aborted(err)
	}
	return sizing.UnitChoice(i), nil
}

func (a *Asker) AskDimensions() (sizing.DimensionChoice, error) {
	i, err := a.p.Choose("Dimension", dimensionOptions)
	if err != nil {
		return 0, aborted(err)
	}
	return sizing.DimensionChoice(i), nil
}

func (a *Asker) AskValue(d sizing.Dimension, unit sizing.Unit) (uint32, error) {
	label := d.String() + " (px)"
	if unit == sizing.Percent {
		label = d.String() + " (%)"
	}
	text, err := a.p.Number(label, func(s string) error {
		_, err := sizing.ParseValue(s, unit)
		return err
	})
	if err != nil {
		return 0, aborted(err)
	}
	return sizing.ParseValue(text, unit)
}

func (a *Asker) AskRatio() (float64, error) {
	text, err := a.p.Number("Ratio", func(s string) error {
		_, err := sizing.ParseRatio(s)
		return err
	})
	if err != nil {
		return 0, aborted(err)
	}
	return sizing.ParseRatio(text)
}

// aborted maps a cancelled prompt onto sizing.ErrInteractionAborted.
func aborted(err error) error {
	if errors.Is(err, ErrAborted) {
		return fmt.Errorf("%w: %w", sizing.ErrInteractionAborted, err)
	}
	return err
}
