package cards

import (
	"github.com/pkg/errors"

	"github.com/lukas-brg/LearningCards/dom"
	"github.com/lukas-brg/LearningCards/l10n"
)

// Option is one checkbox of a multiple choice card.
type Option struct {
	input   dom.Element
	label   dom.Element
	correct bool
}

// Text is the option's label text.
func (o *Option) Text() string {
	return o.label.Text()
}

// Correct reports whether the option is marked correct.
func (o *Option) Correct() bool {
	return o.correct
}

// Selected reports whether the option is checked.
func (o *Option) Selected() bool {
	return o.input.Checked()
}

// Select checks or unchecks the option.
func (o *Option) Select(selected bool) {
	o.input.SetChecked(selected)
}

// Color is the inline color of the option's label.
func (o *Option) Color() string {
	return o.label.Style("color")
}

// Choice grades the selected options of a multiple choice card.
type Choice struct {
	conf        *Config
	cardID      string
	options     []*Option
	control     dom.Element
	explanation dom.Element
	state       State
}

// State returns Idle or Graded.
func (c *Choice) State() State {
	return c.state
}

// Options returns the options in page order.
func (c *Choice) Options() []*Option {
	return c.options
}

// Control is the check/hide answer button.
func (c *Choice) Control() dom.Element {
	return c.control
}

// Explanation is the region revealed after grading.
func (c *Choice) Explanation() dom.Element {
	return c.explanation
}

// Activate is a click on the control: it grades an idle card and retracts a
// graded one.
func (c *Choice) Activate() error {
	if c.state == Idle {
		return c.Submit()
	}
	c.Retract()
	return nil
}

// Submit grades the selection. Only selected options are colored; an
// unselected correct option stays neutral. Submitting with nothing selected
// is rejected with ErrSelectionRequired and nothing changes.
func (c *Choice) Submit() error {
	var selected bool
	for _, o := range c.options {
		if o.Selected() {
			selected = true
			break
		}
	}
	if !selected {
		return errors.Wrapf(ErrSelectionRequired, "card %s", c.cardID)
	}
	c.state = Graded
	for _, o := range c.options {
		if !o.Selected() {
			continue
		}
		if o.correct {
			o.label.SetStyle("color", c.conf.Palette.Correct)
		} else {
			o.label.SetStyle("color", c.conf.Palette.Incorrect)
		}
	}
	dom.Show(c.explanation, true)
	setActive(c.control, true)
	setLabel(c.control, c.conf.Locale.T(l10n.HideAnswer))
	return nil
}

// Retract clears the selection and the feedback colors, returning the card
// to Idle.
func (c *Choice) Retract() {
	for _, o := range c.options {
		o.Select(false)
		o.label.SetStyle("color", c.conf.Palette.Neutral)
	}
	dom.Show(c.explanation, false)
	setActive(c.control, false)
	setLabel(c.control, c.conf.Locale.T(l10n.CheckAnswer))
	c.state = Idle
}
