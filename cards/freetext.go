package cards

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/lukas-brg/LearningCards/dom"
	"github.com/lukas-brg/LearningCards/l10n"
)

var ignored = strings.NewReplacer(" ", "", "-", "", "_", "")

// Normalize lower-cases an answer and strips spaces, hyphens and
// underscores, so "Self-Driving Car" matches "selfdrivingcar".
func Normalize(answer string) string {
	return ignored.Replace(strings.ToLower(answer))
}

// FreeText grades a typed answer against the card's stored answer.
type FreeText struct {
	conf    *Config
	cardID  string
	input   dom.Element
	control dom.Element
	region  dom.Element
	answer  dom.Element
	correct string
	state   State
}

// State returns Idle, Correct or Incorrect.
func (f *FreeText) State() State {
	return f.state
}

// Answer is the stored correct answer.
func (f *FreeText) Answer() string {
	return f.correct
}

// Input is the answer field.
func (f *FreeText) Input() dom.Element {
	return f.input
}

// Control is the check/hide answer button.
func (f *FreeText) Control() dom.Element {
	return f.control
}

// Activate is a click on the control: it grades an idle card and retracts a
// graded one.
func (f *FreeText) Activate() error {
	if f.state == Idle {
		return f.Submit()
	}
	f.Retract()
	return nil
}

// Submit grades the current content of the answer field. A blank field is
// rejected with ErrInputRequired and nothing changes.
func (f *FreeText) Submit() error {
	given := strings.TrimSpace(f.input.Value())
	if given == "" {
		return errors.Wrapf(ErrInputRequired, "card %s", f.cardID)
	}
	color := f.conf.Palette.Incorrect
	f.state = Incorrect
	if Normalize(given) == Normalize(f.correct) {
		color = f.conf.Palette.Correct
		f.state = Correct
	}
	dom.Show(f.region, true)
	f.answer.SetStyle("color", color)
	setActive(f.control, true)
	setLabel(f.control, f.conf.Locale.T(l10n.HideAnswer))
	return nil
}

// Retract hides the answer again and clears the field, returning the card to
// Idle.
func (f *FreeText) Retract() {
	dom.Show(f.region, false)
	f.answer.SetStyle("color", "")
	f.input.SetValue("")
	setActive(f.control, false)
	setLabel(f.control, f.conf.Locale.T(l10n.CheckAnswer))
	f.state = Idle
}
