// Package cards is the interaction engine of a rendered study-card page.
//
// Register captures typed handles to every card's parts once; afterwards each
// component keeps its own state and renders it onto the page. Classes and
// styles on the page are only ever a projection of that state.
package cards

import (
	"github.com/lukas-brg/LearningCards/dom"
)

// Classes set by the engine.
const (
	classActive  = "active"
	classFocused = "focused"
)

// Kind is the type of a card.
type Kind int

// The supported kinds of card.
const (
	KindPlain Kind = iota
	KindFreeText
	KindMultipleChoice
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindFreeText:
		return "free text"
	case KindMultipleChoice:
		return "multiple choice"
	}
	return "unknown"
}

// State is the grading state of an answerable card.
type State int

// Free text cards move between Idle, Correct and Incorrect; multiple choice
// cards between Idle and Graded.
const (
	Idle State = iota
	Correct
	Incorrect
	Graded
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Graded:
		return "graded"
	}
	return "unknown"
}

// Card is one question/answer unit of the page.
type Card struct {
	ID   string
	Kind Kind
	Root dom.Element
	// Control is the card's primary action control, or nil.
	Control dom.Element

	Backside *Backside
	FreeText *FreeText
	Choice   *Choice
}

// Page holds everything Register found on a page.
type Page struct {
	// TOC is nil when the page has no table of contents.
	TOC   *TOC
	Cards []*Card
	Copy  []*CopyButton
}

// Card returns the card with the given id, or nil.
func (p *Page) Card(id string) *Card {
	for _, c := range p.Cards {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Count returns the number of cards of each kind.
func (p *Page) Count() map[Kind]int {
	counts := make(map[Kind]int)
	for _, c := range p.Cards {
		counts[c.Kind]++
	}
	return counts
}

// setLabel writes the caption of a control: the value of an input button,
// the text of anything else.
func setLabel(el dom.Element, text string) {
	if el.TagName() == "input" {
		el.SetValue(text)
		return
	}
	el.SetText(text)
}

// Label reads the caption of a control.
func Label(el dom.Element) string {
	if el.TagName() == "input" {
		return el.Value()
	}
	return el.Text()
}

func setActive(el dom.Element, active bool) {
	if active {
		el.AddClass(classActive)
		return
	}
	el.RemoveClass(classActive)
}
