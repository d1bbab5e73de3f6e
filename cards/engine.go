package cards

import (
	"github.com/flimzy/log"
	"github.com/pkg/errors"

	"github.com/lukas-brg/LearningCards/dom"
	"github.com/lukas-brg/LearningCards/l10n"
)

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(message string)
}

// AlertFunc adapts an ordinary function to Alerter.
type AlertFunc func(message string)

// Alert calls f(message).
func (f AlertFunc) Alert(message string) {
	f(message)
}

// Clipboard is the copy capability of the page. Bind arranges for the text
// of target to be copied whenever trigger is activated, calling onSuccess
// with the copied text after each successful copy.
type Clipboard interface {
	Bind(trigger, target dom.Element, onSuccess func(text string))
}

// Engine connects the components of a registered page to user events.
type Engine struct {
	Conf    *Config
	Alerter Alerter
	// Clipboard may be nil, in which case copy controls stay inert.
	Clipboard Clipboard
	// Scheduler runs the copy feedback reverts. Wire fills it in when nil:
	// in the browser callbacks run on the page's event loop, elsewhere it is
	// a *Loop the caller must drain.
	Scheduler Scheduler

	highlight Highlighter
}

// Wire binds every control found by Register. It must be called once per
// page.
func (e *Engine) Wire(page *Page) {
	if page.TOC != nil {
		toc := page.TOC
		toc.control.On("click", toc.Toggle)
	}
	for _, card := range page.Cards {
		e.wireCard(card)
	}
	if e.Scheduler == nil {
		e.Scheduler = defaultScheduler()
	}
	for _, b := range page.Copy {
		b.sched = e.Scheduler
		if e.Clipboard == nil {
			continue
		}
		e.Clipboard.Bind(b.control, b.target, b.Copied)
	}
	log.Debugf("Wired %d cards, %d copy buttons\n", len(page.Cards), len(page.Copy))
}

func (e *Engine) wireCard(card *Card) {
	if b := card.Backside; b != nil {
		b.control.On("click", b.Toggle)
	}
	if ft := card.FreeText; ft != nil {
		ft.control.On("click", func() {
			e.report(ft.Activate())
		})
	}
	if ch := card.Choice; ch != nil {
		ch.control.On("click", func() {
			e.report(ch.Activate())
		})
	}
	card.Root.On("mouseover", func() {
		e.highlight.Enter(card)
	})
	card.Root.On("mouseout", func() {
		e.highlight.Leave(card)
	})
}

// Highlighted returns the card currently under the pointer, or nil.
func (e *Engine) Highlighted() *Card {
	return e.highlight.Current()
}

// report turns a rejected submission into a localized alert.
func (e *Engine) report(err error) {
	if err == nil {
		return
	}
	var key l10n.Key
	switch errors.Cause(err) {
	case ErrInputRequired:
		key = l10n.InputRequired
	case ErrSelectionRequired:
		key = l10n.CheckRequired
	default:
		log.Printf("Unexpected card error: %s\n", err)
		return
	}
	log.Debugf("Rejected submission: %s\n", err)
	if e.Alerter != nil {
		e.Alerter.Alert(e.Conf.Locale.T(key))
	}
}
