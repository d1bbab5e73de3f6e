package cards

import (
	"github.com/lukas-brg/LearningCards/dom"
	"github.com/lukas-brg/LearningCards/l10n"
)

// Backside is the reveal control of a card's hidden answer region.
type Backside struct {
	conf     *Config
	control  dom.Element
	content  dom.Element
	revealed bool
}

// Revealed reports whether the backside is shown.
func (b *Backside) Revealed() bool {
	return b.revealed
}

// Toggle shows or hides the backside.
func (b *Backside) Toggle() {
	b.revealed = !b.revealed
	dom.Show(b.content, b.revealed)
	setActive(b.control, b.revealed)
	if b.revealed {
		setLabel(b.control, b.conf.Locale.T(l10n.HideBackside))
		return
	}
	setLabel(b.control, b.conf.Locale.T(l10n.ShowBackside))
}

// Control is the reveal button.
func (b *Backside) Control() dom.Element {
	return b.control
}

// Content is the hidden answer region.
func (b *Backside) Content() dom.Element {
	return b.content
}
