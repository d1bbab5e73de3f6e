package cards

// Highlighter moves keyboard focus to the primary control of the card under
// the pointer, so Enter or Space acts on it right away.
type Highlighter struct {
	current *Card
}

// Enter marks c's control as focused. Focus is not taken away from c's own
// answer field while the user is typing in it.
func (h *Highlighter) Enter(c *Card) {
	if c.Control == nil {
		return
	}
	if h.current != nil && h.current != c {
		h.Leave(h.current)
	}
	if c.FreeText == nil || !c.FreeText.input.HasFocus() {
		c.Control.Focus()
	}
	c.Control.AddClass(classFocused)
	h.current = c
}

// Leave clears the highlight of c.
func (h *Highlighter) Leave(c *Card) {
	if c.Control == nil {
		return
	}
	c.Control.RemoveClass(classFocused)
	if h.current == c {
		h.current = nil
	}
}

// Current returns the highlighted card, or nil.
func (h *Highlighter) Current() *Card {
	return h.current
}
