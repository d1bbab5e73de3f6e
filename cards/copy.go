package cards

import (
	"github.com/flimzy/log"

	"github.com/lukas-brg/LearningCards/dom"
)

// CheckMark replaces the copy icon while the copy acknowledgment shows.
const CheckMark = "&#10004;"

// CopyButton gives visual feedback for the copy control of a code block.
type CopyButton struct {
	conf    *Config
	sched   Scheduler
	control dom.Element
	target  dom.Element
	// notice is the "copied" message, or nil if the markup has none.
	notice  dom.Element
	pending Timer
	// copies counts acknowledgments, so a revert can tell it is stale.
	copies int
}

func newCopyButton(conf *Config, control, target, notice dom.Element) *CopyButton {
	control.SetHTML(IconCopy)
	return &CopyButton{
		conf:    conf,
		sched:   defaultScheduler(),
		control: control,
		target:  target,
		notice:  notice,
	}
}

// Control is the copy trigger.
func (b *CopyButton) Control() dom.Element {
	return b.control
}

// Target is the code element whose text is copied.
func (b *CopyButton) Target() dom.Element {
	return b.target
}

// Acknowledged reports whether the copy acknowledgment is showing.
func (b *CopyButton) Acknowledged() bool {
	return b.pending != nil
}

// Copied shows the acknowledgment for a successful copy of text and
// schedules its revert. A revert still pending from an earlier copy is
// cancelled first.
func (b *CopyButton) Copied(text string) {
	log.Debugf("copied: %s\n", text)
	if b.pending != nil {
		b.pending.Stop()
	}
	b.control.SetHTML(CheckMark)
	b.control.SetStyle("color", b.conf.AckColor)
	if b.notice != nil {
		dom.Show(b.notice, true)
	}
	b.copies++
	n := b.copies
	b.pending = b.sched.AfterFunc(b.conf.RevertDelay, func() {
		b.revert(n)
	})
}

// revert ends the acknowledgment of the given copy, unless a later copy has
// taken over.
func (b *CopyButton) revert(n int) {
	if n != b.copies {
		return
	}
	b.control.SetHTML(IconCopy)
	b.control.SetStyle("color", "")
	if b.notice != nil {
		dom.Show(b.notice, false)
	}
	b.pending = nil
}
