package cards

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lukas-brg/LearningCards/config"
	"github.com/lukas-brg/LearningCards/dom"
)

func TestCopyFeedback(t *testing.T) {
	h := newHarness(t, fixture)
	b := h.page.Copy[0]
	notice := h.doc.ByID("copy-notification_1")

	text := h.clipboard.copy(t, "copy-button_1")
	require.Equal(t, `fmt.Println("hi")`, text)

	require.True(t, b.Acknowledged())
	require.Equal(t, "✔", b.Control().Text())
	require.Equal(t, DefaultAckColor, b.Control().Style("color"))
	require.True(t, dom.Visible(notice))
	require.Len(t, h.sched.timers, 1)
	require.Equal(t, 1500*time.Millisecond, h.sched.timers[0].delay)

	h.sched.fire()
	require.False(t, b.Acknowledged())
	require.Len(t, b.Control().Find("svg.copy-icon"), 1)
	require.Equal(t, "", b.Control().Style("color"))
	require.False(t, dom.Visible(notice))
}

func TestCopyTwice(t *testing.T) {
	h := newHarness(t, fixture)
	b := h.page.Copy[0]
	notice := h.doc.ByID("copy-notification_1")

	h.clipboard.copy(t, "copy-button_1")
	h.clipboard.copy(t, "copy-button_1")
	require.Len(t, h.sched.timers, 2)
	require.True(t, h.sched.timers[0].stopped)
	require.Equal(t, 1, h.sched.live())

	h.sched.fire()
	require.False(t, b.Acknowledged())
	require.False(t, dom.Visible(notice))
	require.Equal(t, 0, h.sched.live())
}

func TestCopyWithoutNotice(t *testing.T) {
	markup := `<html lang="en"><body><div class="multiline"><pre><code>make</code></pre><button class="btn-copy" id="cp"></button></div></body></html>`
	h := newHarness(t, markup)
	b := h.page.Copy[0]

	h.clipboard.copy(t, "cp")
	require.True(t, b.Acknowledged())
	h.sched.fire()
	require.False(t, b.Acknowledged())
}

func TestCopyWithoutClipboard(t *testing.T) {
	h := newHarness(t, fixture)
	page, err := Register(h.doc, h.engine.Conf)
	require.NoError(t, err)
	e := &Engine{Conf: h.engine.Conf}
	e.Wire(page)
	require.NotNil(t, e.Scheduler)
	require.Equal(t, e.Scheduler, page.Copy[0].sched)
	require.False(t, page.Copy[0].Acknowledged())
}

func TestCopyStaleRevert(t *testing.T) {
	h := newHarness(t, fixture)
	b := h.page.Copy[0]

	h.clipboard.copy(t, "copy-button_1")
	h.clipboard.copy(t, "copy-button_1")
	// The first revert was already on its way when the second copy stopped
	// it, and runs anyway.
	h.sched.timers[0].f()
	require.True(t, b.Acknowledged())
	require.Equal(t, "✔", b.Control().Text())

	h.sched.fire()
	require.False(t, b.Acknowledged())
	require.Len(t, b.Control().Find("svg.copy-icon"), 1)
}

func TestCopyOnLoop(t *testing.T) {
	doc := newHarness(t, fixture).doc
	conf, err := NewConfig("en", textColor, config.New(map[string]string{config.CopyRevert: "1"}), nil)
	require.NoError(t, err)
	page, err := Register(doc, conf)
	require.NoError(t, err)
	loop := NewLoop()
	clipboard := &fakeClipboard{}
	(&Engine{Conf: conf, Clipboard: clipboard, Scheduler: loop}).Wire(page)
	b := page.Copy[0]

	for i := 0; i < 50; i++ {
		clipboard.copy(t, "copy-button_1")
		time.Sleep(time.Millisecond)
		loop.RunDue()
	}
	clipboard.copy(t, "copy-button_1")
	deadline := time.After(time.Second)
	for b.Acknowledged() {
		select {
		case <-loop.Ready():
			loop.RunDue()
		case <-deadline:
			t.Fatal("copy acknowledgment never reverted")
		}
	}
	require.Len(t, b.Control().Find("svg.copy-icon"), 1)
	require.Equal(t, "", b.Control().Style("color"))
	require.False(t, dom.Visible(doc.ByID("copy-notification_1")))
}


func TestTimeScheduler(t *testing.T) {
	fired := make(chan struct{})
	timer := timeScheduler{}.AfterFunc(time.Millisecond, func() {
		close(fired)
	})
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
	require.False(t, timer.Stop())
}
