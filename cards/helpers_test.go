package cards

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lukas-brg/LearningCards/dom"
	"github.com/lukas-brg/LearningCards/dom/htmldom"
)

const textColor = "rgb(36, 41, 47)"

const fixture = `<!DOCTYPE html>
<html lang="en">
<head><title>Cards</title></head>
<body>
<div class="toc"><span><h1>Contents<button id="toc-btn"><i class="fa-solid fa-chevron-up"></i></button></h1></span>
	<div class="toc-content"><ul class="toc-ul"><li><a class="toc-link" href="#q1">Go</a></li></ul></div>
</div>

<div class="card QuestionCard" id="q1">
	<div class="front QuestionCard"><h2>What is Go?</h2></div>
	<div class="back QuestionCard">
		<button class="collapsible card-btn">Show Backside</button>
		<div class="content"><div class="answer"><p>A programming language.</p></div></div>
		<br>
	</div>
</div>

<div class="card AnswerCard" id="a1">
	<div class="front AnswerCard"><h2>What drives itself?</h2></div>
	<div class="back AnswerCard">
		<form action="javascript:void(0);">
			<input type="text" class="answer-input" name="answer_fielda1" autocomplete="off"><br>
			<input value="Check Answer" type="submit" class="answer-btn card-btn" id="answer_btna1" onclick="answerOnClick(this)">
		</form>
		<div class="answer-content" name="answer_contenta1"><p>A <span name="answera1" class="answer-span"> Self-Driving Car </span>.</p></div>
	</div>
</div>

<div class="card MultipleChoiceCard" id="m1">
	<div class="front MultipleChoiceCard"><h2>Which is a vowel?</h2></div>
	<div class="back MultipleChoiceCard">
		<form class="multi" name="multiformm1" action="javascript:void(0)">
			<input class="choice" type="checkbox" id="choice_a" value="correct" autocomplete="off"><label name="label" for="choice_a">A</label>
			<input class="choice" type="checkbox" id="choice_b" value="incorrect" autocomplete="off"><label name="label" for="choice_b">B</label>
			<br>
			<input value="Check Answer" id="multi_btnm1" type="submit" class="multi-btn card-btn" onclick="multiOnClick(this)">
			<div class="multicontent"><p>A is a vowel.</p></div>
		</form>
	</div>
</div>

<div class="multiline" id="code-div_1">
	<div class="code-block-container"><pre><code id="code-block_1">fmt.Println("hi")</code></pre></div>
	<div class="copy-notification" id="copy-notification_1">Copied!</div>
	<button class="btn-copy" id="copy-button_1" data-clipboard-target="#code-block_1">Copy</button>
</div>
</body>
</html>`

type fakeTimer struct {
	delay   time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &fakeTimer{delay: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

// fire runs every timer that has not been stopped.
func (s *fakeScheduler) fire() {
	for _, t := range s.timers {
		if t.stopped || t.fired {
			continue
		}
		t.fired = true
		t.f()
	}
}

func (s *fakeScheduler) live() int {
	var n int
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

type binding struct {
	target    dom.Element
	onSuccess func(string)
}

type fakeClipboard struct {
	bound map[string]binding
}

func (c *fakeClipboard) Bind(trigger, target dom.Element, onSuccess func(string)) {
	if c.bound == nil {
		c.bound = make(map[string]binding)
	}
	c.bound[trigger.ID()] = binding{target: target, onSuccess: onSuccess}
}

func (c *fakeClipboard) copy(t *testing.T, triggerID string) string {
	b, ok := c.bound[triggerID]
	require.True(t, ok, "trigger %s not bound", triggerID)
	text := b.target.Text()
	b.onSuccess(text)
	return text
}

type alerts []string

func (a *alerts) Alert(message string) {
	*a = append(*a, message)
}

type harness struct {
	doc       *htmldom.Document
	page      *Page
	engine    *Engine
	alerts    *alerts
	sched     *fakeScheduler
	clipboard *fakeClipboard
}

func newHarness(t *testing.T, markup string) *harness {
	doc, err := htmldom.ParseString(markup)
	require.NoError(t, err)
	conf, err := NewConfig(doc.Lang(), textColor, nil, nil)
	require.NoError(t, err)
	page, err := Register(doc, conf)
	require.NoError(t, err)
	h := &harness{
		doc:       doc,
		page:      page,
		alerts:    new(alerts),
		sched:     &fakeScheduler{},
		clipboard: &fakeClipboard{},
	}
	h.engine = &Engine{
		Conf:      conf,
		Alerter:   h.alerts,
		Clipboard: h.clipboard,
		Scheduler: h.sched,
	}
	h.engine.Wire(page)
	return h
}

func (h *harness) card(t *testing.T, id string) *Card {
	c := h.page.Card(id)
	require.NotNil(t, c, "card %s", id)
	return c
}

func (h *harness) click(el dom.Element) {
	h.doc.Trigger(el, "click")
}
