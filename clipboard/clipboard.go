// +build js

// Package clipboard binds copy controls to the ClipboardJS library loaded by
// the page.
package clipboard

import (
	"github.com/flimzy/log"
	"github.com/gopherjs/gopherjs/js"
	"github.com/gopherjs/jsbuiltin"

	"github.com/lukas-brg/LearningCards/dom"
	"github.com/lukas-brg/LearningCards/dom/jqdom"
)

// JS copies through ClipboardJS. The zero value is ready to use.
type JS struct{}

// Available reports whether ClipboardJS is loaded.
func Available() bool {
	return jsbuiltin.TypeOf(js.Global.Get("ClipboardJS")) != "undefined"
}

// Bind makes trigger copy the text of target, calling onSuccess after every
// successful copy. Without ClipboardJS the control stays inert.
func (JS) Bind(trigger, target dom.Element, onSuccess func(text string)) {
	if !Available() {
		log.Printf("ClipboardJS is not loaded; copy buttons are disabled\n")
		return
	}
	t, ok1 := trigger.(*jqdom.Element)
	dst, ok2 := target.(*jqdom.Element)
	if !ok1 || !ok2 {
		log.Printf("clipboard: cannot bind non-browser elements\n")
		return
	}
	cb := js.Global.Get("ClipboardJS").New(t.Underlying(), js.M{
		"target": func(*js.Object) *js.Object {
			return dst.Underlying()
		},
	})
	cb.Call("on", "success", func(e *js.Object) {
		text := e.Get("text").String()
		e.Call("clearSelection")
		onSuccess(text)
	})
	cb.Call("on", "error", func(e *js.Object) {
		log.Printf("copy failed: %s\n", e.Get("action").String())
	})
}
