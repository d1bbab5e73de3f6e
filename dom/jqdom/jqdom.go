// +build js

// Package jqdom implements the dom interfaces on the live browser page with
// jQuery.
package jqdom

import (
	"strings"

	"github.com/gopherjs/gopherjs/js"
	"github.com/gopherjs/jquery"

	"github.com/lukas-brg/LearningCards/dom"
)

var jQuery = jquery.NewJQuery

// Document is the page the script runs in.
type Document struct {
	document *js.Object
}

var _ dom.Document = &Document{}

// New returns the current page.
func New() *Document {
	return &Document{document: js.Global.Get("document")}
}

// Lang returns document.documentElement.lang.
func (d *Document) Lang() string {
	return d.document.Get("documentElement").Get("lang").String()
}

// Find returns all elements matching selector.
func (d *Document) Find(selector string) []dom.Element {
	return wrapAll(jQuery(selector))
}

// ByID returns the element with the given id, or nil.
func (d *Document) ByID(id string) dom.Element {
	el := d.document.Call("getElementById", id)
	if el == nil {
		return nil
	}
	return &Element{jq: jQuery(el)}
}

func wrap(sel jquery.JQuery) dom.Element {
	if sel.Length == 0 {
		return nil
	}
	return &Element{jq: jQuery(sel.Underlying().Index(0))}
}

func wrapAll(sel jquery.JQuery) []dom.Element {
	elems := make([]dom.Element, 0, sel.Length)
	for i := 0; i < sel.Length; i++ {
		elems = append(elems, &Element{jq: jQuery(sel.Underlying().Index(i))})
	}
	return elems
}

// Element is a single DOM element.
type Element struct {
	jq jquery.JQuery
}

var _ dom.Element = &Element{}

// Underlying returns the DOM node, for handing to other JS libraries.
func (e *Element) Underlying() *js.Object {
	return e.jq.Get(0)
}

func (e *Element) TagName() string {
	return strings.ToLower(e.Underlying().Get("tagName").String())
}

func (e *Element) ID() string {
	return e.Underlying().Get("id").String()
}

func (e *Element) Attr(name string) string {
	return e.jq.Attr(name)
}

func (e *Element) RemoveAttr(name string) {
	e.jq.RemoveAttr(name)
}

func (e *Element) Text() string {
	return e.Underlying().Get("innerText").String()
}

func (e *Element) SetText(text string) {
	e.Underlying().Set("innerText", text)
}

func (e *Element) SetHTML(markup string) {
	e.Underlying().Set("innerHTML", markup)
}

func (e *Element) Value() string {
	return e.Underlying().Get("value").String()
}

func (e *Element) SetValue(value string) {
	e.Underlying().Set("value", value)
}

func (e *Element) Checked() bool {
	return e.Underlying().Get("checked").Bool()
}

func (e *Element) SetChecked(checked bool) {
	e.Underlying().Set("checked", checked)
}

func (e *Element) AddClass(class string) {
	e.jq.AddClass(class)
}

func (e *Element) RemoveClass(class string) {
	e.jq.RemoveClass(class)
}

func (e *Element) HasClass(class string) bool {
	return e.jq.HasClass(class)
}

// Style reads the inline style, not the computed one.
func (e *Element) Style(property string) string {
	return e.Underlying().Get("style").Call("getPropertyValue", property).String()
}

// SetStyle writes the inline style. An empty value removes the property.
func (e *Element) SetStyle(property, value string) {
	style := e.Underlying().Get("style")
	if value == "" {
		style.Call("removeProperty", property)
		return
	}
	style.Call("setProperty", property, value)
}

// Focus moves keyboard focus to the element.
func (e *Element) Focus() {
	e.Underlying().Call("focus")
}

// HasFocus compares the element with document.activeElement.
func (e *Element) HasFocus() bool {
	return js.Global.Get("document").Get("activeElement") == e.Underlying()
}

func (e *Element) Find(selector string) []dom.Element {
	return wrapAll(e.jq.Find(selector))
}

func (e *Element) Next() dom.Element {
	return wrap(e.jq.Next())
}

func (e *Element) Prev() dom.Element {
	return wrap(e.jq.Prev())
}

func (e *Element) Parent() dom.Element {
	return wrap(e.jq.Parent())
}

// On binds fn with jQuery. The handler does not prevent the default action,
// since the generator's forms post to javascript:void(0).
func (e *Element) On(event string, fn func()) {
	e.jq.On(event, func(_ *jquery.Event) {
		fn()
	})
}
