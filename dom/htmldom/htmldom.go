// Package htmldom implements the dom interfaces on a parsed HTML page, so the
// card engine can run outside of a browser.
package htmldom

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aymerick/douceur/parser"
	"github.com/flimzy/log"
	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/lukas-brg/LearningCards/dom"
)

// Document is a parsed page. It tracks keyboard focus and event listeners
// itself, since there is no browser to do it.
type Document struct {
	doc      *goquery.Document
	focus    *html.Node
	handlers map[*html.Node]map[string][]func()
}

var _ dom.Document = &Document{}

// Parse reads an HTML page.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "goquery parse")
	}
	return &Document{
		doc:      doc,
		handlers: make(map[*html.Node]map[string][]func()),
	}, nil
}

// ParseString is Parse for an in-memory page.
func ParseString(page string) (*Document, error) {
	return Parse(strings.NewReader(page))
}

// Lang returns the lang attribute of the root element.
func (d *Document) Lang() string {
	return d.doc.Find("html").AttrOr("lang", "")
}

// Find returns all elements matching selector.
func (d *Document) Find(selector string) []dom.Element {
	return d.wrapAll(d.doc.Find(selector))
}

// ByID returns the element with the given id, or nil.
func (d *Document) ByID(id string) dom.Element {
	sel := d.doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr("id", "") == id
	})
	return d.wrap(sel.First())
}

// Trigger runs the listeners registered for event on el, in registration
// order. Events do not bubble.
func (d *Document) Trigger(el dom.Element, event string) {
	e, ok := el.(*Element)
	if !ok || e.doc != d {
		panic("htmldom: element does not belong to this document")
	}
	for _, fn := range d.handlers[e.node()][event] {
		fn()
	}
}

func (d *Document) wrap(sel *goquery.Selection) dom.Element {
	if sel.Length() == 0 {
		return nil
	}
	return &Element{doc: d, sel: sel.First()}
}

func (d *Document) wrapAll(sel *goquery.Selection) []dom.Element {
	elems := make([]dom.Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		elems = append(elems, &Element{doc: d, sel: s})
	})
	return elems
}

// Element is one element of a Document.
type Element struct {
	doc *Document
	sel *goquery.Selection
}

var _ dom.Element = &Element{}

func (e *Element) node() *html.Node {
	return e.sel.Nodes[0]
}

// TagName returns the element name.
func (e *Element) TagName() string {
	return e.node().Data
}

// ID returns the id attribute.
func (e *Element) ID() string {
	return e.Attr("id")
}

// Attr returns the named attribute, or "".
func (e *Element) Attr(name string) string {
	return e.sel.AttrOr(name, "")
}

// RemoveAttr removes the named attribute.
func (e *Element) RemoveAttr(name string) {
	e.sel.RemoveAttr(name)
}

// Text returns the combined text of the element and its descendants.
func (e *Element) Text() string {
	return e.sel.Text()
}

// SetText replaces the content of the element with text.
func (e *Element) SetText(text string) {
	e.sel.SetText(text)
}

// SetHTML replaces the content of the element with parsed markup.
func (e *Element) SetHTML(markup string) {
	e.sel.SetHtml(markup)
}

// Value returns the value attribute, which stands in for the live value of a
// form control.
func (e *Element) Value() string {
	return e.Attr("value")
}

// SetValue sets the value attribute.
func (e *Element) SetValue(value string) {
	e.sel.SetAttr("value", value)
}

// Checked reports whether the checked attribute is present.
func (e *Element) Checked() bool {
	_, ok := e.sel.Attr("checked")
	return ok
}

// SetChecked adds or removes the checked attribute.
func (e *Element) SetChecked(checked bool) {
	if checked {
		e.sel.SetAttr("checked", "checked")
		return
	}
	e.sel.RemoveAttr("checked")
}

// Style returns an inline style property.
func (e *Element) Style(property string) string {
	for _, decl := range parseStyle(e.Attr("style")) {
		if decl.prop == strings.ToLower(property) {
			return decl.value
		}
	}
	return ""
}

// SetStyle sets or, with an empty value, removes an inline style property.
func (e *Element) SetStyle(property, value string) {
	property = strings.ToLower(property)
	decls := parseStyle(e.Attr("style"))
	out := decls[:0]
	var replaced bool
	for _, decl := range decls {
		if decl.prop == property {
			if value == "" || replaced {
				continue
			}
			decl.value = value
			decl.important = false
			replaced = true
		}
		out = append(out, decl)
	}
	if !replaced && value != "" {
		out = append(out, declaration{prop: property, value: value})
	}
	if len(out) == 0 {
		e.sel.RemoveAttr("style")
		return
	}
	e.sel.SetAttr("style", renderStyle(out))
}

// AddClass adds a class.
func (e *Element) AddClass(class string) {
	e.sel.AddClass(class)
}

// RemoveClass removes a class.
func (e *Element) RemoveClass(class string) {
	e.sel.RemoveClass(class)
}

// HasClass reports whether the element carries class.
func (e *Element) HasClass(class string) bool {
	return e.sel.HasClass(class)
}

// Focus moves the document's keyboard focus to the element.
func (e *Element) Focus() {
	e.doc.focus = e.node()
}

// HasFocus reports whether the element holds keyboard focus.
func (e *Element) HasFocus() bool {
	return e.doc.focus == e.node()
}

// Find returns the descendants matching selector.
func (e *Element) Find(selector string) []dom.Element {
	return e.doc.wrapAll(e.sel.Find(selector))
}

// Next returns the next element sibling.
func (e *Element) Next() dom.Element {
	return e.doc.wrap(e.sel.Next())
}

// Prev returns the previous element sibling.
func (e *Element) Prev() dom.Element {
	return e.doc.wrap(e.sel.Prev())
}

// Parent returns the parent element.
func (e *Element) Parent() dom.Element {
	parent := e.sel.Parent()
	if parent.Length() == 0 || parent.Nodes[0].Type != html.ElementNode {
		return nil
	}
	return e.doc.wrap(parent)
}

// On registers a listener, run by Document.Trigger.
func (e *Element) On(event string, fn func()) {
	n := e.node()
	if e.doc.handlers[n] == nil {
		e.doc.handlers[n] = make(map[string][]func())
	}
	e.doc.handlers[n][event] = append(e.doc.handlers[n][event], fn)
}

type declaration struct {
	prop, value string
	important   bool
}

// parseStyle reads the declarations of a style attribute. A style that does
// not parse counts as empty.
func parseStyle(style string) []declaration {
	if strings.TrimSpace(style) == "" {
		return nil
	}
	parsed, err := parser.ParseDeclarations(style)
	if err != nil {
		log.Debugf("Ignoring unparsable style %q: %s\n", style, err)
		return nil
	}
	decls := make([]declaration, 0, len(parsed))
	for _, d := range parsed {
		decls = append(decls, declaration{
			prop:      strings.ToLower(d.Property),
			value:     d.Value,
			important: d.Important,
		})
	}
	return decls
}

func renderStyle(decls []declaration) string {
	parts := make([]string, len(decls))
	for i, decl := range decls {
		parts[i] = decl.prop + ": " + decl.value
		if decl.important {
			parts[i] += " !important"
		}
	}
	return strings.Join(parts, "; ")
}
