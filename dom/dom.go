// Package dom is the boundary between the card engine and the rendered page.
//
// The engine never creates or destroys page structure. It only reads the
// generator's markup once, keeps the handles it found, and afterwards
// changes visibility, text and colors through them.
package dom

// Element is a non-owning handle to one element of the page.
type Element interface {
	// TagName is the lower case element name, e.g. "input".
	TagName() string
	ID() string
	Attr(name string) string
	RemoveAttr(name string)

	Text() string
	SetText(text string)
	SetHTML(html string)

	// Value and SetValue access the current value of a form control.
	Value() string
	SetValue(value string)
	Checked() bool
	SetChecked(checked bool)

	// Style returns an inline style property, or "" if unset. Setting a
	// property to "" removes it.
	Style(property string) string
	SetStyle(property, value string)

	AddClass(class string)
	RemoveClass(class string)
	HasClass(class string) bool

	Focus()
	HasFocus() bool

	// Find returns the descendants matching a CSS selector, in document order.
	Find(selector string) []Element
	// Next, Prev and Parent return nil when there is no such element.
	Next() Element
	Prev() Element
	Parent() Element

	// On registers fn to be called whenever event fires on the element.
	On(event string, fn func())
}

// Document is the rendered page.
type Document interface {
	// Lang is the language declared on the root element.
	Lang() string
	Find(selector string) []Element
	ByID(id string) Element
}

// First returns the first element matching selector below root, or nil.
func First(root interface {
	Find(string) []Element
}, selector string) Element {
	if found := root.Find(selector); len(found) > 0 {
		return found[0]
	}
	return nil
}

// Display values used to show and hide regions.
const (
	Shown  = "block"
	Hidden = "none"
)

// Show sets the display of el to visible or hidden.
func Show(el Element, visible bool) {
	if visible {
		el.SetStyle("display", Shown)
		return
	}
	el.SetStyle("display", Hidden)
}

// Visible reports whether el was last shown with Show.
func Visible(el Element) bool {
	return el.Style("display") == Shown
}
