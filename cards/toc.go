package cards

import "github.com/lukas-brg/LearningCards/dom"

// TOC is the show/hide control of the table of contents.
type TOC struct {
	control  dom.Element
	content  dom.Element
	expanded bool
}

func newTOC(conf *Config, control, content dom.Element) *TOC {
	t := &TOC{control: control, content: content, expanded: true}
	control.SetStyle("fill", conf.TOCFill)
	t.render()
	return t
}

// Expanded reports whether the contents panel is shown.
func (t *TOC) Expanded() bool {
	return t.expanded
}

// Toggle shows or hides the contents panel.
func (t *TOC) Toggle() {
	t.expanded = !t.expanded
	t.render()
}

func (t *TOC) render() {
	dom.Show(t.content, t.expanded)
	if t.expanded {
		t.control.SetHTML(IconTOCUp)
		return
	}
	t.control.SetHTML(IconTOCDown)
}
