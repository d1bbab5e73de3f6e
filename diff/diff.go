// Package diff shows how a typed answer differs from the expected one.
package diff

import (
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/lukas-brg/LearningCards/cards"
)

// Op says how a Segment relates the given answer to the expected one.
type Op int

// Segment operations.
const (
	// Equal text appears in both answers.
	Equal Op = iota
	// Extra text was typed but is not part of the expected answer.
	Extra
	// Missing text is part of the expected answer but was not typed.
	Missing
)

// Segment is a run of text sharing one Op.
type Segment struct {
	Op   Op
	Text string
}

// Compare diffs the given answer against want after normalizing both the way
// free text cards are graded. equal is true when the card would accept the
// answer.
func Compare(given, want string) (equal bool, segments []Segment) {
	given, want = cards.Normalize(strings.TrimSpace(given)), cards.Normalize(want)
	if given == want {
		if given == "" {
			return true, nil
		}
		return true, []Segment{{Op: Equal, Text: given}}
	}
	dmp := diffmatchpatch.New()
	for _, d := range dmp.DiffMain(given, want, false) {
		var op Op
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = Extra
		case diffmatchpatch.DiffInsert:
			op = Missing
		default:
			op = Equal
		}
		segments = append(segments, Segment{Op: op, Text: d.Text})
	}
	return false, segments
}

// Style decorates the text of each kind of segment.
type Style struct {
	Equal, Extra, Missing func(string) string
}

// Plain marks extra text as [-text] and missing text as [+text].
var Plain = Style{
	Equal:   func(s string) string { return s },
	Extra:   func(s string) string { return "[-" + s + "]" },
	Missing: func(s string) string { return "[+" + s + "]" },
}

// Terminal colors the segments for an ANSI terminal: matching text green,
// extra text struck through in red, missing text underlined in yellow.
var Terminal = Style{
	Equal:   sprint(color.New(color.FgGreen)),
	Extra:   sprint(color.New(color.FgRed, color.CrossedOut)),
	Missing: sprint(color.New(color.FgYellow, color.Underline)),
}

func sprint(c *color.Color) func(string) string {
	return func(s string) string {
		return c.Sprint(s)
	}
}

// Render writes segments in style.
func Render(segments []Segment, style Style) string {
	var buf strings.Builder
	for _, seg := range segments {
		switch seg.Op {
		case Extra:
			buf.WriteString(style.Extra(seg.Text))
		case Missing:
			buf.WriteString(style.Missing(seg.Text))
		default:
			buf.WriteString(style.Equal(seg.Text))
		}
	}
	return buf.String()
}
