// Package palette derives the grading feedback colors from the page's
// inherited text color.
package palette

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// ErrColorParse is the cause of every error returned for a color string that
// is neither rgb()/rgba() nor hex notation.
var ErrColorParse = errors.New("unrecognized color")

// Mode is the light/dark classification of a color.
type Mode int

// The two classifications.
const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	switch m {
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return "unknown"
}

// Fixed feedback colors.
const (
	CorrectOnDark  = "green"
	CorrectOnLight = "lime"
	Incorrect      = "red"
)

// Colors at or below this HSP brightness are dark.
const darkThreshold = 127.5

var (
	rgbRE = regexp.MustCompile(`^rgba?\((\d+),\s*(\d+),\s*(\d+)(?:,\s*(\d+(?:\.\d+)?))?\)$`)
	hexRE = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// Parse extracts the red, green and blue channels from a CSS color in
// rgb(...)/rgba(...) or #rgb/#rrggbb notation.
func Parse(color string) (r, g, b uint8, err error) {
	color = strings.TrimSpace(color)
	if strings.HasPrefix(color, "rgb") {
		m := rgbRE.FindStringSubmatch(color)
		if m == nil {
			return 0, 0, 0, errors.Wrapf(ErrColorParse, "%q", color)
		}
		var ch [3]uint8
		for i := range ch {
			v, err := strconv.ParseUint(m[i+1], 10, 8)
			if err != nil {
				return 0, 0, 0, errors.Wrapf(ErrColorParse, "%q: channel %d out of range", color, i+1)
			}
			ch[i] = uint8(v)
		}
		return ch[0], ch[1], ch[2], nil
	}
	if !hexRE.MatchString(color) {
		return 0, 0, 0, errors.Wrapf(ErrColorParse, "%q", color)
	}
	c, err := colorful.Hex(color)
	if err != nil {
		return 0, 0, 0, errors.Wrapf(ErrColorParse, "%q: %s", color, err)
	}
	r, g, b = c.RGB255()
	return r, g, b, nil
}

// Brightness is the HSP perceived brightness of a color, from 0 to 255.
// See http://alienryderflex.com/hsp.html
func Brightness(r, g, b uint8) float64 {
	fr, fg, fb := float64(r), float64(g), float64(b)
	return math.Sqrt(0.299*fr*fr + 0.587*fg*fg + 0.114*fb*fb)
}

// Classify reports whether color is a light or a dark color.
func Classify(color string) (Mode, error) {
	r, g, b, err := Parse(color)
	if err != nil {
		return Light, err
	}
	if Brightness(r, g, b) <= darkThreshold {
		return Dark, nil
	}
	return Light, nil
}

// Palette is the set of feedback colors used to render grading results.
type Palette struct {
	Correct   string
	Incorrect string
	// Neutral is the page's own text color, used to reset option labels.
	Neutral string
}

// New derives the palette for a page whose body text is rendered in
// textColor. Dark text means a light background, which gets the darker green.
func New(textColor string) (Palette, error) {
	mode, err := Classify(textColor)
	if err != nil {
		return Palette{}, errors.Wrap(err, "feedback palette")
	}
	p := Palette{
		Correct:   CorrectOnLight,
		Incorrect: Incorrect,
		Neutral:   textColor,
	}
	if mode == Dark {
		p.Correct = CorrectOnDark
	}
	return p, nil
}
