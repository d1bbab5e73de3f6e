package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lukas-brg/LearningCards/cards"
	"github.com/lukas-brg/LearningCards/diff"
	"github.com/lukas-brg/LearningCards/dom"
	"github.com/lukas-brg/LearningCards/palette"
)

func newPlayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play [page]",
		Short: "Study the cards of a generated page in the terminal",
		Long: `Play walks through the cards of a generated page. Plain cards reveal their
backside on Enter, free text cards read an answer and grade it, and multiple
choice cards read the numbers of the options you pick.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(args[0])
			if err != nil {
				return err
			}
			for _, p := range s.problems {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped: %s\n", p)
			}
			newPlayer(s, cmd.InOrStdin(), cmd.OutOrStdout()).run()
			return nil
		},
	}
}

type player struct {
	s      *session
	in     *bufio.Scanner
	out    io.Writer
	alerts []string

	graded, correct int
}

func newPlayer(s *session, in io.Reader, out io.Writer) *player {
	p := &player{
		s:   s,
		in:  bufio.NewScanner(in),
		out: out,
	}
	engine := &cards.Engine{
		Conf: s.conf,
		Alerter: cards.AlertFunc(func(message string) {
			p.alerts = append(p.alerts, message)
		}),
	}
	engine.Wire(s.page)
	return p
}

func (p *player) run() {
	total := len(p.s.page.Cards)
	for i, c := range p.s.page.Cards {
		fmt.Fprintf(p.out, "\n[%d/%d] %s\n", i+1, total, front(c))
		var ok bool
		switch c.Kind {
		case cards.KindFreeText:
			ok = p.freeText(c.FreeText)
		case cards.KindMultipleChoice:
			ok = p.choice(c.Choice)
		default:
			ok = p.plain(c)
		}
		if !ok {
			break
		}
	}
	if p.graded > 0 {
		fmt.Fprintf(p.out, "\nScore: %d/%d\n", p.correct, p.graded)
	}
}

func (p *player) readLine(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		return "", false
	}
	return p.in.Text(), true
}

func (p *player) click(el dom.Element) {
	p.s.doc.Trigger(el, "click")
}

// rejected prints and clears the alerts raised by the last click.
func (p *player) rejected() bool {
	if len(p.alerts) == 0 {
		return false
	}
	for _, msg := range p.alerts {
		color.New(color.FgYellow).Fprintf(p.out, "! %s\n", msg)
	}
	p.alerts = nil
	return true
}

func (p *player) plain(c *cards.Card) bool {
	b := c.Backside
	if b == nil {
		return true
	}
	if _, ok := p.readLine("(Enter) " + cards.Label(b.Control()) + " "); !ok {
		return false
	}
	p.click(b.Control())
	fmt.Fprintln(p.out, squash(b.Content().Text()))
	p.click(b.Control())
	return true
}

func (p *player) freeText(ft *cards.FreeText) bool {
	for {
		line, ok := p.readLine("answer> ")
		if !ok {
			return false
		}
		ft.Input().SetValue(line)
		p.click(ft.Control())
		if !p.rejected() {
			break
		}
	}
	p.graded++
	pal := p.s.conf.Palette
	if ft.State() == cards.Correct {
		p.correct++
		cssColor(pal.Correct).Fprintln(p.out, "✔ correct")
	} else {
		cssColor(pal.Incorrect).Fprintf(p.out, "✘ expected %q\n", ft.Answer())
		_, segments := diff.Compare(ft.Input().Value(), ft.Answer())
		fmt.Fprintf(p.out, "  %s\n", diff.Render(segments, diff.Terminal))
	}
	p.click(ft.Control())
	return true
}

func (p *player) choice(ch *cards.Choice) bool {
	options := ch.Options()
	for i, o := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, squash(o.Text()))
	}
	for {
		line, ok := p.readLine("choices> ")
		if !ok {
			return false
		}
		picked, err := parseChoices(line, len(options))
		if err != nil {
			color.New(color.FgYellow).Fprintf(p.out, "! %s\n", err)
			continue
		}
		for i, o := range options {
			o.Select(picked[i])
		}
		p.click(ch.Control())
		if !p.rejected() {
			break
		}
	}
	p.graded++
	allRight := true
	for i, o := range options {
		mark := " "
		if o.Selected() {
			mark = "✔"
			if !o.Correct() {
				mark = "✘"
			}
		}
		if o.Selected() != o.Correct() {
			allRight = false
		}
		cssColor(o.Color()).Fprintf(p.out, "  %s %d) %s\n", mark, i+1, squash(o.Text()))
	}
	if allRight {
		p.correct++
	}
	if text := squash(ch.Explanation().Text()); text != "" {
		fmt.Fprintln(p.out, text)
	}
	p.click(ch.Control())
	return true
}

// parseChoices reads 1-based option numbers separated by spaces or commas.
func parseChoices(line string, n int) ([]bool, error) {
	picked := make([]bool, n)
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ','
	})
	for _, f := range fields {
		i, err := strconv.Atoi(f)
		if err != nil || i < 1 || i > n {
			return nil, errors.Errorf("no option %q", f)
		}
		picked[i-1] = true
	}
	return picked, nil
}

func front(c *cards.Card) string {
	if el := dom.First(c.Root, ".front"); el != nil {
		return squash(el.Text())
	}
	return c.ID
}

func squash(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

var cssColors = map[string]color.Attribute{
	palette.CorrectOnDark:  color.FgGreen,
	palette.CorrectOnLight: color.FgHiGreen,
	palette.Incorrect:      color.FgRed,
}

// cssColor maps a feedback color to the nearest terminal color. Anything
// else, such as the neutral text color, prints uncolored.
func cssColor(css string) *color.Color {
	if attr, ok := cssColors[css]; ok {
		return color.New(attr)
	}
	return color.New(color.Reset)
}
