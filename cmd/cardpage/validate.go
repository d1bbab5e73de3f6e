package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lukas-brg/LearningCards/cards"
)

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [page]",
		Short: "Check the cards of a generated page",
		Long: `Validate loads a generated page the way the browser runtime does and
reports every card whose markup is incomplete, along with the number of cards
of each kind.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			counts := s.page.Count()
			fmt.Fprintf(out, "Cards in %s:\n", s.path)
			for _, kind := range []cards.Kind{cards.KindPlain, cards.KindFreeText, cards.KindMultipleChoice} {
				fmt.Fprintf(out, "  %-16s %d\n", kind.String()+":", counts[kind])
			}
			fmt.Fprintf(out, "  %-16s %d\n", "copy buttons:", len(s.page.Copy))
			toc := "no"
			if s.page.TOC != nil {
				toc = "yes"
			}
			fmt.Fprintf(out, "  %-16s %s\n", "contents:", toc)

			if len(s.problems) == 0 {
				color.New(color.FgGreen).Fprintf(out, "✅ %s is valid.\n", s.path)
				return nil
			}
			color.New(color.FgRed).Fprintf(out, "❌ %s has %d problems:\n", s.path, len(s.problems))
			for i, p := range s.problems {
				fmt.Fprintf(out, "%d. %s\n", i+1, p)
			}
			return errors.Errorf("%s: validation failed", s.path)
		},
	}
}
