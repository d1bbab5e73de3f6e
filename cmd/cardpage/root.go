package main

import (
	"os"
	"strings"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lukas-brg/LearningCards/cards"
	"github.com/lukas-brg/LearningCards/config"
	"github.com/lukas-brg/LearningCards/dom/htmldom"
	"github.com/lukas-brg/LearningCards/l10n"
)

// DefaultTextColor is the body text color of the generator's light theme.
const DefaultTextColor = "rgb(36, 41, 47)"

type options struct {
	configFile string
	textColor  string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "cardpage",
		Short: "Tool for checking and studying generated card pages",
		Long: `Cardpage runs the interaction engine of a generated study-card page
outside of a browser. It can check that every card on a page is complete,
quiz you on the cards in the terminal, and serve a generated site for preview.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "page options file (JSON)")
	cmd.PersistentFlags().StringVar(&opts.textColor, "text-color", DefaultTextColor, "body text color the page is rendered with")
	cmd.AddCommand(newValidateCmd(opts), newPlayCmd(opts), newServeCmd())
	return cmd
}

// session is a page loaded and registered from disk.
type session struct {
	path     string
	doc      *htmldom.Document
	conf     *cards.Config
	page     *cards.Page
	problems []error
}

func (o *options) load(path string) (*session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	doc, err := htmldom.Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	var pageConf *config.Conf
	if o.configFile != "" {
		data, e := os.ReadFile(o.configFile)
		if e != nil {
			return nil, e
		}
		if pageConf, e = config.NewFromJSON(data); e != nil {
			return nil, errors.Wrap(e, o.configFile)
		}
	}
	conf, err := cards.NewConfig(doc.Lang(), o.textColor, pageConf, nil)
	if errors.Cause(err) == l10n.ErrUnsupportedLocale {
		return nil, errors.Wrapf(err, "%s (built-in languages: %s)", path, strings.Join(l10n.Languages(), ", "))
	}
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	s := &session{path: path, doc: doc, conf: conf}
	s.page, err = cards.Register(doc, conf)
	if merr, ok := err.(*multierror.Error); ok {
		s.problems = merr.Errors
	} else if err != nil {
		return nil, err
	}
	return s, nil
}
