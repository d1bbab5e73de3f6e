package cards

import (
	"time"

	"github.com/pkg/errors"

	"github.com/lukas-brg/LearningCards/config"
	"github.com/lukas-brg/LearningCards/l10n"
	"github.com/lukas-brg/LearningCards/palette"
)

// Defaults for the page options.
const (
	DefaultRevertDelay = 1500 * time.Millisecond
	DefaultAckColor    = "#3fb950"
	DefaultTOCFill     = "white"
)

// Config is the process-wide, read-only configuration shared by every card
// component. It is built once when the page loads.
type Config struct {
	Locale  *l10n.Locale
	Palette palette.Palette

	// RevertDelay is how long copy feedback stays visible.
	RevertDelay time.Duration
	AckColor    string
	TOCFill     string
}

// NewConfig builds the page configuration from the document language, the
// inherited body text color and the optional page options. conf and fetch
// may be nil.
//
// An unsupported language or an unparsable text color is returned as an
// error; the page cannot render feedback without either.
func NewConfig(lang, textColor string, conf *config.Conf, fetch l10n.FetchCallback) (*Config, error) {
	locale, err := l10n.New(lang, fetch)
	if err != nil {
		return nil, errors.Wrap(err, "locale")
	}
	p, err := palette.New(textColor)
	if err != nil {
		return nil, err
	}
	delay, err := conf.GetDuration(config.CopyRevert, DefaultRevertDelay)
	if err != nil {
		return nil, err
	}
	return &Config{
		Locale:      locale,
		Palette:     p,
		RevertDelay: delay,
		AckColor:    conf.GetStringDefault(config.CopyAckColor, DefaultAckColor),
		TOCFill:     conf.GetStringDefault(config.TOCIconFill, DefaultTOCFill),
	}, nil
}
