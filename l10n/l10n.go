// Package l10n holds the UI strings of the card runtime, selected once from
// the document's declared language.
package l10n

import (
	"github.com/flimzy/log"
	"github.com/nicksnyder/go-i18n/i18n/bundle"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// ErrUnsupportedLocale is the cause of the error returned when no string
// table exists for the document language.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// Key identifies a localized message.
type Key string

// The message keys used by the card runtime.
const (
	ShowBackside  Key = "show_backside"
	HideBackside  Key = "hide_backside"
	HideAnswer    Key = "hide_answer"
	CheckAnswer   Key = "check_answer"
	TOC           Key = "toc"
	InputRequired Key = "input_required"
	CheckRequired Key = "check_required"
)

// Keys lists every key a string table must define.
var Keys = []Key{ShowBackside, HideBackside, HideAnswer, CheckAnswer, TOC, InputRequired, CheckRequired}

// FetchCallback receives a two-letter language code, and must return the
// go-i18n translation file (in JSON) for that language, or an error caused by
// ErrUnsupportedLocale if there is none.
type FetchCallback func(lang string) ([]byte, error)

// Locale is an immutable string table.
type Locale struct {
	// Lang is the base language of the table, e.g. "de".
	Lang  string
	tfunc bundle.TranslateFunc
}

// New selects the string table for the document language lang, which may
// carry a region ("de-AT" selects "de"). A nil fetch means Builtin.
func New(lang string, fetch FetchCallback) (*Locale, error) {
	if fetch == nil {
		fetch = Builtin
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, errors.Wrapf(ErrUnsupportedLocale, "%q", lang)
	}
	base, _ := tag.Base()
	code := base.String()
	log.Debugf("Document language %q resolved to %s\n", lang, code)
	tfunc, err := loadDictionary(code, fetch)
	if err != nil {
		return nil, err
	}
	l := &Locale{Lang: code, tfunc: tfunc}
	for _, key := range Keys {
		if l.T(key) == string(key) {
			return nil, errors.Errorf("locale %s: missing message %s", code, key)
		}
	}
	return l, nil
}

func loadDictionary(lang string, fetch FetchCallback) (bundle.TranslateFunc, error) {
	translations, err := fetch(lang)
	if err != nil {
		return nil, err
	}
	bdl := bundle.New()
	if e := bdl.ParseTranslationFileBytes(lang+".all.json", translations); e != nil {
		return nil, errors.Wrapf(e, "locale %s", lang)
	}
	return bdl.Tfunc(lang)
}

// T returns the message for key. Unknown keys are returned unchanged.
func (l *Locale) T(key Key) string {
	return l.tfunc(string(key))
}

// Chain returns a FetchCallback trying each callback in turn, moving on only
// when a callback reports ErrUnsupportedLocale.
func Chain(fetchers ...FetchCallback) FetchCallback {
	return func(lang string) ([]byte, error) {
		for _, fetch := range fetchers {
			if fetch == nil {
				continue
			}
			data, err := fetch(lang)
			if errors.Cause(err) == ErrUnsupportedLocale {
				continue
			}
			return data, err
		}
		return nil, errors.Wrapf(ErrUnsupportedLocale, "%q", lang)
	}
}
