package l10n

import (
	"encoding/json"

	"github.com/pkg/errors"
)

var builtin = map[string]string{
	"de": `[
	{"id": "show_backside", "translation": "Rückseite einblenden"},
	{"id": "hide_backside", "translation": "Rückseite ausblenden"},
	{"id": "hide_answer", "translation": "Antwort ausblenden"},
	{"id": "check_answer", "translation": "Prüfen"},
	{"id": "toc", "translation": "Inhalte"},
	{"id": "input_required", "translation": "Bitte gebe eine Antwort ein."},
	{"id": "check_required", "translation": "Bitte wähle mindestens eine Antwort aus."}
]`,
	"en": `[
	{"id": "show_backside", "translation": "Show Backside"},
	{"id": "hide_backside", "translation": "Hide Backside"},
	{"id": "hide_answer", "translation": "Hide Answer"},
	{"id": "check_answer", "translation": "Check Answer"},
	{"id": "toc", "translation": "Contents"},
	{"id": "input_required", "translation": "Please enter an answer."},
	{"id": "check_required", "translation": "At least one answer is required to be selected."}
]`,
}

// Builtin serves the string tables compiled into the runtime.
func Builtin(lang string) ([]byte, error) {
	data, ok := builtin[lang]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedLocale, "%q", lang)
	}
	return []byte(data), nil
}

// Languages returns the languages served by Builtin.
func Languages() []string {
	return []string{"de", "en"}
}

// Tables returns a FetchCallback serving the string tables in data, a JSON
// object mapping language codes to translation files. Empty data serves
// nothing.
func Tables(data []byte) (FetchCallback, error) {
	tables := make(map[string]json.RawMessage)
	if len(data) > 0 {
		if err := json.Unmarshal(data, &tables); err != nil {
			return nil, errors.Wrap(err, "string tables")
		}
	}
	return func(lang string) ([]byte, error) {
		table, ok := tables[lang]
		if !ok {
			return nil, errors.Wrapf(ErrUnsupportedLocale, "%q", lang)
		}
		return []byte(table), nil
	}, nil
}
