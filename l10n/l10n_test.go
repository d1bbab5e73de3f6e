package l10n

import (
	"testing"

	"github.com/flimzy/testy"
	"github.com/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		lang        string
		fetch       FetchCallback
		unsupported bool
		err         string
		expected    string
	}{
		{
			name:     "english",
			lang:     "en",
			expected: "Show Backside",
		},
		{
			name:     "german",
			lang:     "de",
			expected: "Rückseite einblenden",
		},
		{
			name:     "region subtag",
			lang:     "de-AT",
			expected: "Rückseite einblenden",
		},
		{
			name:     "upper case",
			lang:     "EN",
			expected: "Show Backside",
		},
		{
			name:        "unsupported language",
			lang:        "fr",
			unsupported: true,
		},
		{
			name:        "empty language",
			lang:        "",
			unsupported: true,
		},
		{
			name:        "garbage language",
			lang:        "not a language",
			unsupported: true,
		},
		{
			name: "incomplete table",
			lang: "en",
			fetch: func(_ string) ([]byte, error) {
				return []byte(`[{"id":"show_backside","translation":"Show"}]`), nil
			},
			err: "locale en: missing message hide_backside",
		},
		{
			name: "fetch error",
			lang: "en",
			fetch: func(_ string) ([]byte, error) {
				return nil, errors.New("fetch error")
			},
			err: "fetch error",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l, err := New(test.lang, test.fetch)
			if test.unsupported {
				if errors.Cause(err) != ErrUnsupportedLocale {
					t.Fatalf("Expected unsupported locale, got: %v", err)
				}
				return
			}
			testy.Error(t, test.err, err)
			if result := l.T(ShowBackside); result != test.expected {
				t.Errorf("Unexpected translation: %s", result)
			}
		})
	}
}

func TestBuiltinTablesComplete(t *testing.T) {
	for _, lang := range Languages() {
		t.Run(lang, func(t *testing.T) {
			l, err := New(lang, Builtin)
			if err != nil {
				t.Fatal(err)
			}
			for _, key := range Keys {
				if l.T(key) == string(key) {
					t.Errorf("No translation for %s", key)
				}
			}
		})
	}
}

func TestChain(t *testing.T) {
	custom := func(lang string) ([]byte, error) {
		if lang != "fr" {
			return nil, errors.Wrap(ErrUnsupportedLocale, lang)
		}
		return []byte(`[
			{"id": "show_backside", "translation": "Afficher le verso"},
			{"id": "hide_backside", "translation": "Masquer le verso"},
			{"id": "hide_answer", "translation": "Masquer la réponse"},
			{"id": "check_answer", "translation": "Vérifier"},
			{"id": "toc", "translation": "Sommaire"},
			{"id": "input_required", "translation": "Veuillez saisir une réponse."},
			{"id": "check_required", "translation": "Veuillez choisir au moins une réponse."}
		]`), nil
	}
	fetch := Chain(nil, custom, Builtin)
	t.Run("custom table", func(t *testing.T) {
		l, err := New("fr", fetch)
		if err != nil {
			t.Fatal(err)
		}
		if result := l.T(CheckAnswer); result != "Vérifier" {
			t.Errorf("Unexpected translation: %s", result)
		}
	})
	t.Run("falls through to builtin", func(t *testing.T) {
		l, err := New("en", fetch)
		if err != nil {
			t.Fatal(err)
		}
		if result := l.T(CheckAnswer); result != "Check Answer" {
			t.Errorf("Unexpected translation: %s", result)
		}
	})
	t.Run("nothing matches", func(t *testing.T) {
		_, err := New("it", fetch)
		if errors.Cause(err) != ErrUnsupportedLocale {
			t.Errorf("Unexpected error: %v", err)
		}
	})
}

func TestTables(t *testing.T) {
	t.Run("invalid", func(t *testing.T) {
		_, err := Tables([]byte(`[1, 2]`))
		testy.Error(t, "string tables: json: cannot unmarshal array into Go value of type map[string]json.RawMessage", err)
	})
	t.Run("empty", func(t *testing.T) {
		fetch, err := Tables(nil)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fetch("en"); errors.Cause(err) != ErrUnsupportedLocale {
			t.Errorf("Expected unsupported locale, got: %v", err)
		}
	})
	t.Run("override", func(t *testing.T) {
		fetch, err := Tables([]byte(`{"en": [
			{"id": "show_backside", "translation": "Flip"},
			{"id": "hide_backside", "translation": "Unflip"},
			{"id": "hide_answer", "translation": "Hide"},
			{"id": "check_answer", "translation": "Check"},
			{"id": "toc", "translation": "Index"},
			{"id": "input_required", "translation": "Type something."},
			{"id": "check_required", "translation": "Pick something."}
		]}`))
		if err != nil {
			t.Fatal(err)
		}
		l, err := New("en-GB", Chain(fetch, Builtin))
		if err != nil {
			t.Fatal(err)
		}
		if result := l.T(ShowBackside); result != "Flip" {
			t.Errorf("Unexpected translation: %s", result)
		}
		l, err = New("de", Chain(fetch, Builtin))
		if err != nil {
			t.Fatal(err)
		}
		if result := l.T(CheckAnswer); result != "Prüfen" {
			t.Errorf("Unexpected translation: %s", result)
		}
	})
}
