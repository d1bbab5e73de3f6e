// +build js

package util

import (
	"strings"

	"github.com/gopherjs/gopherjs/js"
)

// ConfigID is the id of the script element carrying the page options.
const ConfigID = "learningcards-config"

// TranslationsID is the id of the script element carrying extra string
// tables, as a JSON object mapping language codes to go-i18n translation
// files.
const TranslationsID = "learningcards-translations"

var document = js.Global.Get("document")

// TextColor returns the computed text color of the body, e.g.
// "rgb(36, 41, 47)".
func TextColor() string {
	body := document.Get("body")
	return js.Global.Call("getComputedStyle", body).Call("getPropertyValue", "color").String()
}

// ScriptJSON returns the text of the script element with the given id, or nil
// if there is no such element.
func ScriptJSON(id string) []byte {
	el := document.Call("getElementById", id)
	if el == nil {
		return nil
	}
	text := strings.TrimSpace(el.Get("textContent").String())
	if text == "" {
		return nil
	}
	return []byte(text)
}

// Alert shows a blocking message box.
func Alert(message string) {
	js.Global.Call("alert", message)
}
