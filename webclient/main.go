// +build js

package main

import (
	"github.com/flimzy/log"
	"github.com/gopherjs/gopherjs/js"
	"github.com/gopherjs/jquery"

	"github.com/lukas-brg/LearningCards/cards"
	"github.com/lukas-brg/LearningCards/clipboard"
	"github.com/lukas-brg/LearningCards/config"
	"github.com/lukas-brg/LearningCards/dom"
	"github.com/lukas-brg/LearningCards/dom/jqdom"
	"github.com/lukas-brg/LearningCards/l10n"
	"github.com/lukas-brg/LearningCards/util"
)

var jQuery = jquery.NewJQuery

func main() {
	log.Debug("in main()")
	jQuery(js.Global.Get("document")).Ready(func() {
		go initPage()
	})
}

func initPage() {
	doc := jqdom.New()
	conf, err := loadConfig(doc)
	if err != nil {
		panic(err)
	}
	page, err := cards.Register(doc, conf)
	if err != nil {
		log.Printf("Some cards were skipped: %s\n", err)
	}
	engine := &cards.Engine{
		Conf:      conf,
		Alerter:   cards.AlertFunc(util.Alert),
		Clipboard: clipboard.JS{},
	}
	engine.Wire(page)
	log.Debugf("Page ready: %v\n", page.Count())
}

// loadConfig reads the page options and string tables embedded in the page,
// and builds the configuration every card shares.
func loadConfig(doc dom.Document) (*cards.Config, error) {
	var opts *config.Conf
	if data := util.ScriptJSON(util.ConfigID); data != nil {
		var err error
		if opts, err = config.NewFromJSON(data); err != nil {
			return nil, err
		}
	}
	tables, err := l10n.Tables(util.ScriptJSON(util.TranslationsID))
	if err != nil {
		return nil, err
	}
	return cards.NewConfig(doc.Lang(), util.TextColor(), opts, l10n.Chain(tables, l10n.Builtin))
}
