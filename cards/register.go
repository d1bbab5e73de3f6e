package cards

import (
	"strings"

	"github.com/flimzy/log"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/lukas-brg/LearningCards/dom"
)

// Markup produced by the page generator.
const (
	selCard         = ".card"
	selPrimary      = ".card-btn"
	selCollapsible  = ".collapsible"
	selAnswerInput  = "input.answer-input"
	selAnswerButton = ".answer-btn"
	selAnswerSpan   = ".answer-span"
	clsAnswerRegion = "answer-content"
	selMulti        = "form.multi"
	selOption       = "input.choice"
	selMultiButton  = ".multi-btn"
	selExplanation  = ".multicontent"
	idTOCButton     = "toc-btn"
	selTOCContent   = ".toc-content"
	selCopy         = ".btn-copy"
	selCode         = "code"
	clsCopyNotice   = "copy-notification"

	correctMarker = "correct"
)

// Register finds the cards, the table of contents and the copy controls of
// doc, and captures a handle to each of their parts. It installs the initial
// icons but binds no events; see Engine.Wire.
//
// Features missing from the page are simply absent from the result. A card
// whose markup is incomplete is left out, and every such problem is
// reported in the returned error; the Page is usable either way.
func Register(doc dom.Document, conf *Config) (*Page, error) {
	var errs *multierror.Error
	page := &Page{}

	if control := doc.ByID(idTOCButton); control != nil {
		if content := dom.First(doc, selTOCContent); content != nil {
			page.TOC = newTOC(conf, control, content)
		} else {
			errs = multierror.Append(errs, errors.New("table of contents: no "+selTOCContent+" panel"))
		}
	}

	for i, root := range doc.Find(selCard) {
		card, err := registerCard(conf, root)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "card %d", i+1))
			continue
		}
		log.Debugf("Registered %s card %s\n", card.Kind, card.ID)
		page.Cards = append(page.Cards, card)
	}

	for i, control := range doc.Find(selCopy) {
		parent := control.Parent()
		var target dom.Element
		if parent != nil {
			target = dom.First(parent, selCode)
		}
		if target == nil {
			errs = multierror.Append(errs, errors.Errorf("copy button %d: no code block", i+1))
			continue
		}
		notice := control.Prev()
		if notice != nil && !notice.HasClass(clsCopyNotice) {
			notice = nil
		}
		page.Copy = append(page.Copy, newCopyButton(conf, control, target, notice))
	}

	return page, errs.ErrorOrNil()
}

func registerCard(conf *Config, root dom.Element) (*Card, error) {
	card := &Card{
		ID:      root.ID(),
		Root:    root,
		Control: dom.First(root, selPrimary),
	}
	if card.ID == "" {
		return nil, errors.New("no id")
	}

	if btn := dom.First(root, selCollapsible); btn != nil {
		content := btn.Next()
		if content == nil {
			return nil, errors.Errorf("%s: no backside after the reveal button", card.ID)
		}
		card.Backside = &Backside{conf: conf, control: btn, content: content}
	}

	if input := dom.First(root, selAnswerInput); input != nil {
		ft, err := registerFreeText(conf, card.ID, root, input)
		if err != nil {
			return nil, errors.Wrap(err, card.ID)
		}
		card.Kind = KindFreeText
		card.FreeText = ft
	} else if form := dom.First(root, selMulti); form != nil {
		ch, err := registerChoice(conf, card.ID, form)
		if err != nil {
			return nil, errors.Wrap(err, card.ID)
		}
		card.Kind = KindMultipleChoice
		card.Choice = ch
	}
	return card, nil
}

func registerFreeText(conf *Config, id string, root, input dom.Element) (*FreeText, error) {
	control := dom.First(root, selAnswerButton)
	if control == nil {
		return nil, errors.New("no answer button")
	}
	var region dom.Element
	if form := input.Parent(); form != nil {
		region = form.Next()
	}
	if region == nil || !region.HasClass(clsAnswerRegion) {
		return nil, errors.New("no answer region after the answer form")
	}
	answer := dom.First(region, selAnswerSpan)
	if answer == nil {
		return nil, errors.New("no correct answer")
	}
	control.RemoveAttr("onclick")
	return &FreeText{
		conf:    conf,
		cardID:  id,
		input:   input,
		control: control,
		region:  region,
		answer:  answer,
		correct: strings.TrimSpace(answer.Text()),
	}, nil
}

func registerChoice(conf *Config, id string, form dom.Element) (*Choice, error) {
	inputs := form.Find(selOption)
	if len(inputs) == 0 {
		return nil, errors.New("no options")
	}
	control := dom.First(form, selMultiButton)
	if control == nil {
		return nil, errors.New("no answer button")
	}
	explanation := dom.First(form, selExplanation)
	if explanation == nil {
		return nil, errors.New("no explanation region")
	}
	options := make([]*Option, 0, len(inputs))
	for i, input := range inputs {
		label := input.Next()
		if label == nil || label.TagName() != "label" {
			return nil, errors.Errorf("option %d: no label", i+1)
		}
		options = append(options, &Option{
			input:   input,
			label:   label,
			correct: input.Attr("value") == correctMarker,
		})
	}
	control.RemoveAttr("onclick")
	return &Choice{
		conf:        conf,
		cardID:      id,
		options:     options,
		control:     control,
		explanation: explanation,
	}, nil
}
