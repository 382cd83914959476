// Package i18n loads the embedded translation files and hands out localized
// strings for the widget.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Message IDs used across the app.
const (
	AppTitle         = "app.title"
	InputPlaceholder = "input.placeholder"
	ButtonAdd        = "button.add"
	ButtonDelete     = "button.delete"
	NoticeEmptyInput = "notice.empty_input"
	NoticeDismiss    = "notice.dismiss"
	ListEmpty        = "list.empty"
	ListCount        = "list.count"
	HelpAdd          = "help.add"
	HelpDelete       = "help.delete"
	HelpFocus        = "help.focus"
	HelpQuit         = "help.quit"
	SummaryTitle     = "summary.title"
)

// Translator resolves message IDs for one language.
type Translator struct {
	lang      language.Tag
	localizer *i18n.Localizer
}

func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile(path.Join("locales", f.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, f.Name()); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f.Name(), err)
		}
	}
	return bundle, nil
}

// New returns a Translator for lang (a BCP 47 tag such as "en" or "ko-KR").
// Unknown languages fall back to English.
func New(lang string) (*Translator, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("language %q: %w", lang, err)
	}
	bundle, err := newBundle()
	if err != nil {
		return nil, err
	}
	matched, _, _ := language.NewMatcher(bundle.LanguageTags()).Match(tag)
	base, _ := matched.Base()
	return &Translator{
		lang:      language.Make(base.String()),
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}, nil
}

// Lang is the language the translator resolved to.
func (t *Translator) Lang() language.Tag { return t.lang }

// T translates a message ID. A missing ID is returned as is.
func (t *Translator) T(id string) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
