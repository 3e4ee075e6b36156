package resource

import (
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Words is a locale pack's message catalog: the connective words and short
// phrases ("negative", "point", part-of-day names) a formatter stitches
// around the algorithmic output.
type Words struct {
	bundle *i18n.Bundle
}

// LoadWords builds a word catalog from TOML message files named in the
// go-i18n convention, e.g. "res/messages.en.toml".
func LoadWords(fsys fs.FS, lang string, paths ...string) (*Words, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("word catalog language %q: %w", lang, err)
	}

	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, path := range paths {
		if _, err := bundle.LoadMessageFileFS(fsys, path); err != nil {
			return nil, fmt.Errorf("load message file %s: %w", path, err)
		}
	}
	return &Words{bundle: bundle}, nil
}

// Get returns the word for id in the given language. Lookup failures fall
// back to the id itself so a missing entry degrades to something legible
// rather than an error on the formatting path.
func (w *Words) Get(lang, id string) string {
	localizer := i18n.NewLocalizer(w.bundle, lang)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      id,
		DefaultMessage: &i18n.Message{ID: id, Other: id},
	})
	if err != nil || msg == "" {
		return id
	}
	return msg
}
