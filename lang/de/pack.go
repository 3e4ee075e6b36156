// Package de is the German locale pack. It covers the number formatting
// operations; the parse operations are not yet localized, so dispatching
// them for German reports a localization gap rather than borrowing English.
package de

import (
	"embed"
	"fmt"
	"sync"

	lingua "github.com/ChanceNCounter/lingua-franca"
	"github.com/ChanceNCounter/lingua-franca/internal/resource"
	"github.com/ChanceNCounter/lingua-franca/localizer"
)

// Lang is the primary tag this pack implements.
const Lang = "de"

//go:embed res
var resFS embed.FS

// Pack registers the German implementations.
type Pack struct{}

func init() {
	lingua.RegisterPack(&Pack{})
}

// Register wires German into a catalog/registry pair.
func (p *Pack) Register(r *localizer.Registry) {
	v := load()
	r.Catalog().Register(Lang)

	formatArea := r.DeclareArea("format")
	formatArea.RegisterFunc("pronounce_number", Lang, &localizer.Func{
		NewInput: func() any { return new(pronounceInput) },
		Fn:       v.pronounceNumber,
	})
	formatArea.RegisterFunc("nice_number", Lang, &localizer.Func{
		NewInput: func() any { return new(niceNumberInput) },
		Fn:       v.niceNumber,
	})
}

type vocab struct {
	manifest *resource.Manifest
	words    *resource.Words

	ones []string
	tens []string
}

var loadOnce = sync.OnceValue(func() *vocab {
	manifest, err := resource.LoadManifest(resFS, "res/vocab.hcl")
	if err != nil {
		panic(fmt.Sprintf("lang/de: %v", err))
	}
	words, err := resource.LoadWords(resFS, Lang, "res/messages.de.toml")
	if err != nil {
		panic(fmt.Sprintf("lang/de: %v", err))
	}
	return &vocab{
		manifest: manifest,
		words:    words,
		ones:     manifest.Numbers.Ones,
		tens:     manifest.Numbers.Tens,
	}
})

func load() *vocab { return loadOnce() }
