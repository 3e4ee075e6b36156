// Package lingua holds the process-wide localizer instance shared by the
// top-level format and parse operations.
//
// Locale packs attach themselves the way database/sql drivers do: importing
// a pack registers its language and its localized functions with the default
// registry, so adding a language to a program is one blank import away and
// needs no change to any calling code.
//
//	import (
//	    "github.com/ChanceNCounter/lingua-franca/format"
//	    _ "github.com/ChanceNCounter/lingua-franca/lang/en"
//	)
//
// The default locale starts as English and can be moved with
// SetDefaultLang; every dispatch that does not name a locale reads it.
package lingua

import (
	"context"
	"sync"

	"github.com/ChanceNCounter/lingua-franca/localizer"
)

// defaultLocale is the built-in active locale at process start.
const defaultLocale = "en-US"

var (
	mu      sync.Mutex
	std     *localizer.Registry
	pending []localizer.Pack
)

// Default returns the process-wide registry, building it on first use and
// attaching every pack registered so far.
func Default() *localizer.Registry {
	mu.Lock()
	defer mu.Unlock()
	return defaultLocked()
}

func defaultLocked() *localizer.Registry {
	if std == nil {
		std = localizer.New(localizer.NewCatalog(defaultLocale))
		for _, p := range pending {
			p.Register(std)
		}
		pending = nil
	}
	return std
}

// RegisterPack attaches a locale pack to the default registry. Packs call
// this from their init functions; applications embedding out-of-tree packs
// may call it directly during startup.
func RegisterPack(p localizer.Pack) {
	mu.Lock()
	defer mu.Unlock()
	if std != nil {
		p.Register(std)
		return
	}
	pending = append(pending, p)
}

// RegisterOperations declares operation names under an area of the default
// registry. The top-level modules call this from their init functions; an
// operation is not dispatchable until it has been declared, no matter which
// locale packs implement it.
func RegisterOperations(area string, names ...string) {
	Default().DeclareArea(area).RegisterOperations(names...)
}

// Dispatch invokes op in the named area through the default registry. An
// empty lang uses the current default locale.
func Dispatch(ctx context.Context, area, op string, primary any, lang string, args localizer.Args) (any, error) {
	return Default().Dispatch(ctx, area, op, primary, lang, args)
}

// SetDefaultLang moves the process-wide default locale. It fails with an
// *localizer.UnsupportedLocaleError when the language is not registered.
func SetDefaultLang(code string) error {
	return Default().Catalog().SetActive(code)
}

// DefaultLang returns the current default locale code, e.g. "en-US".
func DefaultLang() string {
	return Default().Catalog().Active().String()
}

// SupportedLangs returns the sorted primary tags of every registered
// language.
func SupportedLangs() []string {
	return Default().Catalog().Supported()
}

// IsSupported reports whether the language is registered, judged on its
// primary tag, case-insensitively.
func IsSupported(code string) bool {
	return Default().Catalog().IsSupported(code)
}
