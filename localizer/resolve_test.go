package localizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greetInput struct {
	Loud  bool   `lingua:"loud"`
	Punct string `lingua:"punctuation"`
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r := New(NewCatalog("en"))
	area := r.DeclareArea("format")
	area.RegisterOperations("greet")
	area.RegisterFunc("greet", "en", &Func{
		NewInput: func() any { return &greetInput{} },
		Fn: func(ctx context.Context, name string, in *greetInput) (string, error) {
			return "hello " + name + in.Punct, nil
		},
	})
	return r
}

func TestResolve(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	binding, err := r.Resolve("format", "greet", "en")
	require.NoError(t, err)

	assert.Equal(t, "format", binding.Area)
	assert.Equal(t, "greet", binding.Operation)
	assert.Equal(t, "en", binding.Lang)
	assert.Equal(t, []string{"loud", "punctuation"}, binding.Params)
}

// Region refinements never influence which implementation is chosen.
func TestResolveIgnoresRegion(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	plain, err := r.Resolve("format", "greet", "en")
	require.NoError(t, err)

	for _, code := range []string{"en-US", "en-GB", "en_au", "EN"} {
		refined, err := r.Resolve("format", "greet", code)
		require.NoError(t, err, "code %q", code)
		assert.Equal(t, plain, refined, "code %q must bind identically to %q", code, "en")
	}
}

// Resolution is read-only: resolving repeatedly yields the same binding and
// mutating one binding's params does not leak into the next.
func TestResolveIsIdempotent(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	first, err := r.Resolve("format", "greet", "en")
	require.NoError(t, err)
	first.Params[0] = "mangled"

	second, err := r.Resolve("format", "greet", "en")
	require.NoError(t, err)
	assert.Equal(t, []string{"loud", "punctuation"}, second.Params)
}

func TestResolveErrorTaxonomy(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	r.Catalog().Register("de") // supported but with no implementations

	t.Run("unknown operation", func(t *testing.T) {
		t.Parallel()
		_, err := r.Resolve("format", "mystery", "en")
		var e *OperationNotRegisteredError
		require.ErrorAs(t, err, &e)
		assert.Equal(t, "format", e.Area)
		assert.Equal(t, "mystery", e.Operation)
	})

	t.Run("unknown area", func(t *testing.T) {
		t.Parallel()
		_, err := r.Resolve("parse", "greet", "en")
		var e *OperationNotRegisteredError
		require.ErrorAs(t, err, &e)
	})

	t.Run("unsupported locale", func(t *testing.T) {
		t.Parallel()
		_, err := r.Resolve("format", "greet", "sv")
		var e *UnsupportedLocaleError
		require.ErrorAs(t, err, &e)
		assert.Equal(t, "sv", e.Tag)
		assert.Equal(t, []string{"de", "en"}, e.Supported)
	})

	t.Run("malformed locale reports unsupported", func(t *testing.T) {
		t.Parallel()
		_, err := r.Resolve("format", "greet", "!!")
		var e *UnsupportedLocaleError
		require.ErrorAs(t, err, &e)
	})

	t.Run("supported locale without implementation", func(t *testing.T) {
		t.Parallel()
		_, err := r.Resolve("format", "greet", "de-DE")
		var e *FunctionNotLocalizedError
		require.ErrorAs(t, err, &e)
		assert.Equal(t, "greet", e.Operation)
		assert.Equal(t, "de", e.Lang, "the error names the primary tag")
	})

	// Operation existence is checked before locale support: an unknown
	// operation in an unsupported locale reports the operation.
	t.Run("unknown operation wins over unsupported locale", func(t *testing.T) {
		t.Parallel()
		_, err := r.Resolve("format", "mystery", "sv")
		var e *OperationNotRegisteredError
		require.ErrorAs(t, err, &e)
	})
}

// An implementation registered before its operation name is declared stays
// unreachable until RegisterOperations names it.
func TestResolveRegistrationGating(t *testing.T) {
	t.Parallel()

	r := New(NewCatalog("en"))
	area := r.DeclareArea("format")
	area.RegisterFunc("greet", "en", &Func{
		Fn: func(ctx context.Context, name string) (string, error) { return "hi " + name, nil },
	})

	_, err := r.Resolve("format", "greet", "en")
	var e *OperationNotRegisteredError
	require.ErrorAs(t, err, &e)

	area.RegisterOperations("greet")
	_, err = r.Resolve("format", "greet", "en")
	require.NoError(t, err)
}

func TestRegisterFuncValidation(t *testing.T) {
	t.Parallel()

	r := New(NewCatalog("en"))
	area := r.DeclareArea("format")
	area.RegisterOperations("greet")

	ok := &Func{
		Fn: func(ctx context.Context, name string) (string, error) { return name, nil },
	}
	area.RegisterFunc("greet", "en-US", ok)

	t.Run("duplicate for same primary tag", func(t *testing.T) {
		assert.Panics(t, func() { area.RegisterFunc("greet", "en-GB", ok) })
	})

	t.Run("malformed locale", func(t *testing.T) {
		assert.Panics(t, func() { area.RegisterFunc("greet", "??", ok) })
	})

	t.Run("nil implementation", func(t *testing.T) {
		assert.Panics(t, func() { area.RegisterFunc("greet", "de", &Func{}) })
	})

	t.Run("not a func", func(t *testing.T) {
		assert.Panics(t, func() { area.RegisterFunc("greet", "de", &Func{Fn: 42}) })
	})

	t.Run("missing error return", func(t *testing.T) {
		assert.Panics(t, func() {
			area.RegisterFunc("greet", "de", &Func{
				Fn: func(ctx context.Context, name string) string { return name },
			})
		})
	})

	t.Run("input arity mismatch", func(t *testing.T) {
		assert.Panics(t, func() {
			area.RegisterFunc("greet", "de", &Func{
				NewInput: func() any { return &greetInput{} },
				Fn:       func(ctx context.Context, name string) (string, error) { return name, nil },
			})
		})
	})

	t.Run("input type mismatch", func(t *testing.T) {
		assert.Panics(t, func() {
			area.RegisterFunc("greet", "de", &Func{
				NewInput: func() any { return &struct{}{} },
				Fn: func(ctx context.Context, name string, in *greetInput) (string, error) {
					return name, nil
				},
			})
		})
	})
}

func TestAreaOperations(t *testing.T) {
	t.Parallel()

	r := New(NewCatalog("en"))
	area := r.DeclareArea("parse")
	area.RegisterOperations("extract_number", "normalize")
	area.RegisterOperations("normalize") // idempotent

	assert.Equal(t, []string{"extract_number", "normalize"}, area.Operations())

	// DeclareArea returns the same handle for a known name.
	assert.Same(t, area, r.DeclareArea("parse"))
}
