package localizer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	res, err := r.Dispatch(context.Background(), "format", "greet", "world", "en", Args{
		"punctuation": String("!"),
	})
	require.NoError(t, err)
	assert.Equal(t, "hello world!", res)
}

// Keywords the implementation does not declare are dropped, not rejected.
func TestDispatchDropsUndeclaredKeywords(t *testing.T) {
	t.Parallel()

	type narrowInput struct {
		A string `lingua:"a"`
		B string `lingua:"b"`
	}

	r := New(NewCatalog("en"))
	area := r.DeclareArea("format")
	area.RegisterOperations("echo")

	var got *narrowInput
	area.RegisterFunc("echo", "en", &Func{
		NewInput: func() any { return &narrowInput{} },
		Fn: func(ctx context.Context, _ string, in *narrowInput) (string, error) {
			got = in
			return in.A + in.B, nil
		},
	})

	res, err := r.Dispatch(context.Background(), "format", "echo", "", "en", Args{
		"a": String("x"),
		"b": String("y"),
		"c": String("z"), // undeclared, silently dropped
	})
	require.NoError(t, err)
	assert.Equal(t, "xy", res)
	require.NotNil(t, got)
	assert.Equal(t, &narrowInput{A: "x", B: "y"}, got)
}

// An empty lang selects the catalog's active locale.
func TestDispatchDefaultLocale(t *testing.T) {
	t.Parallel()

	r := New(NewCatalog("en"))
	area := r.DeclareArea("format")
	area.RegisterOperations("which")
	for _, lang := range []string{"en", "de"} {
		lang := lang
		area.RegisterFunc("which", lang, &Func{
			Fn: func(ctx context.Context, _ string) (string, error) { return lang, nil },
		})
	}
	r.Catalog().Register("de")

	res, err := r.Dispatch(context.Background(), "format", "which", "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "en", res)

	require.NoError(t, r.Catalog().SetActive("de-DE"))
	res, err = r.Dispatch(context.Background(), "format", "which", "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "de", res)
}

// The implementation's error comes back unchanged.
func TestDispatchPropagatesError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("implementation said no")
	r := New(NewCatalog("en"))
	area := r.DeclareArea("format")
	area.RegisterOperations("fail")
	area.RegisterFunc("fail", "en", &Func{
		Fn: func(ctx context.Context, _ string) (string, error) { return "", sentinel },
	})

	_, err := r.Dispatch(context.Background(), "format", "fail", "", "en", nil)
	assert.ErrorIs(t, err, sentinel)
}

func TestDispatchPrimaryTypeMismatch(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t)
	_, err := r.Dispatch(context.Background(), "format", "greet", 42, "en", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "primary argument")
}

func TestDispatchArgumentDecode(t *testing.T) {
	t.Parallel()

	type numericInput struct {
		Places  int     `lingua:"places"`
		Ratio   float64 `lingua:"ratio"`
		Speech  bool    `lingua:"speech"`
		Denoms  []int   `lingua:"denominators"`
		Skipped string  `lingua:"-"`
	}

	r := New(NewCatalog("en"))
	area := r.DeclareArea("format")
	area.RegisterOperations("inspect")
	area.RegisterFunc("inspect", "en", &Func{
		NewInput: func() any { return &numericInput{} },
		Fn: func(ctx context.Context, _ string, in *numericInput) (string, error) {
			return fmt.Sprintf("%d %.1f %v %v", in.Places, in.Ratio, in.Speech, in.Denoms), nil
		},
	})

	res, err := r.Dispatch(context.Background(), "format", "inspect", "", "en", Args{
		"places":       Int(3),
		"ratio":        Number(0.5),
		"speech":       Bool(true),
		"denominators": IntList([]int{2, 4}),
	})
	require.NoError(t, err)
	assert.Equal(t, "3 0.5 true [2 4]", res)

	t.Run("type mismatch surfaces as an error", func(t *testing.T) {
		t.Parallel()
		_, err := r.Dispatch(context.Background(), "format", "inspect", "", "en", Args{
			"places": String("three"),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"places"`)
	})
}
