// Package parse exposes the localizable parsing operations: pulling
// structured values (numbers, durations) back out of natural-language text,
// plus the locale-independent fuzzy matching helpers. As with format, the
// linguistic work lives in the locale packs; this package owns the
// contracts.
package parse

import (
	"context"
	"fmt"
	"time"

	lingua "github.com/ChanceNCounter/lingua-franca"
	"github.com/ChanceNCounter/lingua-franca/localizer"
)

// Area is the functional area name this package's operations live under.
const Area = "parse"

// Operations is the declared operation set of the parse area.
var Operations = []string{
	"extract_number",
	"extract_numbers",
	"extract_duration",
	"extract_datetime",
	"normalize",
}

func init() {
	lingua.RegisterOperations(Area, Operations...)
}

// ExtractNumberOptions carries the keyword arguments of ExtractNumber and
// ExtractNumbers. A nil options pointer means DefaultExtractNumberOptions.
type ExtractNumberOptions struct {
	Lang string
	// LongScale interprets scale words on the long counting scale. The
	// zero value is the conventional short scale.
	LongScale bool
	// Ordinals also accepts ordinal words ("first" as 1).
	Ordinals bool
}

// DefaultExtractNumberOptions returns the contract defaults: short scale,
// cardinals only.
func DefaultExtractNumberOptions() *ExtractNumberOptions {
	return &ExtractNumberOptions{}
}

func numberArgs(opts *ExtractNumberOptions) localizer.Args {
	return localizer.Args{
		"short_scale": localizer.Bool(!opts.LongScale),
		"ordinals":    localizer.Bool(opts.Ordinals),
	}
}

// ExtractNumber finds the first number in text, spelled out or in digits.
// ok is false when the text contains no number.
func ExtractNumber(ctx context.Context, text string, opts *ExtractNumberOptions) (value float64, ok bool, err error) {
	if opts == nil {
		opts = DefaultExtractNumberOptions()
	}
	res, err := lingua.Dispatch(ctx, Area, "extract_number", text, opts.Lang, numberArgs(opts))
	if err != nil {
		return 0, false, err
	}
	v, okType := res.(*float64)
	if !okType {
		return 0, false, fmt.Errorf("parse.extract_number: implementation returned %T, want *float64", res)
	}
	if v == nil {
		return 0, false, nil
	}
	return *v, true, nil
}

// ExtractNumbers finds every number in text, in order of appearance. The
// slice is empty when the text contains none.
func ExtractNumbers(ctx context.Context, text string, opts *ExtractNumberOptions) ([]float64, error) {
	if opts == nil {
		opts = DefaultExtractNumberOptions()
	}
	res, err := lingua.Dispatch(ctx, Area, "extract_numbers", text, opts.Lang, numberArgs(opts))
	if err != nil {
		return nil, err
	}
	vs, ok := res.([]float64)
	if !ok {
		return nil, fmt.Errorf("parse.extract_numbers: implementation returned %T, want []float64", res)
	}
	return vs, nil
}

// ExtractedDuration is the result of ExtractDuration: the summed duration
// and the input text with the consumed phrases removed.
type ExtractedDuration struct {
	Duration  time.Duration
	Remainder string
}

// DurationOptions carries the keyword arguments of ExtractDuration.
type DurationOptions struct {
	Lang string
}

// ExtractDuration reads a duration such as "3 minutes 30 seconds" out of
// text. ok is false when no duration phrase is present.
func ExtractDuration(ctx context.Context, text string, opts *DurationOptions) (ExtractedDuration, bool, error) {
	if opts == nil {
		opts = &DurationOptions{}
	}
	res, err := lingua.Dispatch(ctx, Area, "extract_duration", text, opts.Lang, nil)
	if err != nil {
		return ExtractedDuration{}, false, err
	}
	d, ok := res.(ExtractedDuration)
	if !ok {
		return ExtractedDuration{}, false, fmt.Errorf("parse.extract_duration: implementation returned %T, want parse.ExtractedDuration", res)
	}
	return d, d.Duration != 0, nil
}

// ExtractedDateTime is the result of ExtractDateTime: the resolved moment
// and the input text with the consumed words removed.
type ExtractedDateTime struct {
	When      time.Time
	Remainder string
}

// DateTimeOptions carries the keyword arguments of ExtractDateTime.
type DateTimeOptions struct {
	Lang string
	// Anchor is the reference moment relative phrases resolve against
	// ("tomorrow", "in 3 days"). The zero value means now.
	Anchor time.Time
}

// ExtractDateTime reads a date/time phrase such as "the day after tomorrow"
// or "2 weeks from sunday at 5 pm" out of text. ok is false when the text
// names no date or time.
func ExtractDateTime(ctx context.Context, text string, opts *DateTimeOptions) (ExtractedDateTime, bool, error) {
	if opts == nil {
		opts = &DateTimeOptions{}
	}
	anchor := opts.Anchor
	if anchor.IsZero() {
		anchor = time.Now()
	}
	res, err := lingua.Dispatch(ctx, Area, "extract_datetime", text, opts.Lang, localizer.Args{
		"anchor": localizer.String(anchor.Format(time.RFC3339)),
	})
	if err != nil {
		return ExtractedDateTime{}, false, err
	}
	d, ok := res.(*ExtractedDateTime)
	if !ok {
		return ExtractedDateTime{}, false, fmt.Errorf("parse.extract_datetime: implementation returned %T, want *parse.ExtractedDateTime", res)
	}
	if d == nil {
		return ExtractedDateTime{}, false, nil
	}
	return *d, true, nil
}

// NormalizeOptions carries the keyword arguments of Normalize. A nil
// options pointer means DefaultNormalizeOptions.
type NormalizeOptions struct {
	Lang string
	// KeepArticles retains articles ("a", "the") that normalization
	// otherwise removes. The zero value removes them, matching the
	// contract default.
	KeepArticles bool
}

// DefaultNormalizeOptions returns the contract defaults.
func DefaultNormalizeOptions() *NormalizeOptions {
	return &NormalizeOptions{}
}

// Normalize prepares utterance text for intent matching: expands
// contractions, applies the locale's canonical word replacements, and
// optionally strips articles.
func Normalize(ctx context.Context, text string, opts *NormalizeOptions) (string, error) {
	if opts == nil {
		opts = DefaultNormalizeOptions()
	}
	res, err := lingua.Dispatch(ctx, Area, "normalize", text, opts.Lang, localizer.Args{
		"remove_articles": localizer.Bool(!opts.KeepArticles),
	})
	if err != nil {
		return "", err
	}
	s, ok := res.(string)
	if !ok {
		return "", fmt.Errorf("parse.normalize: implementation returned %T, want string", res)
	}
	return s, nil
}
