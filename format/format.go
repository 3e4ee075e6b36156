// Package format exposes the localizable formatting operations: turning
// numbers and times into natural-sounding text for the chosen locale. The
// linguistic work happens in whichever locale pack resolution selects at
// call time; this package only owns the operation contracts and their
// defaults.
package format

import (
	"context"
	"fmt"
	"time"

	lingua "github.com/ChanceNCounter/lingua-franca"
	"github.com/ChanceNCounter/lingua-franca/localizer"
)

// Area is the functional area name this package's operations live under.
const Area = "format"

// Operations is the declared operation set of the format area. Every name
// here is expected to have per-locale implementations; a pack that skips
// one leaves a reportable localization gap rather than silently borrowing
// another language.
var Operations = []string{
	"pronounce_number",
	"nice_number",
	"nice_time",
	"nice_ordinal",
	"nice_part_of_day",
	"nice_duration",
}

func init() {
	lingua.RegisterOperations(Area, Operations...)
}

// PronounceOptions carries the keyword arguments of PronounceNumber. A nil
// options pointer means DefaultPronounceOptions.
type PronounceOptions struct {
	// Lang selects the locale; empty means the process default.
	Lang string
	// Places is the number of decimal places to pronounce.
	Places int
	// LongScale selects the long counting scale (milliard rather than
	// billion). The zero value is the conventional short scale.
	LongScale bool
	// Scientific pronounces the number in scientific notation.
	Scientific bool
}

// DefaultPronounceOptions returns the contract defaults: two decimal
// places, short scale, plain notation.
func DefaultPronounceOptions() *PronounceOptions {
	return &PronounceOptions{Places: 2}
}

// PronounceNumber turns a number into speakable text, e.g. 4.2 into
// "four point two" for English.
func PronounceNumber(ctx context.Context, number float64, opts *PronounceOptions) (string, error) {
	if opts == nil {
		opts = DefaultPronounceOptions()
	}
	res, err := lingua.Dispatch(ctx, Area, "pronounce_number", number, opts.Lang, localizer.Args{
		"places":      localizer.Int(opts.Places),
		"short_scale": localizer.Bool(!opts.LongScale),
		"scientific":  localizer.Bool(opts.Scientific),
	})
	if err != nil {
		return "", err
	}
	return asString(res, "pronounce_number")
}

// NiceNumberOptions carries the keyword arguments of NiceNumber. A nil
// options pointer means DefaultNiceNumberOptions.
type NiceNumberOptions struct {
	Lang string
	// Speech renders a speakable fraction ("four and a half"); when false
	// the result is display text ("4 1/2").
	Speech bool
	// Denominators restricts which fraction denominators may be used.
	// Empty means 2 through 20.
	Denominators []int
}

// DefaultNiceNumberOptions returns the contract defaults.
func DefaultNiceNumberOptions() *NiceNumberOptions {
	return &NiceNumberOptions{Speech: true}
}

// NiceNumber renders a number with a human-friendly fraction when one
// fits, e.g. 4.5 into "four and a half".
func NiceNumber(ctx context.Context, number float64, opts *NiceNumberOptions) (string, error) {
	if opts == nil {
		opts = DefaultNiceNumberOptions()
	}
	res, err := lingua.Dispatch(ctx, Area, "nice_number", number, opts.Lang, localizer.Args{
		"speech":       localizer.Bool(opts.Speech),
		"denominators": localizer.IntList(opts.Denominators),
	})
	if err != nil {
		return "", err
	}
	return asString(res, "nice_number")
}

// NiceTimeOptions carries the keyword arguments of NiceTime. A nil options
// pointer means DefaultNiceTimeOptions.
type NiceTimeOptions struct {
	Lang string
	// Speech renders speakable text; when false the result is a display
	// string such as "1:25".
	Speech bool
	// Use24Hour phrases the time on the 24-hour clock.
	Use24Hour bool
	// UseAMPM appends the meridiem when the 12-hour clock is in use.
	UseAMPM bool
}

// DefaultNiceTimeOptions returns the contract defaults: speakable,
// 12-hour clock, no meridiem.
func DefaultNiceTimeOptions() *NiceTimeOptions {
	return &NiceTimeOptions{Speech: true}
}

// NiceTime renders a clock time for speech or display.
func NiceTime(ctx context.Context, t time.Time, opts *NiceTimeOptions) (string, error) {
	if opts == nil {
		opts = DefaultNiceTimeOptions()
	}
	res, err := lingua.Dispatch(ctx, Area, "nice_time", t, opts.Lang, localizer.Args{
		"speech":     localizer.Bool(opts.Speech),
		"use_24hour": localizer.Bool(opts.Use24Hour),
		"use_ampm":   localizer.Bool(opts.UseAMPM),
	})
	if err != nil {
		return "", err
	}
	return asString(res, "nice_time")
}

// OrdinalOptions carries the keyword arguments of NiceOrdinal.
type OrdinalOptions struct {
	Lang string
	// Speech renders the ordinal as a word ("first"); when false the
	// result is display text ("1st").
	Speech bool
}

// DefaultOrdinalOptions returns the contract defaults.
func DefaultOrdinalOptions() *OrdinalOptions {
	return &OrdinalOptions{Speech: true}
}

// NiceOrdinal renders an ordinal number, e.g. 3 into "third".
func NiceOrdinal(ctx context.Context, n int, opts *OrdinalOptions) (string, error) {
	if opts == nil {
		opts = DefaultOrdinalOptions()
	}
	res, err := lingua.Dispatch(ctx, Area, "nice_ordinal", n, opts.Lang, localizer.Args{
		"speech": localizer.Bool(opts.Speech),
	})
	if err != nil {
		return "", err
	}
	return asString(res, "nice_ordinal")
}

// PartOfDayOptions carries the keyword arguments of NicePartOfDay.
type PartOfDayOptions struct {
	Lang string
}

// NicePartOfDay names the part of day a time falls into, e.g. "morning".
func NicePartOfDay(ctx context.Context, t time.Time, opts *PartOfDayOptions) (string, error) {
	if opts == nil {
		opts = &PartOfDayOptions{}
	}
	res, err := lingua.Dispatch(ctx, Area, "nice_part_of_day", t, opts.Lang, nil)
	if err != nil {
		return "", err
	}
	return asString(res, "nice_part_of_day")
}

// NiceDurationOptions carries the keyword arguments of NiceDuration. A nil
// options pointer means DefaultNiceDurationOptions.
type NiceDurationOptions struct {
	Lang string
	// Speech renders spoken unit words ("two minutes forty three seconds");
	// when false the result is display text ("2:43").
	Speech bool
}

// DefaultNiceDurationOptions returns the contract defaults.
func DefaultNiceDurationOptions() *NiceDurationOptions {
	return &NiceDurationOptions{Speech: true}
}

// NiceDuration renders a duration as a spoken timespan or a clock-style
// display string.
func NiceDuration(ctx context.Context, d time.Duration, opts *NiceDurationOptions) (string, error) {
	if opts == nil {
		opts = DefaultNiceDurationOptions()
	}
	res, err := lingua.Dispatch(ctx, Area, "nice_duration", d, opts.Lang, localizer.Args{
		"speech": localizer.Bool(opts.Speech),
	})
	if err != nil {
		return "", err
	}
	return asString(res, "nice_duration")
}

func asString(res any, op string) (string, error) {
	s, ok := res.(string)
	if !ok {
		return "", fmt.Errorf("format.%s: implementation returned %T, want string", op, res)
	}
	return s, nil
}
