package en

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ChanceNCounter/lingua-franca/parse"
)

type extractDateTimeInput struct {
	Anchor string `lingua:"anchor"`
}

var (
	clockRE    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	digitOrdRE = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)$`)
)

// extractDateTime resolves the first date/time phrase in free text against
// an anchor moment. A nil result means the text names no date or time.
func (v *vocab) extractDateTime(ctx context.Context, text string, in *extractDateTimeInput) (*parse.ExtractedDateTime, error) {
	anchor := time.Now()
	if in.Anchor != "" {
		t, err := time.Parse(time.RFC3339, in.Anchor)
		if err != nil {
			return nil, fmt.Errorf("invalid anchor %q: %w", in.Anchor, err)
		}
		anchor = t
	}

	w := &dtWalk{v: v, anchor: anchor, orig: strings.Fields(text)}
	w.toks = make([]string, len(w.orig))
	for i, tok := range w.orig {
		w.toks[i] = strings.Trim(strings.ToLower(tok), ".,!?;:")
	}
	w.used = make([]bool, len(w.toks))
	w.run()

	if !w.dateFound && !w.timeFound && w.instant == nil {
		return nil, nil
	}

	loc := anchor.Location()
	var when time.Time
	if w.instant != nil {
		when = *w.instant
		if w.timeFound {
			y, m, d := when.Date()
			when = time.Date(y, m, d, w.hour, w.min, 0, 0, loc)
		}
	} else {
		day := w.anchorDate()
		if w.dateFound {
			day = w.date
		}
		when = time.Date(day.Year(), day.Month(), day.Day(), w.hour, w.min, 0, 0, loc)
	}

	var rest []string
	for i, tok := range w.orig {
		if !w.used[i] {
			rest = append(rest, tok)
		}
	}
	return &parse.ExtractedDateTime{When: when, Remainder: strings.Join(rest, " ")}, nil
}

// dtWalk scans the token stream once, consuming each date or time phrase
// it recognizes and accumulating the resolved components.
type dtWalk struct {
	v      *vocab
	anchor time.Time
	orig   []string
	toks   []string
	used   []bool

	dateFound bool
	date      time.Time // midnight in the anchor's location
	timeFound bool
	hour, min int
	instant   *time.Time // set when a sub-day offset fixed the exact moment
}

func (w *dtWalk) run() {
	for i := range w.toks {
		if w.used[i] {
			continue
		}
		switch {
		case w.dayWord(i):
		case w.nextLast(i):
		case w.weekday(i):
		case w.monthDay(i):
		case w.relative(i):
		case w.clock(i):
		case w.namedTime(i):
		}
	}
}

// tok yields the lowered token at i, or "" when i is out of range or the
// token is already consumed.
func (w *dtWalk) tok(i int) string {
	if i < 0 || i >= len(w.toks) || w.used[i] {
		return ""
	}
	return w.toks[i]
}

func (w *dtWalk) take(is ...int) {
	for _, i := range is {
		w.used[i] = true
	}
}

func (w *dtWalk) anchorDate() time.Time {
	y, m, d := w.anchor.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, w.anchor.Location())
}

func (w *dtWalk) setDate(t time.Time) {
	w.date = t
	w.dateFound = true
}

func (w *dtWalk) setTime(hour, min int) {
	w.hour, w.min = hour, min
	w.timeFound = true
}

// daysUntil is the offset to the next occurrence of wd strictly after the
// anchor date, so "monday" said on a Monday means next week's.
func (w *dtWalk) daysUntil(wd time.Weekday) int {
	off := (int(wd) - int(w.anchor.Weekday()) + 7) % 7
	if off == 0 {
		off = 7
	}
	return off
}

func (w *dtWalk) dayWord(i int) bool {
	switch w.tok(i) {
	case "today":
		w.setDate(w.anchorDate())
	case "tomorrow":
		w.setDate(w.anchorDate().AddDate(0, 0, 1))
	case "yesterday":
		w.setDate(w.anchorDate().AddDate(0, 0, -1))
	case "day":
		if w.tok(i+1) != "after" || w.tok(i+2) != "tomorrow" {
			return false
		}
		w.setDate(w.anchorDate().AddDate(0, 0, 2))
		w.take(i+1, i+2)
	default:
		return false
	}
	w.take(i)
	return true
}

func (w *dtWalk) nextLast(i int) bool {
	word := w.tok(i)
	if word != "next" && word != "last" && word != "this" && word != "on" {
		return false
	}
	next := w.tok(i + 1)
	if wd, ok := w.v.weekdays[next]; ok && word != "last" {
		w.setDate(w.anchorDate().AddDate(0, 0, w.daysUntil(wd)))
		w.take(i, i+1)
		return true
	}
	if word != "next" && word != "last" {
		return false
	}
	sign := 1
	if word == "last" {
		sign = -1
	}
	switch next {
	case "week":
		w.setDate(w.anchorDate().AddDate(0, 0, 7*sign))
	case "month":
		w.setDate(w.anchorDate().AddDate(0, sign, 0))
	case "year":
		w.setDate(w.anchorDate().AddDate(sign, 0, 0))
	default:
		return false
	}
	w.take(i, i+1)
	return true
}

func (w *dtWalk) weekday(i int) bool {
	wd, ok := w.v.weekdays[w.tok(i)]
	if !ok {
		return false
	}
	w.setDate(w.anchorDate().AddDate(0, 0, w.daysUntil(wd)))
	w.take(i)
	return true
}

func (w *dtWalk) monthDay(i int) bool {
	month, ok := w.v.months[w.tok(i)]
	if !ok {
		return false
	}

	// "june 5", "june the fifth"
	j := i + 1
	if w.tok(j) == "the" {
		j++
	}
	if day, ok := w.dayNumber(w.tok(j)); ok {
		w.setMonthDay(month, day)
		w.take(i, j)
		if j == i+2 {
			w.take(i + 1)
		}
		return true
	}

	// "5th of june", "the 5th of june"
	if w.tok(i-1) == "of" {
		if day, ok := w.dayNumber(w.tok(i - 2)); ok {
			w.setMonthDay(month, day)
			w.take(i-2, i-1, i)
			if w.tok(i-3) == "the" {
				w.take(i - 3)
			}
			return true
		}
	}
	return false
}

func (w *dtWalk) dayNumber(tok string) (int, bool) {
	if tok == "" {
		return 0, false
	}
	if m := digitOrdRE.FindStringSubmatch(tok); m != nil {
		tok = m[1]
	}
	if n, err := strconv.Atoi(tok); err == nil {
		if n >= 1 && n <= 31 {
			return n, true
		}
		return 0, false
	}
	if n, ok := w.v.ordinals[tok]; ok && n <= 31 {
		return n, true
	}
	return 0, false
}

// setMonthDay resolves a month and day against the anchor year, rolling a
// whole year forward when the day has already passed.
func (w *dtWalk) setMonthDay(month time.Month, day int) {
	d := time.Date(w.anchor.Year(), month, day, 0, 0, 0, 0, w.anchor.Location())
	if d.Before(w.anchorDate()) {
		d = d.AddDate(1, 0, 0)
	}
	w.setDate(d)
}

// relative handles "in 3 days" and "2 weeks from sunday". Day-or-larger
// units shift the date; smaller units offset the anchor instant.
func (w *dtWalk) relative(i int) bool {
	n, ok := w.amount(w.tok(i))
	if !ok {
		return false
	}
	secs, ok := w.v.durationWords[w.tok(i+1)]
	if !ok {
		return false
	}
	delta := time.Duration(n * secs * float64(time.Second))

	if w.tok(i+2) == "from" {
		base, ok := w.relativeBase(i + 3)
		if !ok {
			return false
		}
		w.applyDelta(base, delta, secs)
		w.take(i, i+1, i+2, i+3)
		return true
	}
	if w.tok(i-1) == "in" {
		w.applyDelta(w.anchor, delta, secs)
		w.take(i-1, i, i+1)
		return true
	}
	return false
}

func (w *dtWalk) amount(tok string) (float64, bool) {
	if tok == "" {
		return 0, false
	}
	if n, err := strconv.ParseFloat(tok, 64); err == nil {
		return n, true
	}
	if n, ok := w.v.cardinals[tok]; ok {
		return n, true
	}
	return 0, false
}

func (w *dtWalk) relativeBase(i int) (time.Time, bool) {
	switch tok := w.tok(i); tok {
	case "now":
		return w.anchor, true
	case "today":
		return w.anchorDate(), true
	case "tomorrow":
		return w.anchorDate().AddDate(0, 0, 1), true
	default:
		if wd, ok := w.v.weekdays[tok]; ok {
			return w.anchorDate().AddDate(0, 0, w.daysUntil(wd)), true
		}
	}
	return time.Time{}, false
}

func (w *dtWalk) applyDelta(base time.Time, delta time.Duration, unitSeconds float64) {
	if unitSeconds >= 86400 {
		days := int(delta / (24 * time.Hour))
		y, m, d := base.Date()
		w.setDate(time.Date(y, m, d, 0, 0, 0, 0, w.anchor.Location()).AddDate(0, 0, days))
		return
	}
	at := base.Add(delta)
	w.instant = &at
}

func (w *dtWalk) clock(i int) bool {
	tok := w.tok(i)
	if m := clockRE.FindStringSubmatch(tok); m != nil {
		hour, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if hour > 23 || min > 59 {
			return false
		}
		hour = w.applyMeridiem(hour, i)
		w.setTime(hour, min)
		w.take(i)
		if w.tok(i-1) == "at" {
			w.take(i - 1)
		}
		return true
	}

	// bare hour: "at 7", "5 pm"
	hour, err := strconv.Atoi(tok)
	if err != nil || hour < 0 || hour > 23 {
		return false
	}
	if meridiem(w.tok(i+1)) == "" && w.tok(i-1) != "at" {
		return false
	}
	hour = w.applyMeridiem(hour, i)
	w.setTime(hour, 0)
	w.take(i)
	if w.tok(i-1) == "at" {
		w.take(i - 1)
	}
	return true
}

// applyMeridiem folds a trailing am/pm marker into the hour and consumes it.
func (w *dtWalk) applyMeridiem(hour, i int) int {
	switch meridiem(w.tok(i + 1)) {
	case "am":
		hour = hour % 12
		w.take(i + 1)
	case "pm":
		hour = hour%12 + 12
		w.take(i + 1)
	}
	return hour
}

func meridiem(tok string) string {
	tok = strings.ReplaceAll(tok, ".", "")
	if tok == "am" || tok == "pm" {
		return tok
	}
	return ""
}

func (w *dtWalk) namedTime(i int) bool {
	switch w.tok(i) {
	case "noon":
		w.setTime(12, 0)
	case "midnight":
		w.setTime(0, 0)
	case "morning":
		w.vagueHour(8)
	case "afternoon":
		w.vagueHour(15)
	case "evening":
		w.vagueHour(19)
	default:
		return false
	}
	w.take(i)
	if w.tok(i-1) == "the" && w.tok(i-2) == "in" {
		w.take(i-2, i-1)
	}
	return true
}

// vagueHour fills the original's arbitrary hour for a named part of day,
// or folds an already-found morning hour forward ("8 in the evening").
func (w *dtWalk) vagueHour(hour int) {
	if w.timeFound {
		if hour >= 12 && w.hour < 12 {
			w.hour += 12
		}
		return
	}
	w.setTime(hour, 0)
}
