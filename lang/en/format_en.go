package en

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ChanceNCounter/lingua-franca/internal/resource"
)

type pronounceInput struct {
	Places     int  `lingua:"places"`
	ShortScale bool `lingua:"short_scale"`
	Scientific bool `lingua:"scientific"`
}

// pronounceNumber renders a number as speakable English, e.g. 4.2 as
// "four point two".
func (v *vocab) pronounceNumber(ctx context.Context, number float64, in *pronounceInput) (string, error) {
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return "", fmt.Errorf("cannot pronounce %v", number)
	}

	if in.Scientific {
		return v.pronounceScientific(ctx, number, in)
	}

	if number < 0 {
		rest, err := v.pronounceNumber(ctx, -number, in)
		if err != nil {
			return "", err
		}
		return v.words.Get(Lang, "negative") + " " + rest, nil
	}

	places := in.Places
	if places < 0 {
		places = 0
	}
	rendered := strconv.FormatFloat(number, 'f', places, 64)
	intPart, fracPart, _ := strings.Cut(rendered, ".")
	fracPart = strings.TrimRight(fracPart, "0")

	// Anything past the trillions has no scale word; the caller should ask
	// for scientific notation instead.
	intVal, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return "", fmt.Errorf("%v is too large to pronounce, use scientific notation", number)
	}

	steps := v.stepsShort
	if !in.ShortScale {
		steps = v.stepsLong
	}
	result := v.sayInteger(intVal, steps)

	if fracPart != "" {
		parts := []string{result, v.words.Get(Lang, "point")}
		for _, digit := range fracPart {
			parts = append(parts, v.ones[digit-'0'])
		}
		result = strings.Join(parts, " ")
	}
	return result, nil
}

func (v *vocab) pronounceScientific(ctx context.Context, number float64, in *pronounceInput) (string, error) {
	places := in.Places
	if places < 0 {
		places = 0
	}
	rendered := strconv.FormatFloat(number, 'e', places, 64)
	mantissaStr, expStr, _ := strings.Cut(rendered, "e")
	mantissa, _ := strconv.ParseFloat(mantissaStr, 64)
	exponent, _ := strconv.Atoi(expStr)

	plain := *in
	plain.Scientific = false
	spoken, err := v.pronounceNumber(ctx, mantissa, &plain)
	if err != nil {
		return "", err
	}
	if exponent == 0 {
		return spoken, nil
	}
	expIn := pronounceInput{Places: 0, ShortScale: in.ShortScale}
	expSpoken, err := v.pronounceNumber(ctx, float64(exponent), &expIn)
	if err != nil {
		return "", err
	}
	return spoken + " " + v.words.Get(Lang, "times_ten_to") + " " + expSpoken, nil
}

func (v *vocab) sayUnder100(n int64) string {
	if n < 20 {
		return v.ones[n]
	}
	s := v.tens[n/10-2]
	if n%10 != 0 {
		s += " " + v.ones[n%10]
	}
	return s
}

func (v *vocab) sayUnder1000(n int64) string {
	if n < 100 {
		return v.sayUnder100(n)
	}
	s := v.ones[n/100] + " " + v.manifest.Numbers.Hundred
	if n%100 != 0 {
		s += " " + v.sayUnder100(n%100)
	}
	return s
}

func (v *vocab) sayInteger(n int64, steps []resource.ScaleStep) string {
	if n < 1000 {
		return v.sayUnder1000(n)
	}
	for _, step := range steps {
		p := int64(math.Pow10(step.Exponent))
		if n < p {
			continue
		}
		s := v.sayInteger(n/p, steps) + " " + step.Word
		if n%p != 0 {
			s += " " + v.sayInteger(n%p, steps)
		}
		return s
	}
	return strconv.FormatInt(n, 10)
}

type niceNumberInput struct {
	Speech       bool  `lingua:"speech"`
	Denominators []int `lingua:"denominators"`
}

// niceNumber renders a number with a human fraction when one fits:
// 4.5 as "four and a half", or "4 1/2" in display mode.
func (v *vocab) niceNumber(ctx context.Context, number float64, in *niceNumberInput) (string, error) {
	dens := in.Denominators
	if len(dens) == 0 {
		for d := 2; d <= 20; d++ {
			dens = append(dens, d)
		}
	}

	den := 0
	for _, d := range dens {
		if d < 2 {
			continue
		}
		mult := number * float64(d)
		if math.Abs(mult-math.Round(mult)) < 1e-8 {
			den = d
			break
		}
	}
	if den == 0 {
		return formatDecimal(number), nil
	}

	abs := math.Abs(number)
	whole := int64(math.Trunc(abs))
	num := int64(math.Round((abs - math.Trunc(abs)) * float64(den)))
	if num == 0 {
		return formatDecimal(number), nil
	}
	if num == int64(den) {
		whole++
		return formatSigned(number, strconv.FormatInt(whole, 10)), nil
	}

	if !in.Speech {
		frac := fmt.Sprintf("%d/%d", num, den)
		if whole != 0 {
			frac = fmt.Sprintf("%d %s", whole, frac)
		}
		return formatSigned(number, frac), nil
	}

	if den-2 >= len(v.manifest.Numbers.Fractions) {
		return formatDecimal(number), nil
	}
	word := v.manifest.Numbers.Fractions[den-2]

	var frac string
	if num == 1 {
		frac = "a " + word
	} else {
		frac = v.sayInteger(num, v.stepsShort) + " " + pluralFraction(word)
	}

	result := frac
	if whole != 0 {
		result = v.sayInteger(whole, v.stepsShort) + " " + v.words.Get(Lang, "and") + " " + frac
	}
	if number < 0 {
		result = v.words.Get(Lang, "negative") + " " + result
	}
	return result, nil
}

// formatDecimal prints a number rounded to three places with trailing
// zeros trimmed.
func formatDecimal(number float64) string {
	s := strconv.FormatFloat(number, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func formatSigned(number float64, body string) string {
	if number < 0 {
		return "-" + body
	}
	return body
}

type niceTimeInput struct {
	Speech    bool `lingua:"speech"`
	Use24Hour bool `lingua:"use_24hour"`
	UseAMPM   bool `lingua:"use_ampm"`
}

// niceTime phrases a clock time: "one twenty five", "thirteen hundred",
// or display forms like "1:25 PM".
func (v *vocab) niceTime(ctx context.Context, t time.Time, in *niceTimeInput) (string, error) {
	hour, minute := t.Hour(), t.Minute()

	if !in.Speech {
		if in.Use24Hour {
			return fmt.Sprintf("%d:%02d", hour, minute), nil
		}
		display := fmt.Sprintf("%d:%02d", hour12(hour), minute)
		if in.UseAMPM {
			display += " " + displayMeridiem(hour)
		}
		return display, nil
	}

	if in.Use24Hour {
		spoken := v.sayUnder100(int64(hour))
		switch {
		case minute == 0:
			return spoken + " " + v.manifest.Numbers.Hundred, nil
		case minute < 10:
			return spoken + " " + v.words.Get(Lang, "oh") + " " + v.ones[minute], nil
		default:
			return spoken + " " + v.sayUnder100(int64(minute)), nil
		}
	}

	spoken := v.sayUnder100(int64(hour12(hour)))
	switch {
	case minute == 0:
		spoken += " " + v.words.Get(Lang, "oclock")
	case minute < 10:
		spoken += " " + v.words.Get(Lang, "oh") + " " + v.ones[minute]
	default:
		spoken += " " + v.sayUnder100(int64(minute))
	}
	if in.UseAMPM {
		id := "am"
		if hour >= 12 {
			id = "pm"
		}
		spoken += " " + v.words.Get(Lang, id)
	}
	return spoken, nil
}

func hour12(hour int) int {
	h := hour % 12
	if h == 0 {
		return 12
	}
	return h
}

func displayMeridiem(hour int) string {
	if hour >= 12 {
		return "PM"
	}
	return "AM"
}

type ordinalInput struct {
	Speech bool `lingua:"speech"`
}

// niceOrdinal renders an ordinal: 3 as "third", or "3rd" in display mode.
func (v *vocab) niceOrdinal(ctx context.Context, n int, in *ordinalInput) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("ordinal must be positive, got %d", n)
	}

	if !in.Speech {
		return strconv.Itoa(n) + ordinalSuffix(n), nil
	}
	return v.sayOrdinal(int64(n)), nil
}

func (v *vocab) sayOrdinal(n int64) string {
	switch {
	case n <= 19:
		return v.manifest.Numbers.OrdinalOnes[n-1]
	case n < 100:
		if n%10 == 0 {
			return v.manifest.Numbers.OrdinalTens[n/10-2]
		}
		return v.tens[n/10-2] + " " + v.manifest.Numbers.OrdinalOnes[n%10-1]
	case n%100 == 0:
		// "one hundredth", "two thousandth"
		return v.sayInteger(n, v.stepsShort) + "th"
	default:
		rem := n % 100
		return v.sayInteger(n-rem, v.stepsShort) + " " + v.sayOrdinal(rem)
	}
}

func ordinalSuffix(n int) string {
	if rem := n % 100; rem >= 11 && rem <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// nicePartOfDay names the bucket a time falls into; the names come from
// the message catalog.
func (v *vocab) nicePartOfDay(ctx context.Context, t time.Time) (string, error) {
	h := t.Hour()
	var id string
	switch {
	case h >= 5 && h < 12:
		id = "morning"
	case h >= 12 && h < 17:
		id = "afternoon"
	case h >= 17 && h < 22:
		id = "evening"
	default:
		id = "night"
	}
	return v.words.Get(Lang, id), nil
}

type niceDurationInput struct {
	Speech bool `lingua:"speech"`
}

// niceDuration renders a duration as speakable English ("two minutes
// forty three seconds") or as a clock-style display string ("2:43").
func (v *vocab) niceDuration(ctx context.Context, d time.Duration, in *niceDurationInput) (string, error) {
	if d < 0 {
		return "", fmt.Errorf("duration must not be negative, got %v", d)
	}

	total := int64(d.Seconds() + 0.5)
	days := total / 86400
	hours := total / 3600 % 24
	minutes := total / 60 % 60
	seconds := total % 60

	if !in.Speech {
		var b strings.Builder
		if days > 0 {
			fmt.Fprintf(&b, "%dd ", days)
		}
		if hours > 0 || days > 0 {
			fmt.Fprintf(&b, "%d:%02d:", hours, minutes)
		} else {
			fmt.Fprintf(&b, "%d:", minutes)
		}
		fmt.Fprintf(&b, "%02d", seconds)
		return b.String(), nil
	}

	var parts []string
	for _, c := range []struct {
		n    int64
		unit string
	}{
		{days, "days"},
		{hours, "hours"},
		{minutes, "minutes"},
		{seconds, "seconds"},
	} {
		if c.n == 0 {
			continue
		}
		parts = append(parts, v.sayInteger(c.n, v.stepsShort)+" "+v.unitWord(c.unit, c.n))
	}
	if len(parts) == 0 {
		return v.ones[0] + " " + v.unitWord("seconds", 0), nil
	}
	return strings.Join(parts, " "), nil
}

// unitWord picks the singular or plural spoken form of a duration unit.
func (v *vocab) unitWord(name string, n int64) string {
	unit := v.durationUnits[name]
	if n == 1 {
		return unit.Words[0]
	}
	return unit.Words[1]
}
