package de

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxSpoken bounds the composed number words; the pack does not yet carry
// the gendered million/milliard forms.
const maxSpoken = 1_000_000

type pronounceInput struct {
	// German composes its own scale, so of the top-level contract only
	// places is accepted here; short_scale and scientific are dropped by
	// the dispatcher.
	Places int `lingua:"places"`
}

// pronounceNumber renders a number as speakable German, units before tens:
// 21 is "einundzwanzig", 4.5 is "vier Komma fünf".
func (v *vocab) pronounceNumber(ctx context.Context, number float64, in *pronounceInput) (string, error) {
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return "", fmt.Errorf("cannot pronounce %v", number)
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

	intVal, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil || intVal >= maxSpoken {
		return "", fmt.Errorf("%v is beyond this pack's spoken range", number)
	}

	result := v.sayInteger(intVal)
	if fracPart != "" {
		parts := []string{result, v.words.Get(Lang, "point")}
		for _, digit := range fracPart {
			parts = append(parts, v.ones[digit-'0'])
		}
		result = strings.Join(parts, " ")
	}
	return result, nil
}

// sayInteger composes a number word. German glues the parts together:
// 1234 is "eintausendzweihundertvierunddreißig".
func (v *vocab) sayInteger(n int64) string {
	if n < 1000 {
		return v.sayUnder1000(n, false)
	}
	head := prefixOne(v.sayUnder1000(n/1000, true))
	s := head + "tausend"
	if rem := n % 1000; rem != 0 {
		s += v.sayUnder1000(rem, false)
	}
	return s
}

func (v *vocab) sayUnder1000(n int64, asPrefix bool) string {
	if n >= 100 {
		s := prefixOne(v.ones[n/100]) + v.manifest.Numbers.Hundred
		if rem := n % 100; rem != 0 {
			s += v.sayUnder100(rem, asPrefix)
		}
		return s
	}
	return v.sayUnder100(n, asPrefix)
}

func (v *vocab) sayUnder100(n int64, asPrefix bool) string {
	if n < 20 {
		word := v.ones[n]
		if asPrefix {
			word = prefixOne(word)
		}
		return word
	}
	tens := v.tens[n/10-2]
	if unit := n % 10; unit != 0 {
		return prefixOne(v.ones[unit]) + "und" + tens
	}
	return tens
}

// prefixOne turns the standalone "eins" into the bound form "ein" used
// before scale words and in compounds.
func prefixOne(word string) string {
	if word == "eins" {
		return "ein"
	}
	return word
}

type niceNumberInput struct {
	// denominators from the top-level contract is not accepted; the pack
	// always offers halves through twentieths.
	Speech bool `lingua:"speech"`
}

// niceNumber renders a number with a fraction word when one fits:
// 4.5 as "vier und ein halb".
func (v *vocab) niceNumber(ctx context.Context, number float64, in *niceNumberInput) (string, error) {
	den := 0
	for d := 2; d <= 20; d++ {
		mult := number * float64(d)
		if math.Abs(mult-math.Round(mult)) < 1e-8 {
			den = d
			break
		}
	}

	abs := math.Abs(number)
	whole := int64(math.Trunc(abs))
	var num int64
	if den != 0 {
		num = int64(math.Round((abs - math.Trunc(abs)) * float64(den)))
	}
	if den == 0 || num == 0 {
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

	word := v.manifest.Numbers.Fractions[den-2]
	var frac string
	if num == 1 {
		frac = v.words.Get(Lang, "one_fraction") + " " + word
	} else {
		frac = v.sayInteger(num) + " " + word
	}

	result := frac
	if whole != 0 {
		result = v.sayInteger(whole) + " " + v.words.Get(Lang, "and") + " " + frac
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
