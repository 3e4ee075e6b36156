// Package en is the English locale pack. Importing it registers English
// with the default localizer; the linguistic tables live in the embedded
// res/ directory rather than in code.
package en

import (
	"embed"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	lingua "github.com/ChanceNCounter/lingua-franca"
	"github.com/ChanceNCounter/lingua-franca/internal/resource"
	"github.com/ChanceNCounter/lingua-franca/localizer"
)

// Lang is the primary tag this pack implements.
const Lang = "en"

//go:embed res
var resFS embed.FS

// Pack registers the English implementations. The zero value is ready to
// use; all instances share the embedded, once-decoded vocabulary.
type Pack struct{}

func init() {
	lingua.RegisterPack(&Pack{})
}

// Register wires English into a catalog/registry pair.
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
	formatArea.RegisterFunc("nice_time", Lang, &localizer.Func{
		NewInput: func() any { return new(niceTimeInput) },
		Fn:       v.niceTime,
	})
	formatArea.RegisterFunc("nice_ordinal", Lang, &localizer.Func{
		NewInput: func() any { return new(ordinalInput) },
		Fn:       v.niceOrdinal,
	})
	formatArea.RegisterFunc("nice_part_of_day", Lang, &localizer.Func{
		Fn: v.nicePartOfDay,
	})
	formatArea.RegisterFunc("nice_duration", Lang, &localizer.Func{
		NewInput: func() any { return new(niceDurationInput) },
		Fn:       v.niceDuration,
	})

	parseArea := r.DeclareArea("parse")
	parseArea.RegisterFunc("extract_number", Lang, &localizer.Func{
		NewInput: func() any { return new(extractNumberInput) },
		Fn:       v.extractNumber,
	})
	parseArea.RegisterFunc("extract_numbers", Lang, &localizer.Func{
		NewInput: func() any { return new(extractNumberInput) },
		Fn:       v.extractNumbers,
	})
	parseArea.RegisterFunc("extract_duration", Lang, &localizer.Func{
		Fn: v.extractDuration,
	})
	parseArea.RegisterFunc("extract_datetime", Lang, &localizer.Func{
		NewInput: func() any { return new(extractDateTimeInput) },
		Fn:       v.extractDateTime,
	})
	parseArea.RegisterFunc("normalize", Lang, &localizer.Func{
		NewInput: func() any { return new(normalizeInput) },
		Fn:       v.normalize,
	})
}

// vocab is the decoded English vocabulary plus the lookup tables derived
// from it. Built once; read-only afterwards.
type vocab struct {
	manifest *resource.Manifest
	words    *resource.Words

	ones []string
	tens []string

	stepsShort []resource.ScaleStep
	stepsLong  []resource.ScaleStep

	// parse-side inversions
	cardinals  map[string]float64
	scaleShort map[string]int
	scaleLong  map[string]int
	fractions  map[string]int
	ordinals   map[string]int

	durationRE    *regexp.Regexp
	durationWords map[string]float64
	durationUnits map[string]*resource.DurationUnit

	weekdays map[string]time.Weekday
	months   map[string]time.Month
}

var loadOnce = sync.OnceValue(func() *vocab {
	manifest, err := resource.LoadManifest(resFS, "res/vocab.hcl")
	if err != nil {
		panic(fmt.Sprintf("lang/en: %v", err))
	}
	words, err := resource.LoadWords(resFS, Lang, "res/messages.en.toml")
	if err != nil {
		panic(fmt.Sprintf("lang/en: %v", err))
	}

	v := &vocab{
		manifest:   manifest,
		words:      words,
		ones:       manifest.Numbers.Ones,
		tens:       manifest.Numbers.Tens,
		cardinals:  make(map[string]float64),
		scaleShort: make(map[string]int),
		scaleLong:  make(map[string]int),
		fractions:  make(map[string]int),
		ordinals:   make(map[string]int),
	}

	for i, word := range v.ones {
		v.cardinals[word] = float64(i)
	}
	for i, word := range v.tens {
		v.cardinals[word] = float64((i + 2) * 10)
	}
	if s := manifest.Scale("short"); s != nil {
		v.scaleShort = s.Words
		v.stepsShort = s.Steps()
	}
	if s := manifest.Scale("long"); s != nil {
		v.scaleLong = s.Words
		v.stepsLong = s.Steps()
	}
	for i, word := range manifest.Numbers.Fractions {
		den := i + 2
		v.fractions[word] = den
		v.fractions[pluralFraction(word)] = den
	}
	for i, word := range manifest.Numbers.OrdinalOnes {
		v.ordinals[word] = i + 1
	}
	for i, word := range manifest.Numbers.OrdinalTens {
		v.ordinals[word] = (i + 2) * 10
	}

	v.durationWords = make(map[string]float64)
	v.durationUnits = make(map[string]*resource.DurationUnit)
	var unitWords []string
	for _, unit := range manifest.Duration.Units {
		v.durationUnits[unit.Name] = unit
		for _, word := range unit.Words {
			v.durationWords[strings.ToLower(word)] = unit.Seconds
			unitWords = append(unitWords, regexp.QuoteMeta(strings.ToLower(word)))
		}
	}
	// Longest alternative first so "minutes" wins over "min".
	sort.Slice(unitWords, func(i, j int) bool { return len(unitWords[i]) > len(unitWords[j]) })
	v.durationRE = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(` + strings.Join(unitWords, "|") + `)\b`)

	v.weekdays = make(map[string]time.Weekday)
	v.months = make(map[string]time.Month)
	if dt := manifest.DateTime; dt != nil {
		for i, word := range dt.Weekdays {
			// The manifest lists Monday first; time.Weekday counts from Sunday.
			v.weekdays[word] = time.Weekday((i + 1) % 7)
		}
		for i, word := range dt.Months {
			v.months[word] = time.Month(i + 1)
		}
	}

	return v
})

func load() *vocab { return loadOnce() }

func pluralFraction(word string) string {
	if strings.HasSuffix(word, "lf") {
		return strings.TrimSuffix(word, "f") + "ves"
	}
	return word + "s"
}

func pow10(exp int) float64 { return math.Pow(10, float64(exp)) }
