package en

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ChanceNCounter/lingua-franca/parse"
)

type extractNumberInput struct {
	ShortScale bool `lingua:"short_scale"`
	Ordinals   bool `lingua:"ordinals"`
}

// extractNumber finds the first number in the text, spelled out or in
// digits. A nil result means the text contains none.
func (v *vocab) extractNumber(ctx context.Context, text string, in *extractNumberInput) (*float64, error) {
	nums := v.scanNumbers(text, in)
	if len(nums) == 0 {
		return nil, nil
	}
	return &nums[0], nil
}

// extractNumbers finds every number in the text, in order of appearance.
func (v *vocab) extractNumbers(ctx context.Context, text string, in *extractNumberInput) ([]float64, error) {
	return v.scanNumbers(text, in), nil
}

var wordSplitRE = regexp.MustCompile(`[^\pL\pN./']+`)

func tokenizeNumbers(text string) []string {
	// Hyphens split so "twenty-two" reads as two words.
	text = strings.ReplaceAll(strings.ToLower(text), "-", " ")
	var tokens []string
	for _, tok := range wordSplitRE.Split(text, -1) {
		tok = strings.Trim(tok, ".")
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func (v *vocab) scanNumbers(text string, in *extractNumberInput) []float64 {
	scale := v.scaleShort
	if !in.ShortScale {
		scale = v.scaleLong
	}

	var results []float64
	state := newNumberState(v, scale, in.Ordinals)
	for _, tok := range tokenizeNumbers(text) {
		if state.feed(tok) {
			continue
		}
		if state.active {
			results = append(results, state.value())
		}
		state = newNumberState(v, scale, in.Ordinals)
		state.feed(tok)
	}
	if state.active {
		results = append(results, state.value())
	}
	return results
}

// numberState accumulates one spoken number, token by token. feed reports
// whether the token extended the number; a refusal closes the group.
type numberState struct {
	v        *vocab
	scale    map[string]int
	ordinals bool

	total   float64
	current float64
	frac    float64

	active     bool
	neg        bool
	done       bool
	usedDigits bool
	onesSet    bool
	tensSet    bool
	pendingA   bool
	pendingAnd bool
}

func newNumberState(v *vocab, scale map[string]int, ordinals bool) *numberState {
	return &numberState{v: v, scale: scale, ordinals: ordinals}
}

var digitOrdinalRE = regexp.MustCompile(`^(\d+)(st|nd|rd|th)$`)

func (s *numberState) feed(tok string) bool {
	if s.done {
		return false
	}

	switch tok {
	case "minus", "negative":
		if s.active || s.neg {
			return false
		}
		s.neg = true
		return true
	case "and":
		if !s.active {
			return false
		}
		s.pendingAnd = true
		return true
	case "a", "an":
		// Possibly "a half"; harmless to swallow when it turns out to be
		// an article, since an inactive state contributes nothing.
		if s.active && !s.pendingAnd {
			return false
		}
		s.pendingA = true
		return true
	}

	if value, err := strconv.ParseFloat(tok, 64); err == nil {
		if s.active {
			return false
		}
		s.current = value
		s.active = true
		s.usedDigits = true
		return true
	}

	if s.ordinals {
		if m := digitOrdinalRE.FindStringSubmatch(tok); m != nil {
			if s.active {
				return false
			}
			value, _ := strconv.ParseFloat(m[1], 64)
			s.current = value
			s.active = true
			s.done = true
			return true
		}
		if value, ok := s.v.ordinals[tok]; ok {
			if s.active {
				// "twenty first" composes; anything else closes the group.
				if !s.tensSet || s.onesSet || value >= 10 {
					return false
				}
				s.current += float64(value)
				s.done = true
				return true
			}
			s.current = float64(value)
			s.active = true
			s.done = true
			return true
		}
	}

	if value, ok := s.v.cardinals[tok]; ok {
		if value < 20 {
			if s.active && (s.onesSet || s.usedDigits) {
				return false
			}
			s.current += value
			s.onesSet = true
		} else {
			if s.active && (s.tensSet || s.onesSet || s.usedDigits) {
				return false
			}
			s.current += value
			s.tensSet = true
		}
		s.active = true
		return true
	}

	if tok == s.v.manifest.Numbers.Hundred {
		if s.current == 0 {
			s.current = 1
		}
		s.current *= 100
		s.active = true
		s.onesSet, s.tensSet, s.usedDigits = false, false, false
		return true
	}

	if exp, ok := s.scale[tok]; ok {
		group := s.current
		if group == 0 {
			group = 1
		}
		s.total += group * pow10(exp)
		s.current = 0
		s.active = true
		s.onesSet, s.tensSet, s.usedDigits = false, false, false
		return true
	}

	if den, ok := s.v.fractions[tok]; ok {
		numerator := 1.0
		if s.active && !s.pendingA && !s.pendingAnd && s.current > 0 {
			// "two thirds"
			numerator = s.current
			s.current = 0
		}
		s.frac += numerator / float64(den)
		s.active = true
		s.done = true
		return true
	}

	return false
}

func (s *numberState) value() float64 {
	value := s.total + s.current + s.frac
	if s.neg {
		value = -value
	}
	return value
}

// extractDuration sums duration phrases like "3 minutes 30 seconds" and
// returns the text with those phrases removed.
func (v *vocab) extractDuration(ctx context.Context, text string) (parse.ExtractedDuration, error) {
	matches := v.durationRE.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return parse.ExtractedDuration{Remainder: text}, nil
	}

	var totalSeconds float64
	remainder := text
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		amount, _ := strconv.ParseFloat(text[m[2]:m[3]], 64)
		unit := strings.ToLower(text[m[4]:m[5]])
		totalSeconds += amount * v.durationWords[unit]
		remainder = remainder[:m[0]] + remainder[m[1]:]
	}

	remainder = strings.Join(strings.Fields(remainder), " ")
	return parse.ExtractedDuration{
		Duration:  time.Duration(math.Round(totalSeconds * float64(time.Second))),
		Remainder: remainder,
	}, nil
}

type normalizeInput struct {
	RemoveArticles bool `lingua:"remove_articles"`
}

// normalize expands contractions, applies canonical word replacements, and
// optionally strips articles.
func (v *vocab) normalize(ctx context.Context, text string, in *normalizeInput) (string, error) {
	tables := v.manifest.Normalize
	if tables == nil {
		return text, nil
	}

	articles := make(map[string]struct{}, len(tables.Articles))
	for _, a := range tables.Articles {
		articles[a] = struct{}{}
	}

	var out []string
	for _, word := range strings.Fields(text) {
		lower := strings.ToLower(word)
		if in.RemoveArticles {
			if _, isArticle := articles[lower]; isArticle {
				continue
			}
		}
		if replacement, ok := tables.Contractions[lower]; ok {
			out = append(out, strings.Fields(replacement)...)
			continue
		}
		if replacement, ok := tables.Replacements[lower]; ok {
			out = append(out, strings.Fields(replacement)...)
			continue
		}
		out = append(out, word)
	}
	return strings.Join(out, " "), nil
}
