// Package resource loads the data files a locale pack ships: an HCL
// vocabulary manifest (number words, duration units, normalization tables)
// and a TOML message catalog for connective words. Packs embed their res/
// directory and decode it once at registration; nothing here is consulted
// again on the dispatch path.
package resource

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Manifest is the decoded form of a locale pack's vocabulary file.
type Manifest struct {
	Locale    LocaleBlock     `hcl:"locale,block"`
	Numbers   *NumbersBlock   `hcl:"numbers,block"`
	Scales    []*ScaleBlock   `hcl:"scale,block"`
	Duration  *DurationBlock  `hcl:"duration,block"`
	DateTime  *DateTimeBlock  `hcl:"datetime,block"`
	Normalize *NormalizeBlock `hcl:"normalize,block"`
}

// LocaleBlock names the locale the manifest belongs to.
type LocaleBlock struct {
	Code string `hcl:"code"`
	Name string `hcl:"name"`
}

// NumbersBlock carries the positional word tables used both to pronounce
// numbers and to parse them back.
type NumbersBlock struct {
	// Ones holds the words for 0..19 in order.
	Ones []string `hcl:"ones"`
	// Tens holds the words for 20, 30, ... 90 in order.
	Tens []string `hcl:"tens"`
	// Hundred is the word for 10^2 where the language uses one.
	Hundred string `hcl:"hundred,optional"`
	// Fractions holds denominator words for 2..N in order ("half" at
	// index 0 meaning denominator 2).
	Fractions []string `hcl:"fractions,optional"`
	// OrdinalOnes holds the ordinal words for 1..19 in order, for
	// languages with irregular ordinals.
	OrdinalOnes []string `hcl:"ordinal_ones,optional"`
	// OrdinalTens holds the ordinal words for 20, 30, ... 90 in order.
	OrdinalTens []string `hcl:"ordinal_tens,optional"`
}

// ScaleBlock maps scale words to their power of ten for one counting
// system. The label is the system name, conventionally "short" or "long".
type ScaleBlock struct {
	Name  string         `hcl:"name,label"`
	Words map[string]int `hcl:"words"`
}

// ScaleStep is one entry of a scale ordered by magnitude.
type ScaleStep struct {
	Word     string
	Exponent int
}

// Steps returns the scale's words ordered from largest to smallest power,
// which is the order a pronouncer consumes them in.
func (s *ScaleBlock) Steps() []ScaleStep {
	steps := make([]ScaleStep, 0, len(s.Words))
	for word, exp := range s.Words {
		steps = append(steps, ScaleStep{Word: word, Exponent: exp})
	}
	sort.Slice(steps, func(i, j int) bool { return steps[i].Exponent > steps[j].Exponent })
	return steps
}

// DurationBlock lists the time units a duration parser recognizes.
type DurationBlock struct {
	Units []*DurationUnit `hcl:"unit,block"`
}

// DurationUnit maps the spoken words for one unit onto its length.
type DurationUnit struct {
	Name    string   `hcl:"name,label"`
	Seconds float64  `hcl:"seconds"`
	Words   []string `hcl:"words"`
}

// DateTimeBlock carries the calendar words a datetime parser recognizes.
type DateTimeBlock struct {
	// Weekdays holds the words for Monday..Sunday in order.
	Weekdays []string `hcl:"weekdays"`
	// Months holds the words for January..December in order.
	Months []string `hcl:"months"`
}

// NormalizeBlock carries the tables for text normalization.
type NormalizeBlock struct {
	Articles     []string          `hcl:"articles,optional"`
	Contractions map[string]string `hcl:"contractions,optional"`
	Replacements map[string]string `hcl:"replacements,optional"`
}

// LoadManifest reads and decodes one vocabulary manifest from an embedded
// filesystem.
func LoadManifest(fsys fs.FS, path string) (*Manifest, error) {
	src, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	file, diags := hclparse.NewParser().ParseHCL(src, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse manifest %s: %w", path, diags)
	}

	var manifest Manifest
	if diags := gohcl.DecodeBody(file.Body, nil, &manifest); diags.HasErrors() {
		return nil, fmt.Errorf("decode manifest %s: %w", path, diags)
	}
	if manifest.Locale.Code == "" {
		return nil, fmt.Errorf("manifest %s: locale block missing code", path)
	}
	return &manifest, nil
}

// Scale returns the named scale block, or nil when the manifest does not
// define it.
func (m *Manifest) Scale(name string) *ScaleBlock {
	for _, s := range m.Scales {
		if s.Name == name {
			return s
		}
	}
	return nil
}
