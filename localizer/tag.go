package localizer

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Tag is a parsed locale identifier. Only Primary participates in
// implementation lookup; Region is informational and is consumed by the
// resource layer, never by the resolver.
type Tag struct {
	// Primary is the lowercase language family, e.g. "en" or "de".
	Primary string
	// Region is the uppercase dialect/country refinement, e.g. "GB".
	// Empty when the caller supplied a bare language code.
	Region string
}

// ParseTag splits a locale code such as "en", "en-US" or "pt_pt" into its
// primary and region parts. Matching everywhere in this package is
// case-insensitive, so the parts are canonicalized here once: primary
// lowercase, region uppercase.
func ParseTag(code string) (Tag, error) {
	raw := strings.TrimSpace(code)
	if raw == "" {
		return Tag{}, fmt.Errorf("empty locale code")
	}
	raw = strings.ReplaceAll(raw, "_", "-")

	// Prefer the BCP-47 parser, which also canonicalizes deprecated codes.
	// It rejects tags it has no registry entry for, so fall through to a
	// plain split for anything it refuses.
	if parsed, err := language.Parse(raw); err == nil {
		base, _ := parsed.Base()
		tag := Tag{Primary: strings.ToLower(base.String())}
		if region, _ := parsed.Region(); region.IsCountry() {
			tag.Region = strings.ToUpper(region.String())
		}
		return tag, nil
	}

	parts := strings.Split(raw, "-")
	primary := strings.ToLower(parts[0])
	if !isAlpha(primary) {
		return Tag{}, fmt.Errorf("malformed locale code %q", code)
	}
	tag := Tag{Primary: primary}
	if len(parts) > 1 && parts[1] != "" {
		tag.Region = strings.ToUpper(parts[1])
	}
	return tag, nil
}

// String renders the tag in the conventional "en-US" shape.
func (t Tag) String() string {
	if t.Region == "" {
		return t.Primary
	}
	return t.Primary + "-" + t.Region
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
