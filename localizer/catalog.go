package localizer

import (
	"fmt"
	"sort"
	"sync"
)

// Catalog tracks the set of primary locale tags the process recognizes and
// the process-wide active locale used whenever a caller does not name one.
//
// The active locale is an intentional global default shared by every
// dispatch that omits an explicit locale, so reads and writes go through a
// lock: a reader observes either the old or the new value, never a mixture.
type Catalog struct {
	mu        sync.RWMutex
	supported map[string]struct{}
	active    Tag
}

// NewCatalog returns a catalog with defaultTag both registered and active.
// A malformed default is a programmer error and panics.
func NewCatalog(defaultTag string) *Catalog {
	tag, err := ParseTag(defaultTag)
	if err != nil {
		panic(fmt.Sprintf("localizer: invalid default locale %q: %v", defaultTag, err))
	}
	return &Catalog{
		supported: map[string]struct{}{tag.Primary: {}},
		active:    tag,
	}
}

// Register adds locale codes to the supported set. Registration is
// idempotent; re-registering a known tag is a no-op. Malformed codes panic,
// since locale packs register themselves with literal tags at startup.
func (c *Catalog) Register(codes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, code := range codes {
		tag, err := ParseTag(code)
		if err != nil {
			panic(fmt.Sprintf("localizer: invalid locale registration %q: %v", code, err))
		}
		c.supported[tag.Primary] = struct{}{}
	}
}

// SetActive replaces the process-wide default locale. The full tag, region
// included, is retained so the resource layer can refine lookups; support is
// judged on the primary tag alone.
func (c *Catalog) SetActive(code string) error {
	tag, err := ParseTag(code)
	if err != nil {
		return &UnsupportedLocaleError{Tag: code, Supported: c.Supported()}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.supported[tag.Primary]; !ok {
		return &UnsupportedLocaleError{Tag: code, Supported: c.supportedLocked()}
	}
	c.active = tag
	return nil
}

// Active returns the current default locale. It never fails; a catalog is
// born with a valid active tag.
func (c *Catalog) Active() Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// IsSupported reports whether the code's primary tag is in the supported
// set. Comparison is case-insensitive; malformed codes are simply not
// supported.
func (c *Catalog) IsSupported(code string) bool {
	tag, err := ParseTag(code)
	if err != nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.supported[tag.Primary]
	return ok
}

// Supported returns the sorted primary tags currently registered.
func (c *Catalog) Supported() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.supportedLocked()
}

func (c *Catalog) supportedLocked() []string {
	tags := make([]string, 0, len(c.supported))
	for tag := range c.supported {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
