package localizer

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	c := NewCatalog("en-US")
	assert.Equal(t, Tag{Primary: "en", Region: "US"}, c.Active())
	assert.True(t, c.IsSupported("en"))
	assert.True(t, c.IsSupported("en-GB"), "support is judged on the primary tag")
	assert.False(t, c.IsSupported("de"))

	assert.Panics(t, func() { NewCatalog("") })
}

func TestCatalogRegister(t *testing.T) {
	t.Parallel()

	c := NewCatalog("en")
	c.Register("de", "fr-FR")
	c.Register("de") // idempotent

	assert.Equal(t, []string{"de", "en", "fr"}, c.Supported())
	assert.Panics(t, func() { c.Register("12!") })
}

func TestCatalogSetActive(t *testing.T) {
	t.Parallel()

	c := NewCatalog("en")
	c.Register("de")

	require.NoError(t, c.SetActive("de"))
	assert.Equal(t, "de", c.Active().String())

	// The full tag is retained, not just the primary.
	require.NoError(t, c.SetActive("en-GB"))
	assert.Equal(t, Tag{Primary: "en", Region: "GB"}, c.Active())

	err := c.SetActive("sv")
	var unsupported *UnsupportedLocaleError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "sv", unsupported.Tag)
	assert.Equal(t, []string{"de", "en"}, unsupported.Supported)

	// A failed switch leaves the active locale untouched.
	assert.Equal(t, Tag{Primary: "en", Region: "GB"}, c.Active())
}

// TestCatalogConcurrentAccess exercises the catalog from many goroutines at
// once. Readers must always observe a fully-formed tag, never a torn one.
func TestCatalogConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := NewCatalog("en")
	for i := 0; i < 8; i++ {
		c.Register(fmt.Sprintf("l%c", 'a'+i))
	}

	valid := map[string]bool{"en": true}
	for i := 0; i < 8; i++ {
		valid[fmt.Sprintf("l%c", 'a'+i)] = true
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		code := fmt.Sprintf("l%c", 'a'+i)
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.NoError(t, c.SetActive(code))
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				active := c.Active().Primary
				assert.True(t, valid[active], "active tag %q is not one that was ever set", active)
				c.IsSupported(code)
				c.Supported()
			}
		}()
	}
	wg.Wait()
}
