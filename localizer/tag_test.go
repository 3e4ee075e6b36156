package localizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		code      string
		expectErr bool
		expected  Tag
	}{
		{
			name:     "bare language",
			code:     "en",
			expected: Tag{Primary: "en"},
		},
		{
			name:     "language with region",
			code:     "en-US",
			expected: Tag{Primary: "en", Region: "US"},
		},
		{
			name:     "underscore separator",
			code:     "pt_pt",
			expected: Tag{Primary: "pt", Region: "PT"},
		},
		{
			name:     "mixed case is canonicalized",
			code:     "EN-gb",
			expected: Tag{Primary: "en", Region: "GB"},
		},
		{
			name:     "surrounding whitespace",
			code:     "  de ",
			expected: Tag{Primary: "de"},
		},
		{
			name:      "empty",
			code:      "",
			expectErr: true,
		},
		{
			name:      "blank",
			code:      "   ",
			expectErr: true,
		},
		{
			name:      "numeric garbage",
			code:      "42-US",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tag, err := ParseTag(tc.code)
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, tag)
		})
	}
}

func TestTagString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "en", Tag{Primary: "en"}.String())
	assert.Equal(t, "en-US", Tag{Primary: "en", Region: "US"}.String())
}
