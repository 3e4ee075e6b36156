package format_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChanceNCounter/lingua-franca/format"
	"github.com/ChanceNCounter/lingua-franca/localizer"

	_ "github.com/ChanceNCounter/lingua-franca/lang/de"
	_ "github.com/ChanceNCounter/lingua-franca/lang/en"
)

func TestPronounceNumber(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("nil options take the defaults", func(t *testing.T) {
		t.Parallel()
		got, err := format.PronounceNumber(ctx, 4.2, nil)
		require.NoError(t, err)
		assert.Equal(t, "four point two", got)
	})

	t.Run("explicit locale", func(t *testing.T) {
		t.Parallel()
		got, err := format.PronounceNumber(ctx, 21, &format.PronounceOptions{Lang: "de", Places: 2})
		require.NoError(t, err)
		assert.Equal(t, "einundzwanzig", got)
	})

	t.Run("long scale", func(t *testing.T) {
		t.Parallel()
		got, err := format.PronounceNumber(ctx, 1e9, &format.PronounceOptions{Lang: "en", Places: 2, LongScale: true})
		require.NoError(t, err)
		assert.Equal(t, "one milliard", got)
	})

	// The German implementation accepts only the places keyword; the
	// others are dropped on dispatch rather than rejected.
	t.Run("keyword subset in german", func(t *testing.T) {
		t.Parallel()
		got, err := format.PronounceNumber(ctx, 21, &format.PronounceOptions{
			Lang:      "de",
			Places:    2,
			LongScale: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "einundzwanzig", got)
	})
}

func TestNiceNumber(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got, err := format.NiceNumber(ctx, 4.5, nil)
	require.NoError(t, err)
	assert.Equal(t, "four and a half", got)

	got, err = format.NiceNumber(ctx, 4.5, &format.NiceNumberOptions{Lang: "de", Speech: true})
	require.NoError(t, err)
	assert.Equal(t, "vier und ein halb", got)

	got, err = format.NiceNumber(ctx, 4.5, &format.NiceNumberOptions{Lang: "en"})
	require.NoError(t, err)
	assert.Equal(t, "4 1/2", got)
}

func TestNiceTime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	at := time.Date(2026, time.March, 14, 13, 25, 0, 0, time.UTC)

	got, err := format.NiceTime(ctx, at, nil)
	require.NoError(t, err)
	assert.Equal(t, "one twenty five", got)

	got, err = format.NiceTime(ctx, at, &format.NiceTimeOptions{Lang: "en", Speech: true, Use24Hour: true})
	require.NoError(t, err)
	assert.Equal(t, "thirteen twenty five", got)
}

func TestNiceOrdinal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got, err := format.NiceOrdinal(ctx, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, "third", got)

	got, err = format.NiceOrdinal(ctx, 21, &format.OrdinalOptions{Lang: "en"})
	require.NoError(t, err)
	assert.Equal(t, "21st", got)
}

func TestNiceDuration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got, err := format.NiceDuration(ctx, 163*time.Second, nil)
	require.NoError(t, err)
	assert.Equal(t, "two minutes forty three seconds", got)

	got, err = format.NiceDuration(ctx, 163*time.Second, &format.NiceDurationOptions{Lang: "en"})
	require.NoError(t, err)
	assert.Equal(t, "2:43", got)
}

func TestNicePartOfDay(t *testing.T) {
	t.Parallel()

	got, err := format.NicePartOfDay(context.Background(),
		time.Date(2026, time.March, 14, 8, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)
	assert.Equal(t, "morning", got)
}

// German implements only part of the format area; the rest reports a
// localization gap instead of falling back to English.
func TestFormatLocalizationGap(t *testing.T) {
	t.Parallel()

	_, err := format.NiceOrdinal(context.Background(), 3, &format.OrdinalOptions{Lang: "de-DE", Speech: true})
	var gap *localizer.FunctionNotLocalizedError
	require.ErrorAs(t, err, &gap)
	assert.Equal(t, "nice_ordinal", gap.Operation)
	assert.Equal(t, "de", gap.Lang)
}

func TestFormatUnsupportedLocale(t *testing.T) {
	t.Parallel()

	_, err := format.PronounceNumber(context.Background(), 1, &format.PronounceOptions{Lang: "sv"})
	var unsupported *localizer.UnsupportedLocaleError
	require.ErrorAs(t, err, &unsupported)
	assert.Contains(t, unsupported.Supported, "en")
	assert.Contains(t, unsupported.Supported, "de")
}
