package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Pronounce(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{"pronounce", "21"})
	require.NoError(t, err)
	assert.Equal(t, "twenty one", strings.TrimSpace(out.String()))
}

func TestRun_ExplicitLang(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{"-lang", "de", "pronounce", "21"})
	require.NoError(t, err)
	assert.Equal(t, "einundzwanzig", strings.TrimSpace(out.String()))
}

func TestRun_ExtractNumber(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{"extract-number", "twenty", "two", "birds"})
	require.NoError(t, err)
	assert.Equal(t, "22", strings.TrimSpace(out.String()))
}

func TestRun_NiceTime(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{"nice-time", "13:25"})
	require.NoError(t, err)
	assert.Equal(t, "one twenty five", strings.TrimSpace(out.String()))
}

func TestRun_Normalize(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{"normalize", "I'm", "gonna", "test", "the", "thing"})
	require.NoError(t, err)
	assert.Equal(t, "i am going to test thing", strings.TrimSpace(out.String()))
}

func TestRun_ShouldExit(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})
	require.NoError(t, err, "help should exit cleanly")
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_BadInput(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{"pronounce", "not-a-number"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a number")
}

func TestRun_NoNumberFound(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{"extract-number", "hello", "world"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no number found")
}

func TestRun_NiceDuration(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{"nice-duration", "163"})
	require.NoError(t, err)
	assert.Equal(t, "two minutes forty three seconds", strings.TrimSpace(out.String()))
}

func TestRun_ExtractDateTime(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{"extract-datetime", "tomorrow"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), `remainder: ""`)
}

func TestRun_NoDateTimeFound(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, []string{"extract-datetime", "tell", "me", "a", "joke"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no date or time found")
}
