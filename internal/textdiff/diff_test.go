package textdiff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Compute
// ---------------------------------------------------------------------------

func TestCompute_NoDifferences(t *testing.T) {
	result, err := Compute("a,b\n1,2\n", "a,b\n1,2\n", DefaultOptions())
	require.NoError(t, err)

	assert.False(t, result.HasDifferences)
	assert.Empty(t, result.Unified)
}

func TestCompute_Differences(t *testing.T) {
	opts := DefaultOptions()
	opts.OldLabel = "in.csv"
	opts.NewLabel = "processed"

	result, err := Compute("a,b\n1,2\n4,5\n", "a\n4\n", opts)
	require.NoError(t, err)

	assert.True(t, result.HasDifferences)
	assert.Contains(t, result.Unified, "--- in.csv")
	assert.Contains(t, result.Unified, "+++ processed")
	assert.Contains(t, result.Unified, "-a,b")
	assert.Contains(t, result.Unified, "+a")
}

func TestCompute_EmptyDocuments(t *testing.T) {
	result, err := Compute("", "", DefaultOptions())
	require.NoError(t, err)
	assert.False(t, result.HasDifferences)
}

// ---------------------------------------------------------------------------
// Write
// ---------------------------------------------------------------------------

func TestWrite_NoDifferences(t *testing.T) {
	buf := new(bytes.Buffer)
	Write(buf, &Result{HasDifferences: false}, false)

	assert.Equal(t, "No differences found.\n", buf.String())
}

func TestWrite_PlainOutput(t *testing.T) {
	result, err := Compute("a\n1\n", "a\n2\n", DefaultOptions())
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	Write(buf, result, false)

	assert.Contains(t, buf.String(), "-1")
	assert.Contains(t, buf.String(), "+2")
	assert.NotContains(t, buf.String(), "\033[")
}

func TestWrite_ColorOutput(t *testing.T) {
	result, err := Compute("a\n1\n", "a\n2\n", DefaultOptions())
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	Write(buf, result, true)

	assert.Contains(t, buf.String(), "\033[31m")
	assert.Contains(t, buf.String(), "\033[32m")
}

// ---------------------------------------------------------------------------
// splitLines
// ---------------------------------------------------------------------------

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{""}, splitLines(""))

	lines := splitLines("a\nb\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "a\n", lines[0])
	assert.Equal(t, "b\n", lines[1])
	assert.Equal(t, "", lines[2])

	assert.True(t, strings.HasSuffix(splitLines("x\ny")[1], "y"))
}
