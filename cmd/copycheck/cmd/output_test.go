package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilminas/copycheck/internal/domain/overlap"
)

func TestResolveScheme(t *testing.T) {
	cmyk := resolveScheme("cmyk")
	assert.Equal(t, colorYellow, cmyk.reference)
	assert.Equal(t, colorMagenta, cmyk.sample)
	assert.Equal(t, colorCyan, cmyk.quote)

	rbg := resolveScheme("rbg")
	assert.Equal(t, colorGreen, rbg.reference)
	assert.Equal(t, colorRed, rbg.sample)
	assert.Equal(t, colorBlue, rbg.quote)
}

func TestResolveScheme_UnknownFallsBackToCmyk(t *testing.T) {
	assert.Equal(t, resolveScheme("cmyk"), resolveScheme("whatever"))
}

func TestColorMarkup(t *testing.T) {
	m := colorRed.markup()
	assert.Equal(t, "\033[41;1m", m.Start)
	assert.Equal(t, "\033[0m", m.Stop)
}

func TestColorNames(t *testing.T) {
	assert.Equal(t, "yellow", colorYellow.String())
	assert.Equal(t, "cyan", colorCyan.String())
}

func TestFormatComparison(t *testing.T) {
	res := &overlap.Result{
		Reference:      "REF",
		Sample:         "SAM",
		ReferenceWords: 10,
		SampleWords:    5,
	}

	out := formatComparison(res, resolveScheme("cmyk"), true)
	assert.Contains(t, out, "highlighted yellow")
	assert.Contains(t, out, "highlighted magenta")
	assert.Contains(t, out, "highlighted cyan")
	assert.Contains(t, out, "REF")
	assert.Contains(t, out, "SAM")
	assert.Contains(t, out, "5 words")
	assert.Contains(t, out, "50.00%")
}

func TestFormatComparison_QuotesOffDropsLegendLine(t *testing.T) {
	res := &overlap.Result{Reference: "R", Sample: "S", ReferenceWords: 1, SampleWords: 1}
	out := formatComparison(res, resolveScheme("cmyk"), false)
	assert.NotContains(t, out, "Quoted sequences")
}

func TestFormatNoMatch(t *testing.T) {
	out := formatNoMatch("original ref", "original sample")
	require.True(t, strings.Contains(out, "original ref"))
	require.True(t, strings.Contains(out, "original sample"))
	assert.Contains(t, out, "No matching sequences")
}
