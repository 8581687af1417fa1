package overlap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_PairsWordsWithFormatting(t *testing.T) {
	toks := Tokenize("\tHello Earth-world\n\n!")
	assert.Equal(t, []string{"\tHello ", "Earth-", "world\n\n", "!"}, Displays(toks))
}

func TestTokenize_Keys(t *testing.T) {
	toks := Tokenize("Hello, Earth-world!")
	require.Len(t, toks, 3)
	assert.Equal(t, "hello", toks[0].Key)
	assert.Equal(t, "earth", toks[1].Key)
	assert.Equal(t, "world", toks[2].Key)
}

func TestTokenize_KeepsApostrophes(t *testing.T) {
	toks := Tokenize("don't stop")
	require.Len(t, toks, 2)
	assert.Equal(t, "don't", toks[0].Key)
}

func TestTokenize_Empty(t *testing.T) {
	assert.Nil(t, Tokenize(""))
}

func TestTokenize_SeparatorOnly(t *testing.T) {
	toks := Tokenize("  \n ")
	require.Len(t, toks, 1)
	assert.Equal(t, "  \n ", toks[0].Display)
	assert.Equal(t, "", toks[0].Key)
}

func TestTokenize_SplitsOnDashes(t *testing.T) {
	// Hyphen, en-dash, em-dash all split.
	toks := Tokenize("state-of–the—art")
	assert.Len(t, toks, 4)
}

func TestTokenize_Reconstruction(t *testing.T) {
	inputs := []string{
		"the quick brown fox",
		"\t odd   spacing\n\nand-hyphens--kept\n",
		"trailing formatting stays...\n\n",
		"one",
		"— leading dash",
	}
	for _, in := range inputs {
		norm := Normalize(in)
		got := strings.Join(Displays(Tokenize(norm)), "")
		assert.Equal(t, norm, got, "input %q must reconstruct", in)
	}
}

func TestTokenize_Idempotent(t *testing.T) {
	in := Normalize("He said “hello” to the ’world’ twice")
	first := Tokenize(in)
	second := Tokenize(strings.Join(Displays(first), ""))
	assert.Equal(t, first, second)
}

func TestNormalize_CurlyQuotes(t *testing.T) {
	assert.Equal(t, `he said "hi"`, Normalize("he said “hi”"))
	assert.Equal(t, "it's 'fine'", Normalize("it’s ‘fine’"))
}

func TestNormalize_MakesKeysAgreeAcrossGlyphStyles(t *testing.T) {
	// A reference with straight apostrophes and a sample with curly ones
	// must produce identical keys.
	ref := Tokenize(Normalize("it's done"))
	sam := Tokenize(Normalize("it’s done"))
	require.Len(t, sam, len(ref))
	for i := range ref {
		assert.Equal(t, ref[i].Key, sam[i].Key)
	}
}
