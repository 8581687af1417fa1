package overlap

import (
	"strings"
	"unicode"
)

// Token is one fragment of a tokenized text. Display carries the original
// characters (word plus any trailing whitespace/dash run) so that joining
// all Displays reproduces the input exactly. Key is the normalized word
// form used for matching; two tokens with the same Key are the same type.
type Token struct {
	Display string
	Key     string
}

// quoteNormalizer maps curly quotation marks and apostrophes to their
// straight ASCII equivalents. Reference and sample must be normalized
// identically so keys line up across texts that differ only in glyph style.
var quoteNormalizer = strings.NewReplacer(
	"“", `"`, // “
	"”", `"`, // ”
	"‘", "'", // ‘
	"’", "'", // ’
)

// Normalize replaces curly double quotes and apostrophes with straight ones.
func Normalize(text string) string {
	return quoteNormalizer.Replace(text)
}

// isSeparator reports whether r splits words: any whitespace or a
// hyphen/en-dash/em-dash.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '-' || r == '–' || r == '—'
}

// Tokenize splits text into tokens, pairing each word fragment with the
// separator run that follows it. A separator run before the first word is
// prefixed to it; a trailing separator run with no following word is
// absorbed into the last token. Empty input yields no tokens.
//
//	"\tHello Earth-world\n\n!" -> ["\tHello ", "Earth-", "world\n\n", "!"]
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}

	// Split into alternating fragments, keeping separator runs.
	var frags []string
	start := 0
	var inSep bool
	for i, r := range text {
		sep := isSeparator(r)
		if i == 0 {
			inSep = sep
			continue
		}
		if sep != inSep {
			frags = append(frags, text[start:i])
			start = i
			inSep = sep
		}
	}
	frags = append(frags, text[start:])

	// Pair word fragments with their trailing separator runs.
	var tokens []Token
	for i := 0; i < len(frags); {
		frag := frags[i]
		if isSeparator(firstRune(frag)) {
			if len(tokens) == 0 {
				// Leading separator run: prefix it to the first word.
				if i+1 < len(frags) {
					frag += frags[i+1]
					i += 2
				} else {
					// Separator-only input stays a single token.
					i++
				}
				tokens = append(tokens, newToken(frag))
				continue
			}
			// Trailing separator run with no following word.
			tokens[len(tokens)-1].Display += frag
			i++
			continue
		}
		if i+1 < len(frags) {
			frag += frags[i+1]
			i += 2
		} else {
			i++
		}
		tokens = append(tokens, newToken(frag))
	}
	return tokens
}

func newToken(display string) Token {
	return Token{Display: display, Key: normalizeKey(display)}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// normalizeKey lowercases the fragment and strips every rune that is not a
// letter, digit, underscore, or apostrophe.
func normalizeKey(display string) string {
	var b strings.Builder
	b.Grow(len(display))
	for _, r := range strings.ToLower(display) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\'' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Displays extracts the display fragments of a token sequence.
func Displays(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Display
	}
	return out
}
