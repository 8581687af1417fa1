package overlap

import (
	"unicode"
	"unicode/utf8"
)

// DetectQuotes marks every sample token that lies inside a balanced pair of
// double-quote characters. text must be the normalized sample text (the
// concatenation of the tokens' Display fields).
//
// An odd number of quote characters makes quoting ambiguous; the detector
// degrades to an all-false mask rather than guessing. With an even count,
// quote characters pair strictly left to right (1st with 2nd, 3rd with
// 4th, ...). Each paired span extends left and right through adjacent
// non-whitespace, so a token attached to either mark counts as quoted.
func DetectQuotes(text string, tokens []Token) []bool {
	mask := make([]bool, len(tokens))

	var marks []int
	for i := 0; i < len(text); i++ {
		if text[i] == '"' {
			marks = append(marks, i)
		}
	}
	if len(marks) == 0 || len(marks)%2 != 0 {
		return mask
	}

	// Token byte spans, derived from the displays reconstructing text.
	starts := make([]int, len(tokens))
	off := 0
	for i, tok := range tokens {
		starts[i] = off
		off += len(tok.Display)
	}

	for p := 0; p < len(marks); p += 2 {
		lo := extendLeft(text, marks[p])
		hi := extendRight(text, marks[p+1])
		for i := range tokens {
			end := starts[i] + len(tokens[i].Display)
			if starts[i] <= hi && end > lo {
				mask[i] = true
			}
		}
	}
	return mask
}

// extendLeft walks backwards from the opening quote through adjacent
// non-whitespace and returns the span's first byte offset.
func extendLeft(text string, pos int) int {
	for pos > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:pos])
		if unicode.IsSpace(r) {
			break
		}
		pos -= size
	}
	return pos
}

// extendRight walks forwards from the closing quote through adjacent
// non-whitespace and returns the span's last byte offset.
func extendRight(text string, pos int) int {
	for pos+1 < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos+1:])
		if unicode.IsSpace(r) {
			break
		}
		pos += size
	}
	return pos
}
