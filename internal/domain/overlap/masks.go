package overlap

import "fmt"

// Layer splits a match mask into its unquoted and quoted parts:
// quoted = match AND quote, unquoted = match AND NOT quote. The two
// outputs partition the match mask — they never overlap, and their union
// equals the input.
//
// Both masks index the same sample token sequence; a length mismatch is a
// caller bug and panics rather than truncating or padding silently.
func Layer(matchMask, quoteMask []bool) (unquoted, quoted []bool) {
	if len(matchMask) != len(quoteMask) {
		panic(fmt.Sprintf("overlap: mask length mismatch: match=%d quote=%d",
			len(matchMask), len(quoteMask)))
	}
	unquoted = make([]bool, len(matchMask))
	quoted = make([]bool, len(matchMask))
	for i, m := range matchMask {
		quoted[i] = m && quoteMask[i]
		unquoted[i] = m && !quoteMask[i]
	}
	return unquoted, quoted
}
