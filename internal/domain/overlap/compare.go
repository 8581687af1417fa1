// Package overlap detects verbatim overlap between a reference text and a
// sample text and annotates both so copied runs are visible, with quoted
// (attributed) runs in the sample shown separately from unquoted copying.
//
// Everything in this package is a pure, deterministic function over its
// inputs: no shared state, no I/O, nothing retained between calls.
// Comparisons of independent document pairs may run concurrently.
package overlap

import (
	"fmt"
	"strings"
)

// DefaultFrameSize is the minimum matching run length when the caller
// does not specify one.
const DefaultFrameSize = 11

// excludedID replaces the id of a token dropped by an ExcludeFunc.
// Negative, so the matcher can never include it in a window match.
const excludedID = -2

// ExcludeFunc lets the caller blank out tokens before matching (stock
// phrases that must not count as copying). Returned slices must have the
// same lengths as the inputs; true entries are removed from consideration.
type ExcludeFunc func(ref, sample []Token) (refDrop, sampleDrop []bool)

// Options configures a single comparison.
type Options struct {
	// FrameSize is the minimum run of consecutive matching tokens.
	// Must be >= 1; Compare rejects anything smaller.
	FrameSize int

	// DetectQuotes enables splitting sample matches into quoted and
	// unquoted spans.
	DetectQuotes bool

	// Marker pairs for the three highlighted categories.
	ReferenceMark Markup
	SampleMark    Markup
	QuoteMark     Markup

	// Exclude optionally drops tokens from matching. Nil means none.
	Exclude ExcludeFunc
}

// Result is one comparison outcome: both texts annotated, plus the word
// counts the summary line reports.
type Result struct {
	Reference string
	Sample    string

	ReferenceWords int
	SampleWords    int
	MatchedWords   int
	QuotedWords    int
}

// Ratio returns the sample word count as a percentage of the reference
// word count. Zero when the reference is empty.
func (r *Result) Ratio() float64 {
	if r.ReferenceWords == 0 {
		return 0
	}
	return float64(r.SampleWords) / float64(r.ReferenceWords) * 100
}

// Compare runs the full pipeline: normalize, tokenize, intern, match,
// detect quotes, layer masks, highlight.
//
// Returns nil, nil when no run of at least opts.FrameSize matching tokens
// exists anywhere — absence of a result, not an error; callers fall back
// to displaying the untouched originals. A FrameSize below 1 is a
// configuration error.
func Compare(reference, sample string, opts Options) (*Result, error) {
	if opts.FrameSize < 1 {
		return nil, fmt.Errorf("frame size must be >= 1, got %d", opts.FrameSize)
	}

	refText, samText := Normalize(reference), Normalize(sample)
	refToks, samToks := Tokenize(refText), Tokenize(samText)

	vocab := BuildVocab(refToks)
	refIDs := vocab.Encode(refToks)
	samIDs := vocab.Encode(samToks)

	if opts.Exclude != nil {
		refDrop, samDrop := opts.Exclude(refToks, samToks)
		applyDrops(refIDs, refDrop)
		applyDrops(samIDs, samDrop)
	}

	refMask, samMask := Match(refIDs, samIDs, opts.FrameSize)
	if !anyTrue(refMask) || !anyTrue(samMask) {
		return nil, nil
	}

	quoteMask := make([]bool, len(samToks))
	if opts.DetectQuotes {
		quoteMask = DetectQuotes(samText, samToks)
	}
	unquoted, quoted := Layer(samMask, quoteMask)

	refOut := Highlight(Displays(refToks), refMask, opts.ReferenceMark)
	samOut := Highlight(Displays(samToks), unquoted, opts.SampleMark)
	samOut = Highlight(samOut, quoted, opts.QuoteMark)

	return &Result{
		Reference:      strings.Join(refOut, ""),
		Sample:         strings.Join(samOut, ""),
		ReferenceWords: len(strings.Fields(reference)),
		SampleWords:    len(strings.Fields(sample)),
		MatchedWords:   countTrue(samMask),
		QuotedWords:    countTrue(quoted),
	}, nil
}

// applyDrops overwrites dropped positions with the reserved excluded id.
func applyDrops(ids []int, drop []bool) {
	if drop == nil {
		return
	}
	if len(drop) != len(ids) {
		panic(fmt.Sprintf("overlap: exclude mask length mismatch: ids=%d drop=%d",
			len(ids), len(drop)))
	}
	for i, d := range drop {
		if d {
			ids[i] = excludedID
		}
	}
}

func countTrue(mask []bool) int {
	n := 0
	for _, b := range mask {
		if b {
			n++
		}
	}
	return n
}
