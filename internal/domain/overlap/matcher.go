package overlap

import "fmt"

// Match finds every position pair where a length-frameSize window of the
// reference equals a window of the sample elementwise, then expands the
// window hits into per-token masks. A token is true when it belongs to at
// least one qualifying run; overlapping runs merge with no gaps.
//
// Negative ids (OOV or excluded tokens) never equal anything, including
// other negative ids at the same relative position.
//
// The comparison is a dense pairwise scan over all window pairs with an
// early exit per pair. Cost is (R-k+1)*(S-k+1)*k in the worst case; this
// favors simplicity for single-document inputs over asymptotic optimality.
//
// frameSize < 1 is a programming error and panics. A frameSize exceeding
// either sequence leaves zero windows on that side: both masks come back
// all-false at the correct lengths.
func Match(refIDs, sampleIDs []int, frameSize int) (refMask, sampleMask []bool) {
	if frameSize < 1 {
		panic(fmt.Sprintf("overlap: frame size must be >= 1, got %d", frameSize))
	}

	refMask = make([]bool, len(refIDs))
	sampleMask = make([]bool, len(sampleIDs))

	refWins := len(refIDs) - frameSize + 1
	samWins := len(sampleIDs) - frameSize + 1
	if refWins <= 0 || samWins <= 0 {
		return refMask, sampleMask
	}

	refHit := make([]bool, refWins)
	samHit := make([]bool, samWins)

	for i := 0; i < samWins; i++ {
		for j := 0; j < refWins; j++ {
			if samHit[i] && refHit[j] {
				continue
			}
			if windowsEqual(refIDs[j:j+frameSize], sampleIDs[i:i+frameSize]) {
				refHit[j] = true
				samHit[i] = true
			}
		}
	}

	cover(refMask, refHit, frameSize)
	cover(sampleMask, samHit, frameSize)
	return refMask, sampleMask
}

// windowsEqual compares two equal-length windows elementwise, bailing out
// on the first mismatch. Negative ids are reserved and match nothing.
func windowsEqual(ref, sample []int) bool {
	for t := range ref {
		if ref[t] != sample[t] || ref[t] < 0 {
			return false
		}
	}
	return true
}

// cover expands window-level hits to token-level coverage: a hit at window
// j marks tokens j..j+frameSize-1. Union semantics, no double counting.
func cover(mask []bool, hits []bool, frameSize int) {
	for j, hit := range hits {
		if !hit {
			continue
		}
		for t := j; t < j+frameSize; t++ {
			mask[t] = true
		}
	}
}

// anyTrue reports whether the mask has at least one true entry.
func anyTrue(mask []bool) bool {
	for _, b := range mask {
		if b {
			return true
		}
	}
	return false
}
