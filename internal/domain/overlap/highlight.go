package overlap

// Markup is an opaque start/stop marker pair injected around highlighted
// runs. The core never assumes any particular encoding; the presentation
// layer resolves color names to ANSI sequences (or anything else).
type Markup struct {
	Start string
	Stop  string
}

// Highlight injects markers at the run boundaries of mask: the Start
// marker is prepended to each token where the mask flips false->true, and
// the Stop marker appended where it flips true->false (the mask is treated
// as padded with false on both ends). Interior run tokens are untouched,
// so a multi-token run renders as one continuous span.
//
// Applying Highlight twice with disjoint masks over the same sequence is
// safe: markers never collide on the same token.
func Highlight(display []string, mask []bool, m Markup) []string {
	out := make([]string, len(display))
	copy(out, display)
	for i, on := range mask {
		if !on {
			continue
		}
		if i == 0 || !mask[i-1] {
			out[i] = m.Start + out[i]
		}
		if i == len(mask)-1 || !mask[i+1] {
			out[i] = out[i] + m.Stop
		}
	}
	return out
}
