// Package ahocorasick implements the ports.PhraseScanner interface using
// an Aho-Corasick automaton. All configured ignore phrases are located in
// a single pass over the text, case-insensitively.
package ahocorasick

import (
	"strings"

	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/emilminas/copycheck/internal/ports"
)

// Scanner locates configured boilerplate phrases in a text.
type Scanner struct {
	automaton aho.AhoCorasick
	empty     bool
}

// NewScanner builds a scanner from the given phrases. Phrases are matched
// case-insensitively; blank entries are dropped.
func NewScanner(phrases []string) *Scanner {
	var patterns []string
	for _, p := range phrases {
		p = strings.TrimSpace(p)
		if p != "" {
			patterns = append(patterns, strings.ToLower(p))
		}
	}
	if len(patterns) == 0 {
		return &Scanner{empty: true}
	}

	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	return &Scanner{automaton: builder.Build(patterns)}
}

// Scan returns every phrase occurrence in text as byte spans, in position
// order. Lowercasing preserves byte offsets for ASCII text; phrase lists
// are expected to be ASCII.
func (s *Scanner) Scan(text string) []ports.PhraseSpan {
	if s.empty || text == "" {
		return nil
	}

	matches := s.automaton.FindAll(strings.ToLower(text))
	if len(matches) == 0 {
		return nil
	}

	spans := make([]ports.PhraseSpan, 0, len(matches))
	for i := range matches {
		spans = append(spans, ports.PhraseSpan{
			Start: matches[i].Start(),
			End:   matches[i].End(),
		})
	}
	return spans
}
