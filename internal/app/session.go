// Package app orchestrates comparisons: it binds configuration, the
// ignore-phrase scanner, and marker pairs into calls on the overlap core.
// A Session is an explicit, call-scoped value built by the CLI for each
// invocation; nothing is retained between invocations.
package app

import (
	"fmt"
	"strings"

	"github.com/emilminas/copycheck/internal/config"
	"github.com/emilminas/copycheck/internal/domain/overlap"
	"github.com/emilminas/copycheck/internal/ports"
)

// Marks bundles the marker pairs for the three highlighted categories.
type Marks struct {
	Reference overlap.Markup
	Sample    overlap.Markup
	Quote     overlap.Markup
}

// Session holds everything one comparison needs.
type Session struct {
	Reference string
	Sample    string
	Config    *config.Config
	Scanner   ports.PhraseScanner // nil when no ignore phrases are configured
	Marks     Marks
}

// Run validates the configuration against the inputs and executes the
// comparison. Returns nil, nil when no qualifying overlap exists.
func (s *Session) Run() (*overlap.Result, error) {
	words := len(strings.Fields(s.Sample))
	if s.Config.FrameSize > words {
		return nil, fmt.Errorf(
			"frame size %d exceeds the sample word count of %d",
			s.Config.FrameSize, words)
	}

	opts := overlap.Options{
		FrameSize:     s.Config.FrameSize,
		DetectQuotes:  s.Config.DetectQuotes,
		ReferenceMark: s.Marks.Reference,
		SampleMark:    s.Marks.Sample,
		QuoteMark:     s.Marks.Quote,
		Exclude:       s.excludeFunc(),
	}
	return overlap.Compare(s.Reference, s.Sample, opts)
}

// excludeFunc adapts the phrase scanner into the core's exclusion hook.
// Tokens whose byte span intersects a phrase occurrence are dropped from
// matching on both sides.
func (s *Session) excludeFunc() overlap.ExcludeFunc {
	if s.Scanner == nil {
		return nil
	}
	return func(ref, sample []overlap.Token) ([]bool, []bool) {
		return s.drops(ref), s.drops(sample)
	}
}

func (s *Session) drops(tokens []overlap.Token) []bool {
	drop := make([]bool, len(tokens))
	text := strings.Join(overlap.Displays(tokens), "")
	spans := s.Scanner.Scan(text)
	if len(spans) == 0 {
		return drop
	}

	off := 0
	for i, tok := range tokens {
		end := off + len(tok.Display)
		for _, sp := range spans {
			if off < sp.End && end > sp.Start {
				drop[i] = true
				break
			}
		}
		off = end
	}
	return drop
}
