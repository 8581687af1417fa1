package cmd

import (
	"fmt"
	"strings"

	"github.com/emilminas/copycheck/internal/app"
	"github.com/emilminas/copycheck/internal/domain/overlap"
)

const ansiReset = "\033[0m"

// highlightColor is the closed set of supported highlight colors. Each
// resolves to an emboldened ANSI background start sequence plus the
// shared reset. The core only ever sees the resulting marker pairs.
type highlightColor int

const (
	colorRed highlightColor = iota
	colorGreen
	colorYellow
	colorBlue
	colorMagenta
	colorCyan
)

// ansiStart returns the emboldened background color start sequence.
func (c highlightColor) ansiStart() string {
	switch c {
	case colorRed:
		return "\033[41;1m"
	case colorGreen:
		return "\033[42;1m"
	case colorYellow:
		return "\033[43;1m"
	case colorBlue:
		return "\033[44;1m"
	case colorMagenta:
		return "\033[45;1m"
	case colorCyan:
		return "\033[46;1m"
	default:
		return "\033[47;1m" // white
	}
}

func (c highlightColor) String() string {
	switch c {
	case colorRed:
		return "red"
	case colorGreen:
		return "green"
	case colorYellow:
		return "yellow"
	case colorBlue:
		return "blue"
	case colorMagenta:
		return "magenta"
	case colorCyan:
		return "cyan"
	default:
		return "white"
	}
}

func (c highlightColor) markup() overlap.Markup {
	return overlap.Markup{Start: c.ansiStart(), Stop: ansiReset}
}

// scheme bundles the three highlight colors for one comparison.
type scheme struct {
	reference highlightColor
	sample    highlightColor
	quote     highlightColor
}

// resolveScheme maps a scheme name to its colors: "cmyk" (default) or
// "rbg". Validated by config, so unknown names fall back to cmyk.
func resolveScheme(name string) scheme {
	if name == "rbg" {
		return scheme{reference: colorGreen, sample: colorRed, quote: colorBlue}
	}
	return scheme{reference: colorYellow, sample: colorMagenta, quote: colorCyan}
}

func (sc scheme) marks() app.Marks {
	return app.Marks{
		Reference: sc.reference.markup(),
		Sample:    sc.sample.markup(),
		Quote:     sc.quote.markup(),
	}
}

// formatComparison renders one comparison outcome: legend lines, both
// annotated texts, then the word count summary with the sample/reference
// ratio.
func formatComparison(res *overlap.Result, sc scheme, detectQuotes bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("*** Matching sequences in the reference text are highlighted %s.\n\n", sc.reference))
	sb.WriteString(res.Reference)
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("*** Matching sequences in the sample text are highlighted %s.\n", sc.sample))
	if detectQuotes {
		sb.WriteString(fmt.Sprintf("Quoted sequences are highlighted %s.\n", sc.quote))
	}
	sb.WriteString("\n")
	sb.WriteString(res.Sample)
	sb.WriteString("\n\n")

	sb.WriteString(formatSummary(res))
	return sb.String()
}

// formatSummary is the closing word-count line.
func formatSummary(res *overlap.Result) string {
	return fmt.Sprintf("*** The sample document contains %d words, which is %.2f%% of the reference.\n",
		res.SampleWords, res.Ratio())
}

// formatNoMatch prints the untouched originals when nothing qualifies.
func formatNoMatch(reference, sample string) string {
	var sb strings.Builder
	sb.WriteString("*** No matching sequences found.\n\n")
	sb.WriteString(reference)
	sb.WriteString("\n\n")
	sb.WriteString(sample)
	sb.WriteString("\n")
	return sb.String()
}
