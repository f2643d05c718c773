// Package observability renders interaction states for the terminal.
package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-tailor/internal/tailor"
	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// innerWidth is the usable text width inside a box
	innerWidth = boxWidth - 4
)

// MissingKeywordsNote accompanies the missing keyword list.
const MissingKeywordsNote = "Only add a keyword where it is accurate: the tailored resume never invents content."

// Printer handles formatted output of interaction states
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Long lines are
// wrapped at word boundaries.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", innerWidth, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, wrapped := range wrap(line, innerWidth) {
			fmt.Fprintf(p.out, "│ %-*s │\n", innerWidth, wrapped)
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintState renders st. Idle prints nothing.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintState(st tailor.State) {
	switch s := st.(type) {
	case tailor.Loading:
		fmt.Fprintln(p.out, "Tailoring…")
	case tailor.Failed:
		p.printBox("ERROR", s.Message)
	case tailor.Success:
		p.PrintResult(s.Result)
	}
}

// PrintResult outputs the tailored resume followed by the keyword panels and
// ATS tips. Missing fields render as empty panels.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintResult(result *types.TailorResult) {
	if result == nil {
		result = &types.TailorResult{}
	}

	// The resume itself is printed unboxed so it can be copied as-is.
	border := strings.Repeat("═", boxWidth)
	fmt.Fprintln(p.out, border)
	fmt.Fprintln(p.out, "TAILORED RESUME (ATS-friendly)")
	fmt.Fprintln(p.out, border)
	fmt.Fprintln(p.out, strings.TrimRight(result.TailoredResume, "\n"))
	fmt.Fprintln(p.out, border)

	p.printBox("MATCHED KEYWORDS",
		"Appearing in your resume and the job description\n\n"+keywordList(result.MatchedKeywords))
	p.printBox("MISSING KEYWORDS",
		"In the job description but not detected in your resume\n\n"+
			keywordList(result.MissingButReferencedKeywords)+"\n\n"+MissingKeywordsNote)

	var sb strings.Builder
	if len(result.ATSTips) == 0 {
		sb.WriteString("(none)")
	}
	for i, tip := range result.ATSTips {
		sb.WriteString(fmt.Sprintf("• %s", tip))
		if i < len(result.ATSTips)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("ATS TIPS", sb.String())
}

// PrintJSON writes the JSON view of st.
func (p *Printer) PrintJSON(st tailor.State) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(tailor.ViewOf(st))
}

func keywordList(keywords []string) string {
	if len(keywords) == 0 {
		return "(none)"
	}
	return strings.Join(keywords, " · ")
}

// wrap splits line into chunks of at most width runes, breaking at spaces
// where possible.
func wrap(line string, width int) []string {
	if utf8.RuneCountInString(line) <= width {
		return []string{line}
	}

	var lines []string
	var current []rune
	for _, word := range strings.Fields(line) {
		w := []rune(word)
		for len(w) > width {
			if len(current) > 0 {
				lines = append(lines, string(current))
				current = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(current) == 0:
			current = w
		case len(current)+1+len(w) <= width:
			current = append(append(current, ' '), w...)
		default:
			lines = append(lines, string(current))
			current = w
		}
	}
	if len(current) > 0 {
		lines = append(lines, string(current))
	}
	return lines
}
