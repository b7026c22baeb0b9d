// Package diagnostic produces the placeholder diagnostics published for every
// open document: each word written entirely in upper case is flagged.
package diagnostic

import (
	"fmt"
	"regexp"

	"github.com/oloveluck/snake-lsp/pkg/position"
)

// Source is reported as the origin of every diagnostic.
const Source = "ex"

var upperCaseWord = regexp.MustCompile(`\b[A-Z]{2,}\b`)

// DiagnosticSeverity represents the severity level of a diagnostic
type DiagnosticSeverity string

const (
	Error   DiagnosticSeverity = "error"
	Warning DiagnosticSeverity = "warning"
	Info    DiagnosticSeverity = "info"
	Hint    DiagnosticSeverity = "hint"
)

// Diagnostic represents a single diagnostic message
type Diagnostic struct {
	Message  string              `json:"message"`
	Location position.RawPosition `json:"-"`
	Range    position.Range      `json:"range"`
	Severity DiagnosticSeverity  `json:"severity"`
	Source   string              `json:"source"`
	Related  []Related           `json:"related,omitempty"`
}

// Related points at another place that explains a diagnostic.
type Related struct {
	URI     string         `json:"uri"`
	Range   position.Range `json:"range"`
	Message string         `json:"message"`
}

type Options struct {
	// MaxProblems caps the number of diagnostics. Zero or less means none.
	MaxProblems int
	// RelatedInformation adds related entries when the client can show them.
	RelatedInformation bool
	// URI is the document the related entries point into.
	URI string
}

// Generate scans text and returns at most opts.MaxProblems diagnostics.
func Generate(text string, opts Options) []Diagnostic {
	diags := make([]Diagnostic, 0)
	if opts.MaxProblems <= 0 {
		return diags
	}

	for _, m := range upperCaseWord.FindAllStringIndex(text, opts.MaxProblems) {
		loc := position.NewRawPosition(text[m[0]:m[1]], m[0])
		rng := loc.GetRange(text)

		d := Diagnostic{
			Message:  fmt.Sprintf("%s is all uppercase.", loc.Text),
			Location: loc,
			Range:    rng,
			Severity: Warning,
			Source:   Source,
		}
		if opts.RelatedInformation {
			d.Related = []Related{
				{URI: opts.URI, Range: rng, Message: "Spelling matters"},
				{URI: opts.URI, Range: rng, Message: "Particularly for names"},
			}
		}
		diags = append(diags, d)
	}
	return diags
}
