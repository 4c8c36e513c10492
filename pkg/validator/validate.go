package validator

import (
	"errors"

	"github.com/jsonata-tools/jsonata-lint/pkg/constants"
	"github.com/jsonata-tools/jsonata-lint/pkg/parser"
)

// DocumentKind selects the extraction mode for a document.
type DocumentKind int

const (
	// KindJSONata treats the document as one or more top-level expressions.
	KindJSONata DocumentKind = iota
	// KindJSON scans JSON string values for embedded expressions.
	KindJSON
)

// Options tunes a validation pass.
type Options struct {
	// MaxProblems caps the diagnostics collected per pass; 0 means
	// constants.DefaultMaxProblems.
	MaxProblems int
	// Selection, when non-nil, is the document position where the validated
	// text begins (selection-validation mode).
	Selection *parser.Position
	// DisableSuggestions skips the suggestion lookup table.
	DisableSuggestions bool
}

func (o Options) maxProblems() int {
	if o.MaxProblems > 0 {
		return o.MaxProblems
	}
	return constants.DefaultMaxProblems
}

// Validate extracts every candidate expression from documentText, attempts to
// compile each with c, and returns the clamped diagnostics for the failures.
// One expression's failure never aborts processing of the remaining
// expressions. Each validation pass is stateless given its inputs.
func Validate(path, documentText string, kind DocumentKind, c Compiler, opts Options) []Diagnostic {
	doc := parser.NewTextDocument(documentText)
	spans := extract(documentText, kind)

	var diags []Diagnostic
	for _, span := range spans {
		if len(diags) >= opts.maxProblems() {
			break
		}
		if _, err := c.Compile(span.Text); err != nil {
			diags = append(diags, diagnosticFor(path, doc, span, err, opts))
		}
	}
	return diags
}

// ValidateToSink runs Validate and replaces the diagnostics recorded for path
// in sink, including clearing to an empty set when the document is clean.
func ValidateToSink(path, documentText string, kind DocumentKind, c Compiler, sink Sink, opts Options) []Diagnostic {
	diags := Validate(path, documentText, kind, c, opts)
	sink.Set(path, diags)
	return diags
}

func extract(documentText string, kind DocumentKind) []parser.ExpressionSpan {
	if kind == KindJSONata {
		return parser.ExtractTopLevel(documentText)
	}

	var spans []parser.ExpressionSpan
	for i, line := range parser.NewTextDocument(documentText).Lines() {
		spans = append(spans, parser.ExtractFromLine(line, i)...)
	}
	return spans
}

// diagnosticFor resolves a compile failure on span to a clamped document
// location and wraps it as a Diagnostic.
func diagnosticFor(path string, doc parser.Document, span parser.ExpressionSpan, err error, opts Options) Diagnostic {
	cerr := asCompilerError(err)

	loc := parser.ResolveLocation(span.Text, cerr.Position, cerr.Token, span.StartLine, span.StartColumn)
	line, start, end := parser.ToDisplaySpan(doc, loc.Line, loc.StartChar, loc.EndChar, opts.Selection)

	d := Diagnostic{
		Path:     path,
		Location: parser.ResolvedLocation{Line: line, StartChar: start, EndChar: end},
		Message:  cerr.Message,
		Severity: SeverityError,
		Code:     cerr.Code,
	}
	if !opts.DisableSuggestions {
		d.Suggestion = SuggestionFor(cerr.Code, cerr.Token, cerr.Message)
	}
	return d
}

// asCompilerError normalizes any compile failure into a CompilerError;
// backends that return plain errors yield an unlocalized one.
func asCompilerError(err error) *CompilerError {
	var cerr *CompilerError
	if errors.As(err, &cerr) {
		return cerr
	}
	return &CompilerError{Message: err.Error(), Position: parser.NoPosition}
}
