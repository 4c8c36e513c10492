package validator

import (
	"encoding/json"
	"errors"

	"github.com/jsonata-tools/jsonata-lint/pkg/parser"
)

// Error codes attached to diagnostics produced by Evaluate for failures the
// backend does not classify itself.
const (
	CodeInvalidInput = "invalid-json-input"
	CodeRuntime      = "runtime-error"
)

// EvalResult is the outcome of evaluating one expression against JSON input.
// Result is only meaningful when Diagnostics is empty.
type EvalResult struct {
	Result      any
	Diagnostics []Diagnostic
}

// Evaluate compiles expressionText against c and evaluates it on jsonInput,
// distinguishing three failure categories: malformed input data (no location
// resolution applies), compile errors (resolved to a precise span), and
// runtime errors (resolved when the backend reports a position, whole first
// line otherwise). Suggestions are attached per the lookup table.
func Evaluate(path, expressionText, jsonInput string, c Compiler, opts Options) EvalResult {
	doc := parser.NewTextDocument(expressionText)
	span := parser.ExpressionSpan{Text: expressionText}

	var data any
	if err := json.Unmarshal([]byte(jsonInput), &data); err != nil {
		return EvalResult{Diagnostics: []Diagnostic{{
			Path:       path,
			Message:    "invalid JSON input: " + err.Error(),
			Severity:   SeverityError,
			Code:       CodeInvalidInput,
			Suggestion: "Fix the JSON input data before evaluating the expression.",
		}}}
	}

	compiled, err := c.Compile(expressionText)
	if err != nil {
		return EvalResult{Diagnostics: []Diagnostic{diagnosticFor(path, doc, span, err, opts)}}
	}

	result, err := compiled.Evaluate(data)
	if err != nil {
		return EvalResult{Diagnostics: []Diagnostic{runtimeDiagnostic(path, doc, expressionText, err, opts)}}
	}

	return EvalResult{Result: result}
}

func runtimeDiagnostic(path string, doc parser.Document, expressionText string, err error, opts Options) Diagnostic {
	rerr := asRuntimeError(err)

	loc := parser.ResolveLocation(expressionText, rerr.Position, rerr.Token, 0, 0)
	line, start, end := parser.ToDisplaySpan(doc, loc.Line, loc.StartChar, loc.EndChar, opts.Selection)

	code := rerr.Code
	if code == "" {
		code = CodeRuntime
	}

	d := Diagnostic{
		Path:     path,
		Location: parser.ResolvedLocation{Line: line, StartChar: start, EndChar: end},
		Message:  rerr.Message,
		Severity: SeverityError,
		Code:     code,
	}
	if !opts.DisableSuggestions {
		d.Suggestion = SuggestionFor(rerr.Code, rerr.Token, rerr.Message)
	}
	return d
}

func asRuntimeError(err error) *RuntimeError {
	var rerr *RuntimeError
	if errors.As(err, &rerr) {
		return rerr
	}
	return &RuntimeError{Message: err.Error(), Position: parser.NoPosition}
}
