// Package jsonata adapts github.com/blues/jsonata-go to the
// validator.Compiler capability. The validator core never imports this
// package; hosts that want a different JSONata implementation substitute
// their own adapter.
package jsonata

import (
	"errors"

	jsonatago "github.com/blues/jsonata-go"
	"github.com/blues/jsonata-go/jparse"

	"github.com/jsonata-tools/jsonata-lint/pkg/parser"
	"github.com/jsonata-tools/jsonata-lint/pkg/validator"
)

// Compiler is the default validator.Compiler backed by blues/jsonata-go.
type Compiler struct{}

// New returns the default JSONata compiler.
func New() *Compiler {
	return &Compiler{}
}

// Compile parses text, translating parse failures into the structured
// *validator.CompilerError shape the resolver consumes.
func (Compiler) Compile(text string) (validator.Compiled, error) {
	expr, err := jsonatago.Compile(text)
	if err != nil {
		return nil, toCompilerError(err)
	}
	return compiled{expr: expr}, nil
}

type compiled struct {
	expr *jsonatago.Expr
}

// Evaluate runs the compiled expression against data. blues/jsonata-go does
// not localize evaluation failures, so runtime errors carry no position and
// the resolver falls back to a whole-first-line highlight.
func (c compiled) Evaluate(data any) (any, error) {
	result, err := c.expr.Eval(data)
	if err != nil {
		return nil, &validator.RuntimeError{
			Message:  err.Error(),
			Position: parser.NoPosition,
		}
	}
	return result, nil
}

func toCompilerError(err error) *validator.CompilerError {
	var perr *jparse.Error
	if errors.As(err, &perr) {
		return &validator.CompilerError{
			Message:  perr.Error(),
			Position: perr.Position,
			Token:    perr.Token,
			Expected: perr.Hint,
		}
	}
	return &validator.CompilerError{
		Message:  err.Error(),
		Position: parser.NoPosition,
	}
}
