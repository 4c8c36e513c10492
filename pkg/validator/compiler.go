package validator

// Compiler is the expression compiler/evaluator capability. Any conforming
// JSONata implementation can sit behind it; the validator depends only on
// this shape and on the error types below.
type Compiler interface {
	Compile(text string) (Compiled, error)
}

// Compiled is a compiled expression ready for evaluation against input data.
type Compiled interface {
	Evaluate(data any) (any, error)
}

// CompilerError is the structured form of a compile failure. Position is a
// flat character offset into the expression text, parser.NoPosition when the
// backend could not localize the defect. Token holds the offending token text
// or the end-of-input sentinel; Expected holds the token the compiler wanted
// instead, when applicable. Code is a stable machine-readable classification.
type CompilerError struct {
	Message  string
	Position int
	Token    string
	Expected string
	Code     string
}

func (e *CompilerError) Error() string {
	return e.Message
}

// RuntimeError is the structured form of an evaluation failure. The position
// and token fields follow the same conventions as CompilerError; backends
// that cannot localize runtime failures leave Position at parser.NoPosition.
type RuntimeError struct {
	Message  string
	Position int
	Token    string
	Code     string
}

func (e *RuntimeError) Error() string {
	return e.Message
}
