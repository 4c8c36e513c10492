package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jsonata-tools/jsonata-lint/pkg/console"
	"github.com/jsonata-tools/jsonata-lint/pkg/jsonata"
	"github.com/jsonata-tools/jsonata-lint/pkg/validator"
)

// EvalOptions carries the eval command's flags.
type EvalOptions struct {
	Compact bool
	Verbose bool
}

// EvalFile compiles the expression in exprPath and evaluates it against the
// JSON data in dataPath, printing the result or the categorized diagnostics.
func EvalFile(exprPath, dataPath string, opts EvalOptions) error {
	expression, err := os.ReadFile(exprPath)
	if err != nil {
		return fmt.Errorf("failed to read expression file: %w", err)
	}
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file: %w", err)
	}

	res := validator.Evaluate(exprPath, string(expression), string(data), jsonata.New(), validator.Options{})
	if len(res.Diagnostics) > 0 {
		for _, d := range res.Diagnostics {
			source := string(expression)
			if d.Code == validator.CodeInvalidInput {
				source = "" // the defect is in the data file, not the expression
			}
			fmt.Print(console.FormatDiagnostic(d, source))
		}
		return fmt.Errorf("evaluation failed with %d problems", len(res.Diagnostics))
	}

	return printResult(res.Result, opts.Compact)
}

func printResult(result any, compact bool) error {
	var (
		out []byte
		err error
	)
	if compact {
		out, err = json.Marshal(result)
	} else {
		out, err = json.MarshalIndent(result, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
