package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jsonata-tools/jsonata-lint/internal/mapper"
	"github.com/jsonata-tools/jsonata-lint/pkg/console"
	"github.com/jsonata-tools/jsonata-lint/pkg/jsonata"
	"github.com/jsonata-tools/jsonata-lint/pkg/parser"
	"github.com/jsonata-tools/jsonata-lint/pkg/session"
	"github.com/jsonata-tools/jsonata-lint/pkg/validator"
)

// ExportSession evaluates the expression against the data and writes a
// shareable session envelope capturing inputs, result and any failure.
func ExportSession(exprPath, dataPath, outPath string) error {
	expression, err := os.ReadFile(exprPath)
	if err != nil {
		return fmt.Errorf("failed to read expression file: %w", err)
	}
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file: %w", err)
	}

	res := validator.Evaluate(exprPath, string(expression), string(data), jsonata.New(), validator.Options{})

	var result, errorMessage string
	if len(res.Diagnostics) > 0 {
		messages := make([]string, len(res.Diagnostics))
		for i, d := range res.Diagnostics {
			messages[i] = d.Message
		}
		errorMessage = strings.Join(messages, "; ")
	} else {
		rendered, err := json.Marshal(res.Result)
		if err != nil {
			return fmt.Errorf("failed to render result: %w", err)
		}
		result = string(rendered)
	}

	env := session.New(string(data), string(expression), result, errorMessage)
	if err := env.Save(outPath); err != nil {
		return err
	}

	fmt.Println(console.FormatSuccessMessage(fmt.Sprintf("exported session to %s", outPath)))
	return nil
}

// ImportSession loads a session envelope and writes its expression and data
// back out as files next to outBase (outBase.jsonata and outBase.json).
func ImportSession(path, outBase string) error {
	env, err := session.Load(path)
	if err != nil {
		return err
	}

	exprPath := outBase + ".jsonata"
	dataPath := outBase + ".json"
	if err := os.WriteFile(exprPath, []byte(env.Data.JSONataExpression), 0644); err != nil {
		return fmt.Errorf("failed to write expression file: %w", err)
	}
	if err := os.WriteFile(dataPath, []byte(env.Data.JSONInput), 0644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}

	fmt.Println(console.FormatSuccessMessage(fmt.Sprintf("imported session into %s and %s", exprPath, dataPath)))
	if env.Data.HasError {
		fmt.Println(console.FormatWarningMessage("session was exported with an error: " + env.Data.ErrorMessage))
	}
	return nil
}

// CheckSession validates a session file against the envelope schema and
// prints each failure at its position in the file.
func CheckSession(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read session file: %w", err)
	}

	verr := session.ValidationError(data)
	if verr == nil {
		if err := session.Validate(data); err != nil {
			// Not schema-shaped at all (e.g. unparseable JSON).
			return err
		}
		fmt.Println(console.FormatSuccessMessage(fmt.Sprintf("%s is a valid session", path)))
		return nil
	}

	causes := verr.Causes
	if len(causes) == 0 {
		causes = append(causes, verr)
	}
	for _, cause := range causes {
		span := mapper.LocateInstance(data, cause.InstanceLocation)
		d := validator.Diagnostic{
			Path: path,
			Location: parser.ResolvedLocation{
				Line:      span.StartLine - 1,
				StartChar: span.StartCol - 1,
				EndChar:   span.EndCol - 1,
			},
			Message:  cause.Error(),
			Severity: validator.SeverityError,
		}
		fmt.Print(console.FormatDiagnostic(d, string(data)))
	}
	return fmt.Errorf("%s does not match the session schema", path)
}
