// Package session implements the versioned shareable-session envelope: a JSON
// document bundling an expression, its input data and the last result so a
// session can be exported from one host and imported into another.
package session

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/jsonata-tools/jsonata-lint/pkg/constants"
)

//go:embed schemas/session_schema.json
var sessionSchema string

// Envelope is the top-level session document.
type Envelope struct {
	Version   string   `json:"version"`
	Timestamp string   `json:"timestamp"`
	Metadata  Metadata `json:"metadata"`
	Data      Payload  `json:"data"`
}

// Metadata identifies the producing tool.
type Metadata struct {
	Tool        string `json:"tool"`
	Description string `json:"description,omitempty"`
}

// Payload carries the session content. ErrorMessage is set only when
// HasError is true; a test harness may serialize diagnostics into it.
type Payload struct {
	JSONInput         string `json:"jsonInput"`
	JSONataExpression string `json:"jsonataExpression"`
	Result            string `json:"result"`
	HasError          bool   `json:"hasError"`
	ErrorMessage      string `json:"errorMessage,omitempty"`
}

// New builds an envelope for the given session content, stamped with the
// current time and the tool identity.
func New(jsonInput, expression, result string, errorMessage string) *Envelope {
	return &Envelope{
		Version:   constants.SessionVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Metadata:  Metadata{Tool: constants.CLIName},
		Data: Payload{
			JSONInput:         jsonInput,
			JSONataExpression: expression,
			Result:            result,
			HasError:          errorMessage != "",
			ErrorMessage:      errorMessage,
		},
	}
}

// Marshal renders the envelope as indented JSON.
func (e *Envelope) Marshal() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// Save writes the envelope to path.
func (e *Envelope) Save(path string) error {
	data, err := e.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Load reads and validates a session envelope from path.
func Load(path string) (*Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	return Parse(data)
}

// Parse validates raw JSON against the session schema and decodes it.
func Parse(data []byte) (*Envelope, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &env, nil
}

// Validate checks raw JSON against the embedded session schema without
// decoding it into an Envelope.
func Validate(data []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("session is not valid JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("session does not match the envelope schema: %w", err)
	}
	return nil
}

// ValidationError exposes the structured schema failure for callers that map
// it back onto source positions; it returns nil when data is valid.
func ValidationError(data []byte) *jsonschema.ValidationError {
	schema, err := compileSchema()
	if err != nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if err := schema.Validate(doc); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			verr = ve
		}
	}
	return verr
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()

	var schemaDoc any
	if err := json.Unmarshal([]byte(sessionSchema), &schemaDoc); err != nil {
		return nil, fmt.Errorf("failed to parse session schema: %w", err)
	}

	const schemaURL = "https://jsonata-tools.dev/schemas/session.json"
	if err := compiler.AddResource(schemaURL, schemaDoc); err != nil {
		return nil, fmt.Errorf("failed to register session schema: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile session schema: %w", err)
	}
	return schema, nil
}
