package validator

import (
	"strings"
	"testing"
)

func TestSuggestionFor(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		token    string
		message  string
		contains string // "" means no suggestion expected
	}{
		{
			name:     "trailing comma by message",
			message:  "syntax error: trailing comma before }",
			contains: "trailing comma",
		},
		{
			name:     "unterminated string by code",
			code:     "S0101",
			message:  "String literal must be terminated by a matching quote",
			contains: "closing quote",
		},
		{
			name:     "end of expression by code",
			code:     "S0203",
			token:    "(end)",
			message:  "expected \")\" before end of expression",
			contains: "unclosed",
		},
		{
			name:     "end of expression by token without code",
			token:    "(end)",
			message:  "expected \")\"",
			contains: "unclosed",
		},
		{
			name:     "unknown function by message",
			message:  "Attempted to invoke a non-function: $conut is not a function",
			contains: "function name spelling",
		},
		{
			name:     "argument count",
			code:     "T0410",
			message:  "Argument 1 of function $substring does not match function signature",
			contains: "arguments",
		},
		{
			name:    "no match",
			message: "completely novel failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestionFor(tt.code, tt.token, tt.message)
			if tt.contains == "" {
				if got != "" {
					t.Errorf("SuggestionFor() = %q, want none", got)
				}
				return
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("SuggestionFor() = %q, want it to contain %q", got, tt.contains)
			}
		})
	}
}

func TestSuggestionPrecedence(t *testing.T) {
	// A message matching both the trailing-comma rule and a later generic
	// rule must get the trailing-comma suggestion: first match wins.
	got := SuggestionFor("", ",", "unexpected trailing comma")
	if !strings.Contains(got, "trailing comma before the closing bracket") {
		t.Errorf("SuggestionFor() = %q, want the trailing-comma rule to win", got)
	}
}
