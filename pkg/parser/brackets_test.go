package parser

import "testing"

func TestIsComplete(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "empty string", text: "", want: true},
		{name: "no brackets", text: "users", want: true},
		{name: "balanced parens", text: "$count(items)", want: true},
		{name: "balanced nested", text: "{\"a\": [1, (2)]}", want: true},
		{name: "unclosed paren", text: "$count(items", want: false},
		{name: "unclosed brace", text: "{\"a\": 1", want: false},
		{name: "unopened closer", text: "items)", want: false},
		{name: "mismatched closer", text: "(items]", want: false},
		{name: "interleaved not nested", text: "([)]", want: false},
		{name: "brackets inside double quotes", text: "\"a ( [ { b\"", want: true},
		{name: "brackets inside single quotes", text: "'}])'", want: true},
		{name: "escaped quote does not end string", text: `"a\"b"`, want: true},
		{name: "escaped quote then bracket still in string", text: `"a\"(" `, want: true},
		{name: "unterminated string", text: `"unterminated`, want: false},
		{name: "unterminated string hides closer", text: `("a)`, want: false},
		{name: "multi-line object", text: "{\n  \"a\": 1\n}", want: true},
		{name: "filter predicate", text: "users[age > 25].name", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsComplete(tt.text); got != tt.want {
				t.Errorf("IsComplete(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsCompleteRemovingFinalCloser(t *testing.T) {
	// Removing the final closing character from a balanced string must make
	// it incomplete.
	balanced := []string{
		"$count(items)",
		"{\"a\": [1, 2]}",
		"((()))",
		"[{\"x\": (1)}]",
	}

	for _, s := range balanced {
		if !IsComplete(s) {
			t.Errorf("IsComplete(%q) = false, want true", s)
			continue
		}
		truncated := s[:len(s)-1]
		if IsComplete(truncated) {
			t.Errorf("IsComplete(%q) = true, want false", truncated)
		}
	}
}
