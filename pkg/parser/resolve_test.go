package parser

import (
	"strings"
	"testing"

	"github.com/jsonata-tools/jsonata-lint/pkg/constants"
)

func TestResolveLocation(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		position    int
		token       string
		startLine   int
		startColumn int
		want        ResolvedLocation
	}{
		{
			name:     "token at start of single-line expression",
			text:     "users[age > 25].name",
			position: 0,
			token:    "users",
			want:     ResolvedLocation{Line: 0, StartChar: 0, EndChar: 5},
		},
		{
			name:        "single-line expression inherits start column",
			text:        "users[age > 25].name",
			position:    0,
			token:       "users",
			startLine:   7,
			startColumn: 12,
			want:        ResolvedLocation{Line: 7, StartChar: 12, EndChar: 17},
		},
		{
			name:        "second line does not inherit start column",
			text:        "a(\nb)",
			position:    3,
			token:       "b",
			startLine:   5,
			startColumn: 9,
			want:        ResolvedLocation{Line: 6, StartChar: 0, EndChar: 1},
		},
		{
			name:     "no position highlights whole first line",
			text:     "users.name\nrest",
			position: NoPosition,
			token:    "users",
			want:     ResolvedLocation{Line: 0, StartChar: 0, EndChar: 10},
		},
		{
			name:        "no position respects start column",
			text:        "users.name",
			position:    NoPosition,
			startLine:   3,
			startColumn: 4,
			want:        ResolvedLocation{Line: 3, StartChar: 4, EndChar: 14},
		},
		{
			name:     "trailing comma redirected from closing brace",
			text:     "{\n  \"a\": 1,\n}",
			position: strings.Index("{\n  \"a\": 1,\n}", "}"),
			token:    "}",
			want:     ResolvedLocation{Line: 1, StartChar: 8, EndChar: 9},
		},
		{
			name:     "trailing comma redirected from closing bracket",
			text:     "[\n  1,\n  2,\n]",
			position: strings.Index("[\n  1,\n  2,\n]", "]"),
			token:    "]",
			want:     ResolvedLocation{Line: 2, StartChar: 3, EndChar: 4},
		},
		{
			name:     "closer with other content does not redirect",
			text:     "{\n  \"a\": 1,\n} + 1",
			position: strings.Index("{\n  \"a\": 1,\n} + 1", "}"),
			token:    "}",
			want:     ResolvedLocation{Line: 2, StartChar: 0, EndChar: 1},
		},
		{
			name:     "closer without preceding comma does not redirect",
			text:     "{\n  \"a\": 1\n}",
			position: strings.Index("{\n  \"a\": 1\n}", "}"),
			token:    "}",
			want:     ResolvedLocation{Line: 2, StartChar: 0, EndChar: 1},
		},
		{
			name:     "closer on first line never redirects",
			text:     "{\"a\": 1,}",
			position: 8,
			token:    "}",
			want:     ResolvedLocation{Line: 0, StartChar: 8, EndChar: 9},
		},
		{
			name:     "end of input lands on last character",
			text:     "$count(items",
			position: len("$count(items"),
			token:    constants.EndOfInput,
			want:     ResolvedLocation{Line: 0, StartChar: 11, EndChar: 12},
		},
		{
			name:        "end of input keeps start column on first line",
			text:        "$count(items",
			position:    12,
			token:       constants.EndOfInput,
			startColumn: 2,
			want:        ResolvedLocation{Line: 0, StartChar: 13, EndChar: 14},
		},
		{
			name:     "end of input on multi-line expression",
			text:     "(\n  1 + ",
			position: len("(\n  1 + "),
			token:    constants.EndOfInput,
			want:     ResolvedLocation{Line: 1, StartChar: 5, EndChar: 6},
		},
		{
			name:     "end of input after trailing newline",
			text:     "$count(items\n",
			position: 13,
			token:    constants.EndOfInput,
			want:     ResolvedLocation{Line: 1, StartChar: 0, EndChar: 0},
		},
		{
			name:     "position beyond end forces last line",
			text:     "a\nb",
			position: 99,
			token:    "b",
			want:     ResolvedLocation{Line: 1, StartChar: 0, EndChar: 1},
		},
		{
			name:     "missing token falls back to single character",
			text:     "users.name",
			position: 6,
			token:    "",
			want:     ResolvedLocation{Line: 0, StartChar: 6, EndChar: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveLocation(tt.text, tt.position, tt.token, tt.startLine, tt.startColumn)
			if got != tt.want {
				t.Errorf("ResolveLocation() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
