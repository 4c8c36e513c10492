package parser

import "testing"

func TestExtractTopLevel(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []ExpressionSpan
	}{
		{
			name: "single expression",
			doc:  "users[age > 25].name",
			want: []ExpressionSpan{
				{Text: "users[age > 25].name", StartLine: 0, StartColumn: 0},
			},
		},
		{
			name: "blank and comment lines skipped",
			doc:  "\n// pick the names\n\n$count(users)\n",
			want: []ExpressionSpan{
				{Text: "$count(users)", StartLine: 3, StartColumn: 0},
			},
		},
		{
			name: "block comment opener skipped",
			doc:  "/* header */\n$sum(totals)",
			want: []ExpressionSpan{
				{Text: "$sum(totals)", StartLine: 1, StartColumn: 0},
			},
		},
		{
			name: "indented expression records start column",
			doc:  "   $max(values)",
			want: []ExpressionSpan{
				{Text: "$max(values)", StartLine: 0, StartColumn: 3},
			},
		},
		{
			name: "two expressions",
			doc:  "$count(users)\n\nusers.name",
			want: []ExpressionSpan{
				{Text: "$count(users)", StartLine: 0, StartColumn: 0},
				{Text: "users.name", StartLine: 2, StartColumn: 0},
			},
		},
		{
			name: "multi-line expression preserves later line indentation",
			doc:  "{\n  \"a\": 1\n}",
			want: []ExpressionSpan{
				{Text: "{\n  \"a\": 1\n}", StartLine: 0, StartColumn: 0},
			},
		},
		{
			name: "multi-line followed by single line",
			doc:  "(\n  1 + 2\n)\n$now()",
			want: []ExpressionSpan{
				{Text: "(\n  1 + 2\n)", StartLine: 0, StartColumn: 0},
				{Text: "$now()", StartLine: 3, StartColumn: 0},
			},
		},
		{
			name: "unterminated expression emitted at end of document",
			doc:  "{\n  \"a\": 1",
			want: []ExpressionSpan{
				{Text: "{\n  \"a\": 1", StartLine: 0, StartColumn: 0},
			},
		},
		{
			name: "empty document",
			doc:  "",
			want: nil,
		},
		{
			name: "only comments",
			doc:  "// one\n// two",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTopLevel(tt.doc)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractTopLevel() returned %d spans, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("span %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtractFromLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []ExpressionSpan
	}{
		{
			name: "plain JSON strings ignored",
			line: `  "name": "Alice",`,
			want: nil,
		},
		{
			name: "function call value extracted",
			line: `  "total": "$sum(items.price)",`,
			want: []ExpressionSpan{
				{Text: "$sum(items.price)", StartLine: 4, StartColumn: 12, EndColumn: 29},
			},
		},
		{
			name: "filter predicate extracted",
			line: `"query": "users[age > 25].name"`,
			want: []ExpressionSpan{
				{Text: "users[age > 25].name", StartLine: 4, StartColumn: 10, EndColumn: 30},
			},
		},
		{
			name: "chain operator extracted",
			line: `"pipe": "payload ~> $string()"`,
			want: []ExpressionSpan{
				{Text: "payload ~> $string()", StartLine: 4, StartColumn: 9, EndColumn: 29},
			},
		},
		{
			name: "wildcard extracted",
			line: `"all": "Account.Order.*.Price"`,
			want: []ExpressionSpan{
				{Text: "Account.Order.*.Price", StartLine: 4, StartColumn: 8, EndColumn: 29},
			},
		},
		{
			name: "empty line",
			line: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractFromLine(tt.line, 4)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractFromLine() returned %d spans, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("span %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLooksLikeExpression(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"$count(users)", true},
		{"$$.items", true},
		{"Account.Order.*.Price", true},
		{"users[age > 25]", true},
		{"payload ~> $string()", true},
		{"products^(price)", true},
		{"%.parent", true},
		{"Alice", false},
		{"a plain sentence", false},
		{"", false},
		{"2024-01-01", false},
	}

	for _, tt := range tests {
		if got := LooksLikeExpression(tt.s); got != tt.want {
			t.Errorf("LooksLikeExpression(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
