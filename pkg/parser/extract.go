package parser

import (
	"regexp"
	"strings"
)

// ExpressionSpan is a candidate expression extracted from a document, with the
// document coordinates where it begins. Text may itself span multiple lines.
type ExpressionSpan struct {
	Text        string
	StartLine   int // 0-indexed line in the owning document
	StartColumn int // 0-indexed column on StartLine
	EndColumn   int // 0-indexed exclusive end column; set in embedded mode only
}

// stringLiteralPattern matches a double-quoted JSON string including escaped
// characters, capturing the interior of the quotes.
var stringLiteralPattern = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"`)

// expressionMarkers are the JSONata-specific patterns used to decide whether a
// JSON string value is worth validating as an expression. Plain prose strings
// match none of them.
var expressionMarkers = []*regexp.Regexp{
	regexp.MustCompile(`\$[A-Za-z_]`),              // variable or built-in function reference
	regexp.MustCompile(`\$\$`),                     // root sigil
	regexp.MustCompile(`\*\.|\.\*`),                // wildcard navigation
	regexp.MustCompile(`\[[^\]]*(?:[<>!]=?|=)[^\]]*\]`), // filter predicate
	regexp.MustCompile(`~>`),                       // chain operator
	regexp.MustCompile(`\^\(`),                     // order-by
	regexp.MustCompile(`%\.`),                      // parent navigation
}

// LooksLikeExpression reports whether s contains at least one JSONata marker
// pattern. It is a lightweight heuristic for embedded-in-JSON extraction and
// intentionally errs on the side of skipping plain strings.
func LooksLikeExpression(s string) bool {
	for _, marker := range expressionMarkers {
		if marker.MatchString(s) {
			return true
		}
	}
	return false
}

// ExtractTopLevel splits a dedicated expression document into discrete
// top-level expressions. Blank lines and lines opening a comment are skipped
// between expressions. An expression whose brackets are not balanced on its
// first line accumulates subsequent raw lines, joined by \n with their
// original indentation preserved, until the accumulated text is balanced.
//
// If the document ends mid-expression the accumulated text is emitted anyway;
// the compiler will report the incompleteness on it.
func ExtractTopLevel(documentText string) []ExpressionSpan {
	lines := strings.Split(documentText, "\n")

	var spans []ExpressionSpan
	var buf []string
	inProgress := false
	startLine := 0
	startColumn := 0

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if !inProgress {
			if trimmed == "" || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") {
				continue
			}
			startLine = i
			startColumn = len(line) - len(strings.TrimLeft(line, " \t"))
			if IsComplete(trimmed) {
				spans = append(spans, ExpressionSpan{
					Text:        trimmed,
					StartLine:   startLine,
					StartColumn: startColumn,
				})
				continue
			}
			buf = append(buf[:0], trimmed)
			inProgress = true
			continue
		}

		// Later lines keep their raw text so column math on them stays
		// consistent with the document.
		buf = append(buf, line)
		if IsComplete(strings.Join(buf, "\n")) {
			spans = append(spans, ExpressionSpan{
				Text:        strings.Join(buf, "\n"),
				StartLine:   startLine,
				StartColumn: startColumn,
			})
			inProgress = false
		}
	}

	if inProgress {
		text := strings.Join(buf, "\n")
		if strings.TrimSpace(text) != "" {
			spans = append(spans, ExpressionSpan{
				Text:        text,
				StartLine:   startLine,
				StartColumn: startColumn,
			})
		}
	}

	return spans
}

// ExtractFromLine scans a single line of a JSON document for string literals
// whose content looks like a JSONata expression. Columns cover the interior
// of the quotes, excluding the quote characters themselves.
func ExtractFromLine(line string, lineIndex int) []ExpressionSpan {
	var spans []ExpressionSpan

	for _, match := range stringLiteralPattern.FindAllStringSubmatchIndex(line, -1) {
		content := line[match[2]:match[3]]
		if !LooksLikeExpression(content) {
			continue
		}
		spans = append(spans, ExpressionSpan{
			Text:        content,
			StartLine:   lineIndex,
			StartColumn: match[2],
			EndColumn:   match[3],
		})
	}

	return spans
}
