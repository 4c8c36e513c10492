package parser

import (
	"strings"

	"github.com/jsonata-tools/jsonata-lint/pkg/constants"
)

// NoPosition marks a compiler error whose character offset is unknown.
const NoPosition = -1

// ResolvedLocation is an absolute document location: a line plus a half-open
// column span on that line. EndChar > StartChar except for the zero-length
// position on an empty line.
type ResolvedLocation struct {
	Line      int
	StartChar int
	EndChar   int
}

// ResolveLocation translates a flat character offset reported by the
// expression compiler into a document location. text is the expression's
// exact source, position is the offset into text (NoPosition when the
// compiler could not localize the defect), token is the offending token text
// as reported, and startLine/startColumn are the document coordinates where
// the expression begins.
//
// Only the first line of the expression is offset into the document by
// startColumn; later lines of a multi-line expression begin at document
// column 0 because the expression's own line breaks are real document line
// breaks.
func ResolveLocation(text string, position int, token string, startLine, startColumn int) ResolvedLocation {
	lines := strings.Split(text, "\n")

	// Without a usable offset, highlight the whole first line.
	if position < 0 {
		return ResolvedLocation{
			Line:      startLine,
			StartChar: startColumn,
			EndChar:   startColumn + len(lines[0]),
		}
	}

	// Offsets at or past the end of the expression land on the last visible
	// character of the last line, never one-past-the-end.
	if position >= len(text) {
		return lastCharLocation(lines, startLine, startColumn)
	}

	cursor := 0
	for i, lineText := range lines {
		lineLen := len(lineText)
		if position > cursor+lineLen {
			cursor += lineLen + 1 // +1 for the newline consumed by the split
			continue
		}

		charInLine := position - cursor
		line := startLine + i
		column := charInLine
		if i == 0 {
			column = startColumn + charInLine
		}

		// A closer reported on a line that is nothing but that closer, right
		// after a line ending in a comma, is almost always a trailing-comma
		// defect the compiler mis-attributed to the closer. Point at the
		// comma instead. This never fires on the expression's first line and
		// never looks more than one line back.
		if (token == "}" || token == "]") && i > 0 {
			if strings.TrimSpace(lineText) == token {
				prev := lines[i-1]
				if strings.HasSuffix(strings.TrimSpace(prev), ",") {
					commaIndex := strings.LastIndex(prev, ",")
					commaColumn := commaIndex
					if i-1 == 0 {
						commaColumn = startColumn + commaIndex
					}
					return ResolvedLocation{
						Line:      line - 1,
						StartChar: commaColumn,
						EndChar:   commaColumn + 1,
					}
				}
			}
		}

		if token != "" && token != constants.EndOfInput {
			return ResolvedLocation{Line: line, StartChar: column, EndChar: column + len(token)}
		}

		if token == constants.EndOfInput && charInLine >= lineLen {
			return lastCharOnLine(lineText, line, i == 0, startColumn)
		}

		return ResolvedLocation{Line: line, StartChar: column, EndChar: column + 1}
	}

	// Unreachable for position < len(text), but keep the guard total.
	return lastCharLocation(lines, startLine, startColumn)
}

// lastCharLocation positions a span on the last character of the last line of
// an expression.
func lastCharLocation(lines []string, startLine, startColumn int) ResolvedLocation {
	i := len(lines) - 1
	return lastCharOnLine(lines[i], startLine+i, i == 0, startColumn)
}

func lastCharOnLine(lineText string, line int, firstLine bool, startColumn int) ResolvedLocation {
	if len(lineText) == 0 {
		return ResolvedLocation{Line: line, StartChar: 0, EndChar: 0}
	}
	start := len(lineText) - 1
	end := len(lineText)
	if firstLine {
		start += startColumn
		end += startColumn
	}
	return ResolvedLocation{Line: line, StartChar: start, EndChar: end}
}
