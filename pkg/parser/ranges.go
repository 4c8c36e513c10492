package parser

import "strings"

// Document exposes the line structure of a source document. Hosts with their
// own document model implement this directly; NewTextDocument adapts raw text.
type Document interface {
	LineCount() int
	Line(i int) string
}

// Position is a 0-indexed line/column pair in a document.
type Position struct {
	Line   int
	Column int
}

// TextDocument is the standard Document implementation over a plain string.
type TextDocument struct {
	lines []string
}

// NewTextDocument splits text into lines once and serves line lookups from
// the result.
func NewTextDocument(text string) *TextDocument {
	return &TextDocument{lines: strings.Split(text, "\n")}
}

// LineCount returns the number of lines in the document. An empty document
// still has one (empty) line.
func (d *TextDocument) LineCount() int {
	return len(d.lines)
}

// Lines returns the document's lines. The returned slice is shared; callers
// must not modify it.
func (d *TextDocument) Lines() []string {
	return d.lines
}

// Line returns the text of line i without its trailing newline, or "" when i
// is out of range.
func (d *TextDocument) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i]
}

// ToDisplaySpan clamps a resolved (line, startChar, endChar) triple to the
// bounds of the actual document so it can be handed to a highlighting
// consumer. selection, when non-nil, is the document position where a
// validated selection begins: its line shifts every resolved line, while its
// column shifts only resolved line 0, since later lines of a selection are
// already absolute within it.
//
// The returned span is always a valid start <= end range inside the document.
// When the resolved start falls past the visible content of a non-empty line,
// the span is pulled back one character so something is still highlighted.
// The function is idempotent: clamping an already-clamped span is a no-op.
func ToDisplaySpan(doc Document, line, startChar, endChar int, selection *Position) (int, int, int) {
	if selection != nil {
		if line == 0 {
			startChar += selection.Column
			endChar += selection.Column
		}
		line += selection.Line
	}

	if line < 0 {
		line = 0
	}
	if last := doc.LineCount() - 1; line > last {
		line = last
	}

	length := len(doc.Line(line))
	if length == 0 {
		return line, 0, 0
	}

	if startChar < 0 {
		startChar = 0
	}
	if startChar > length {
		startChar = length
	}
	if endChar < startChar {
		endChar = startChar
	}
	if endChar > length {
		endChar = length
	}

	if startChar == length {
		startChar = length - 1
		endChar = length
	}

	return line, startChar, endChar
}
