// Package console renders diagnostics and status messages for terminal
// consumers, with styling applied only when stdout is a TTY.
package console

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/jsonata-tools/jsonata-lint/pkg/validator"
)

var (
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555"))

	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB86C"))

	infoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BE9FD"))

	filePathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BD93F9"))

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4"))

	contextLineStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F8F8F2"))

	highlightStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#FF5555")).
			Foreground(lipgloss.Color("#282A36"))

	hintStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#50FA7B"))

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#50FA7B"))

	verboseStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#6272A4"))
)

func isTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

func applyStyle(style lipgloss.Style, text string) string {
	if isTTY() {
		return style.Render(text)
	}
	return text
}

// ToRelativePath converts an absolute path to one relative to the working
// directory, falling back to the input when that fails.
func ToRelativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return path
	}
	return rel
}

// FormatDiagnostic renders a diagnostic with an IDE-parseable header line,
// the source line it points at, a caret run underlining the resolved span,
// and an optional hint. Line and column are printed 1-based; the diagnostic's
// internal coordinates are 0-based.
func FormatDiagnostic(d validator.Diagnostic, source string) string {
	var out strings.Builder

	severity := string(d.Severity)
	if severity == "" {
		severity = string(validator.SeverityError)
	}

	location := fmt.Sprintf("%s:%d:%d:", ToRelativePath(d.Path), d.Location.Line+1, d.Location.StartChar+1)
	out.WriteString(applyStyle(filePathStyle, location))
	out.WriteString(" ")
	out.WriteString(applyStyle(severityStyle(d.Severity), severity+":"))
	out.WriteString(" ")
	out.WriteString(d.Message)
	if d.Code != "" {
		out.WriteString(fmt.Sprintf(" [%s]", d.Code))
	}
	out.WriteString("\n")

	if source != "" {
		out.WriteString(renderSourceContext(d, source))
	}

	if d.Suggestion != "" {
		out.WriteString(applyStyle(hintStyle, "hint: "))
		out.WriteString(d.Suggestion)
		out.WriteString("\n")
	}

	return out.String()
}

// renderSourceContext prints the offending line with its number and a caret
// run covering [StartChar, EndChar).
func renderSourceContext(d validator.Diagnostic, source string) string {
	lines := strings.Split(source, "\n")
	if d.Location.Line < 0 || d.Location.Line >= len(lines) {
		return ""
	}

	var out strings.Builder
	lineText := lines[d.Location.Line]
	lineNum := fmt.Sprintf("%d", d.Location.Line+1)

	start := d.Location.StartChar
	end := d.Location.EndChar
	if start > len(lineText) {
		start = len(lineText)
	}
	if end > len(lineText) {
		end = len(lineText)
	}

	out.WriteString(applyStyle(lineNumberStyle, lineNum))
	out.WriteString(" | ")
	if start < end {
		out.WriteString(applyStyle(contextLineStyle, lineText[:start]))
		out.WriteString(applyStyle(highlightStyle, lineText[start:end]))
		out.WriteString(applyStyle(contextLineStyle, lineText[end:]))
	} else {
		out.WriteString(applyStyle(contextLineStyle, lineText))
	}
	out.WriteString("\n")

	carets := end - start
	if carets < 1 {
		carets = 1
	}
	out.WriteString(strings.Repeat(" ", len(lineNum)+3+start))
	out.WriteString(applyStyle(errorStyle, strings.Repeat("^", carets)))
	out.WriteString("\n")

	return out.String()
}

func severityStyle(s validator.Severity) lipgloss.Style {
	switch s {
	case validator.SeverityWarning:
		return warningStyle
	case validator.SeverityInfo:
		return infoStyle
	default:
		return errorStyle
	}
}

// FormatSuccessMessage formats a success message with styling
func FormatSuccessMessage(message string) string {
	return applyStyle(successStyle, "✓ ") + message
}

// FormatInfoMessage formats an informational message
func FormatInfoMessage(message string) string {
	return applyStyle(infoStyle, "ℹ ") + message
}

// FormatWarningMessage formats a warning message
func FormatWarningMessage(message string) string {
	return applyStyle(warningStyle, "⚠ ") + message
}

// FormatErrorMessage formats a simple error message (for stderr output)
func FormatErrorMessage(message string) string {
	return applyStyle(errorStyle, "✗ ") + message
}

// FormatVerboseMessage formats verbose debugging output
func FormatVerboseMessage(message string) string {
	return applyStyle(verboseStyle, message)
}
