package validator

import "strings"

// suggestionRule pairs a predicate over (code, token, message) with the
// suggestion to attach. Rules are evaluated top to bottom and the first match
// wins, so more specific rules must come before generic ones.
type suggestionRule struct {
	code            string // exact error code match, when non-empty
	tokenContains   string // substring of the offending token, when non-empty
	messageContains string // substring of the message, when non-empty
	suggestion      string
}

func (r suggestionRule) matches(code, token, message string) bool {
	if r.code != "" && r.code != code {
		return false
	}
	if r.tokenContains != "" && !strings.Contains(token, r.tokenContains) {
		return false
	}
	if r.messageContains != "" && !strings.Contains(strings.ToLower(message), r.messageContains) {
		return false
	}
	return r.code != "" || r.tokenContains != "" || r.messageContains != ""
}

var suggestionRules = []suggestionRule{
	{messageContains: "trailing comma", suggestion: "Remove the trailing comma before the closing bracket."},
	{code: "S0101", suggestion: "Add the missing closing quote to terminate the string literal."},
	{messageContains: "unterminated string", suggestion: "Add the missing closing quote to terminate the string literal."},
	{code: "S0203", suggestion: "The expression ended unexpectedly; check for an unclosed bracket or quote."},
	{messageContains: "expected", tokenContains: "(end)", suggestion: "The expression ended unexpectedly; check for an unclosed bracket or quote."},
	{code: "T1006", suggestion: "Check the function name spelling; built-in functions start with $."},
	{messageContains: "is not a function", suggestion: "Check the function name spelling; built-in functions start with $."},
	{messageContains: "unknown function", suggestion: "Check the function name spelling; built-in functions start with $."},
	{code: "T0410", suggestion: "Check the number and order of arguments passed to the function."},
	{messageContains: "argument", suggestion: "Check the number and order of arguments passed to the function."},
	{tokenContains: ",", messageContains: "unexpected", suggestion: "Remove the extra comma or add the missing value after it."},
	{messageContains: "unexpected end", suggestion: "The expression ended unexpectedly; check for an unclosed bracket or quote."},
}

// SuggestionFor returns the human-readable suggestion for the given compiler
// error attributes, or "" when no rule matches.
func SuggestionFor(code, token, message string) string {
	for _, rule := range suggestionRules {
		if rule.matches(code, token, message) {
			return rule.suggestion
		}
	}
	return ""
}
