package parser

// IsComplete reports whether all parentheses, brackets and braces in text are
// balanced outside of string literals. It is used to decide whether an
// expression continues on the next line.
//
// The scan treats both quote characters symmetrically as string delimiters: an
// unescaped " or ' toggles string state, and bracket characters inside a
// string are ignored. A backslash consumes the following character without
// toggling string state. An apostrophe used as a literal value therefore opens
// a string as far as this check is concerned; that is a known limitation of
// the heuristic, not something to correct here.
func IsComplete(text string) bool {
	var stack []byte
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == '"' || c == '\'' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case '(':
			stack = append(stack, ')')
		case '[':
			stack = append(stack, ']')
		case '{':
			stack = append(stack, '}')
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}

	return len(stack) == 0 && !inString
}
