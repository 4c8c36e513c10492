// Package mapper maps schema-validation failures on a session file back onto
// line/column spans in its source text, so session errors render with the
// same positioned output as expression diagnostics. The session file is JSON,
// which goccy/go-yaml parses as flow-style YAML with full token positions.
package mapper

import (
	"strconv"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
)

// Span is a 1-based location range in the session source.
type Span struct {
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// LocateInstance resolves a jsonschema instance location (the path segments of
// a failed value, e.g. ["data", "hasError"]) to a span in src. When the path
// names a value that does not exist (a missing required property), the span
// of the nearest existing ancestor is returned instead; when nothing can be
// located the document-start span is returned.
func LocateInstance(src []byte, instanceLocation []string) Span {
	file, err := parser.ParseBytes(src, 0)
	if err != nil || len(file.Docs) == 0 {
		return documentStart()
	}

	root := file.Docs[0].Body

	for depth := len(instanceLocation); depth >= 0; depth-- {
		if node := traverse(root, instanceLocation[:depth]); node != nil {
			return nodeSpan(node)
		}
	}
	return documentStart()
}

// LocateProperty finds the first occurrence of a property key in src, used
// for additional-properties failures where the offending key is known but not
// part of the instance path.
func LocateProperty(src []byte, property string) (Span, bool) {
	quoted := `"` + property + `"`
	for lineNum, line := range strings.Split(string(src), "\n") {
		idx := strings.Index(line, quoted)
		if idx < 0 {
			continue
		}
		return Span{
			StartLine: lineNum + 1,
			StartCol:  idx + 1,
			EndLine:   lineNum + 1,
			EndCol:    idx + len(quoted) + 1,
		}, true
	}
	return Span{}, false
}

// traverse walks the AST by path segments, returning nil when a segment does
// not exist.
func traverse(root ast.Node, segments []string) ast.Node {
	current := root
	for _, segment := range segments {
		switch node := current.(type) {
		case *ast.MappingNode:
			next := childValue(node, segment)
			if next == nil {
				return nil
			}
			current = next
		case *ast.MappingValueNode:
			if !keyMatches(node.Key, segment) {
				return nil
			}
			current = node.Value
		case *ast.SequenceNode:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node.Values) {
				return nil
			}
			current = node.Values[idx]
		default:
			return nil
		}
	}
	return current
}

func childValue(node *ast.MappingNode, key string) ast.Node {
	for _, value := range node.Values {
		if keyMatches(value.Key, key) {
			return value.Value
		}
	}
	return nil
}

func keyMatches(keyNode ast.MapKeyNode, segment string) bool {
	if str, ok := keyNode.(*ast.StringNode); ok {
		return str.Value == segment
	}
	if tok := keyNode.GetToken(); tok != nil {
		return tok.Value == segment
	}
	return false
}

func nodeSpan(node ast.Node) Span {
	tok := node.GetToken()
	if tok == nil {
		return documentStart()
	}
	return tokenSpan(tok)
}

func tokenSpan(tok *token.Token) Span {
	pos := tok.Position
	return Span{
		StartLine: pos.Line,
		StartCol:  pos.Column,
		EndLine:   pos.Line,
		EndCol:    pos.Column + len(tok.Value),
	}
}

func documentStart() Span {
	return Span{StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 1}
}
