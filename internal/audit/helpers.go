package audit

import (
	"path"
	"strings"
	"unicode"
)

const (
	singleQuoteConstant = "'"
	doubleQuoteConstant = "\""
)

// capitalizeName upper-cases the first rune of a variant key to form its component name.
func capitalizeName(name string) string {
	if len(name) == 0 {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// containsQuotedLiteral reports whether content holds the key as a quoted string literal.
func containsQuotedLiteral(content string, key string) bool {
	if strings.Contains(content, singleQuoteConstant+key+singleQuoteConstant) {
		return true
	}
	return strings.Contains(content, doubleQuoteConstant+key+doubleQuoteConstant)
}

// countContainedTokens returns how many of the tokens occur in the content.
func countContainedTokens(content string, tokens []string) int {
	contained := 0
	for _, token := range tokens {
		if strings.Contains(content, token) {
			contained++
		}
	}
	return contained
}

// missingTokens returns the tokens absent from the content, preserving order.
func missingTokens(content string, tokens []string) []string {
	var missing []string
	for _, token := range tokens {
		if !strings.Contains(content, token) {
			missing = append(missing, token)
		}
	}
	return missing
}

// joinProjectPath joins slash-separated relative path segments.
func joinProjectPath(segments ...string) string {
	return path.Join(segments...)
}
