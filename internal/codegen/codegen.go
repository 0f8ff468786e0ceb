// Package codegen substitutes extracted parameter values into a call
// template, producing a ready-to-run call expression.
//
// Values that look like literals (purely numeric, or true/false/none) are
// substituted unquoted, collapsing any quotes the template placed around
// the placeholder. Everything else is substituted verbatim, so the
// template's own quoting survives. Placeholders left unresolved are
// blanked to '' — the output is always syntactically complete, never a
// dangling {{marker}}.
package codegen

import (
	"regexp"
	"strings"
)

// placeholderRegex matches any remaining {{name}} token after substitution
var placeholderRegex = regexp.MustCompile(`\{\{[^}]+\}\}`)

// Generate renders the call template with the given parameter values.
func Generate(template string, values map[string]string) string {
	code := template

	for name, value := range values {
		token := "{{" + name + "}}"
		if isLiteral(value) {
			// collapse pre-quoted occurrences first so the literal is
			// not left wrapped in the template's quotes
			code = strings.ReplaceAll(code, "'"+token+"'", value)
			code = strings.ReplaceAll(code, `"`+token+`"`, value)
		}
		code = strings.ReplaceAll(code, token, value)
	}

	// unresolved placeholders degrade to empty string literals
	return placeholderRegex.ReplaceAllString(code, "''")
}

// isLiteral reports whether a value should appear unquoted in generated
// code: purely numeric values and the words true, false, and none.
func isLiteral(value string) bool {
	if value == "" {
		return false
	}
	switch strings.ToLower(value) {
	case "true", "false", "none":
		return true
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
