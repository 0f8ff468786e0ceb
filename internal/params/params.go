// Package params recovers concrete parameter values from a user sentence,
// given the matched catalog example sentence with its {{name}} placeholder
// markers.
//
// Extraction is two-phase and best-effort. The structural phase turns the
// example sentence into a regular expression with one capture group per
// placeholder and matches it against the user text. If that yields
// nothing, an ordered list of keyword heuristics fires, followed by
// quoted-substring and plain-word fills. Placeholders can remain unfilled;
// the code generator blanks them downstream.
//
// The stopword list and keyword rules are hand-tuned and unlikely to
// generalize, so they are configuration data: defaults live here and a
// YAML file can replace them wholesale.
package params

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// captureGroup matches one placeholder position in the user text: a run
// of non-space/non-comma characters, or a double- or single-quoted string.
const captureGroup = `([^\s,]+|"[^"]*"|'[^']*')`

var (
	// placeholderRegex extracts placeholder names from example sentences
	placeholderRegex = regexp.MustCompile(`\{\{([^}]+)\}\}`)
	// quotedRegex finds quoted substrings for the fallback fill
	quotedRegex = regexp.MustCompile(`["']([^"']+)["']`)
	// wordRegex finds candidate value words for the last-resort fill
	wordRegex = regexp.MustCompile(`\b([a-zA-Z][\w\-\.]+)\b`)
)

// Placeholders returns the placeholder names appearing in s, in order of
// appearance, duplicates included.
func Placeholders(s string) []string {
	matches := placeholderRegex.FindAllStringSubmatch(s, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// KeywordRule is one fallback heuristic: a regex whose first capture group
// yields a candidate value, applied to placeholders whose lowercased name
// contains any of the listed fragments.
type KeywordRule struct {
	Pattern      string   `yaml:"pattern"`
	Placeholders []string `yaml:"placeholders"`
}

// Heuristics is the configurable portion of the fallback extractor.
type Heuristics struct {
	Stopwords []string      `yaml:"stopwords"`
	Keywords  []KeywordRule `yaml:"keywords"`
}

// DefaultHeuristics returns the built-in keyword rules and stopword list.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		Stopwords: []string{
			"the", "a", "an", "in", "on", "at", "to", "from", "with", "and", "or", "for",
			"create", "delete", "start", "stop", "list", "get", "set", "update", "send",
			"upload", "download", "connect", "instance", "compute", "storage", "bucket",
		},
		Keywords: []KeywordRule{
			{Pattern: `(?:named?|called?)\s+["']?([^\s,"')]+)["']?`, Placeholders: []string{"name", "instance", "bucket", "topic", "queue"}},
			{Pattern: `(?:to|into)\s+["']?([^\s,"')]+)["']?`, Placeholders: []string{"destination", "target", "bucket", "topic"}},
			{Pattern: `(?:from)\s+["']?([^\s,"')]+)["']?`, Placeholders: []string{"source", "bucket", "file"}},
			{Pattern: `(?:in\s+)?zone\s+["']?([^\s,"')]+)["']?`, Placeholders: []string{"zone"}},
			{Pattern: `(?:in\s+)?region\s+["']?([^\s,"')]+)["']?`, Placeholders: []string{"region"}},
		},
	}
}

// LoadHeuristics reads a YAML heuristics configuration.
func LoadHeuristics(r io.Reader) (Heuristics, error) {
	var h Heuristics
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&h); err != nil {
		return Heuristics{}, fmt.Errorf("failed to parse heuristics config: %w", err)
	}
	return h, nil
}

// LoadHeuristicsFile reads a YAML heuristics configuration from a file path.
func LoadHeuristicsFile(path string) (Heuristics, error) {
	f, err := os.Open(path)
	if err != nil {
		return Heuristics{}, fmt.Errorf("failed to open heuristics config: %w", err)
	}
	defer f.Close()
	return LoadHeuristics(f)
}

// compiledRule pairs a compiled keyword pattern with its placeholder
// name fragments.
type compiledRule struct {
	re        *regexp.Regexp
	fragments []string
}

// Extractor applies structural and heuristic parameter extraction using a
// fixed heuristics configuration. Safe for concurrent use after creation.
type Extractor struct {
	stopwords map[string]struct{}
	rules     []compiledRule
}

// NewExtractor compiles the given heuristics into an Extractor. Rules
// whose pattern fails to compile are skipped with a warning rather than
// failing construction.
func NewExtractor(h Heuristics) *Extractor {
	e := &Extractor{stopwords: make(map[string]struct{}, len(h.Stopwords))}
	for _, w := range h.Stopwords {
		e.stopwords[strings.ToLower(w)] = struct{}{}
	}
	for _, rule := range h.Keywords {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			slog.Warn("skipping keyword rule with invalid pattern", "pattern", rule.Pattern, "error", err)
			continue
		}
		e.rules = append(e.rules, compiledRule{re: re, fragments: rule.Placeholders})
	}
	return e
}

// Extract recovers placeholder values from the user text, given the
// matched example sentence. The result may leave placeholders unfilled;
// that is expected and never an error.
func (e *Extractor) Extract(text, exampleText string) map[string]string {
	placeholders := Placeholders(exampleText)
	if len(placeholders) == 0 {
		return map[string]string{}
	}

	values := e.structural(text, exampleText, placeholders)
	if len(values) == 0 {
		values = e.byKeywords(text, placeholders)
	}
	return values
}

// structural builds a regex from the example sentence by escaping it
// literally and swapping each placeholder for a capture group, then
// searches the user text case-insensitively. A failed build or no match
// returns an empty map so the keyword path can take over.
func (e *Extractor) structural(text, exampleText string, placeholders []string) map[string]string {
	values := make(map[string]string)

	pattern := regexp.QuoteMeta(exampleText)
	for _, name := range placeholders {
		escaped := regexp.QuoteMeta("{{" + name + "}}")
		pattern = strings.ReplaceAll(pattern, escaped, captureGroup)
	}

	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		slog.Debug("structural pattern failed to compile", "example", exampleText, "error", err)
		return values
	}

	match := re.FindStringSubmatch(text)
	if match == nil {
		return values
	}

	for i, name := range placeholders {
		if i+1 >= len(match) {
			break
		}
		values[name] = stripQuotes(match[i+1])
	}
	return values
}

// byKeywords fills placeholders from keyword heuristics, then quoted
// substrings, then remaining non-stopword words. Each pass only touches
// placeholders that are still empty.
func (e *Extractor) byKeywords(text string, placeholders []string) map[string]string {
	values := make(map[string]string)
	lower := strings.ToLower(text)

	for _, rule := range e.rules {
		match := rule.re.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		value := match[1]
		for _, name := range placeholders {
			if !nameMatches(name, rule.fragments) {
				continue
			}
			if _, filled := values[name]; !filled {
				values[name] = value
				break
			}
		}
	}

	// quoted substrings fill remaining placeholders in declaration order
	var quoted []string
	for _, m := range quotedRegex.FindAllStringSubmatch(text, -1) {
		quoted = append(quoted, m[1])
	}
	fillRemaining(values, placeholders, quoted)

	// last resort: plain words that are not command verbs or generic nouns
	var words []string
	for _, m := range wordRegex.FindAllStringSubmatch(text, -1) {
		if _, stop := e.stopwords[strings.ToLower(m[1])]; !stop {
			words = append(words, m[1])
		}
	}
	fillRemaining(values, placeholders, words)

	return values
}

// fillRemaining assigns candidates to unfilled placeholders in order of
// appearance on both sides. Already-filled placeholders are never touched.
func fillRemaining(values map[string]string, placeholders, candidates []string) {
	i := 0
	for _, name := range placeholders {
		if i >= len(candidates) {
			return
		}
		if _, filled := values[name]; filled {
			continue
		}
		values[name] = candidates[i]
		i++
	}
}

// nameMatches reports whether the lowercased placeholder name contains any
// of the rule's name fragments.
func nameMatches(name string, fragments []string) bool {
	lower := strings.ToLower(name)
	for _, frag := range fragments {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}

// stripQuotes removes a single layer of matching surrounding quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
