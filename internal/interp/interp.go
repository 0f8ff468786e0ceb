// Package interp orchestrates matching: it flattens catalog descriptors
// into a corpus of method entries, fits the TF-IDF index over their
// example texts, and exposes Match/Interpret operations that turn a
// natural-language instruction into a generated call expression.
//
// The interpreter is one-shot: LoadCatalogs builds the whole index, and
// every matching operation afterward only reads it. An interpreter that
// was never successfully loaded answers every query with an empty result,
// never an error.
package interp

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/kljensen/snowball"

	"github.com/LorenzoMascia/nl2go/internal/catalog"
	"github.com/LorenzoMascia/nl2go/internal/codegen"
	"github.com/LorenzoMascia/nl2go/internal/params"
	"github.com/LorenzoMascia/nl2go/internal/tfidf"
)

// Default matching parameters, shared with the batch front end.
const (
	DefaultThreshold = 0.1
	DefaultTopK      = 1
)

// MethodEntry is one matchable unit of the corpus: a (module, method)
// pair with one example sentence and its call template. Entries are
// created during LoadCatalogs and never mutated afterward.
type MethodEntry struct {
	Module      string
	Method      string
	Description string
	Parameters  map[string]string
	ExampleText string
	ExampleCode string
}

// MatchResult is the outcome of matching one instruction against the
// corpus. It is owned by the caller once returned.
type MatchResult struct {
	Module         string
	Method         string
	Score          float64
	MatchedExample string
	Params         map[string]string
	GeneratedCode  string
	OriginalText   string
}

// Suggestion is a loosely related method offered when nothing matched.
type Suggestion struct {
	Module string
	Method string
	Hits   int // number of overlapping stemmed keywords
}

// suggestEntry holds the stemmed keyword set for one method.
type suggestEntry struct {
	module string
	method string
	stems  map[string]struct{}
}

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithHeuristics replaces the default extraction heuristics.
func WithHeuristics(h params.Heuristics) Option {
	return func(in *Interpreter) {
		in.extractor = params.NewExtractor(h)
	}
}

// Interpreter owns the corpus and its derived TF-IDF artifacts.
type Interpreter struct {
	entries      []MethodEntry
	vectorizer   *tfidf.Vectorizer
	docVectors   []tfidf.Vector
	extractor    *params.Extractor
	suggestIndex []suggestEntry
	initialized  bool
}

// New creates an interpreter with no corpus loaded.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		extractor: params.NewExtractor(params.DefaultHeuristics()),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// LoadCatalogs flattens every (method, example) pair of the given
// descriptors into the corpus, adds one synthesized description-only
// entry per method, and fits the TF-IDF index. Invalid descriptors are
// skipped; an empty result leaves the interpreter uninitialized. Returns
// the number of entries loaded.
//
// Reloading replaces the corpus wholesale and must not race with
// in-flight Match calls; the interpreter does no locking of its own.
func (in *Interpreter) LoadCatalogs(descriptors []catalog.Descriptor) int {
	in.entries = nil
	in.suggestIndex = nil
	in.vectorizer = nil
	in.docVectors = nil
	in.initialized = false

	for _, desc := range descriptors {
		if err := desc.Validate(); err != nil {
			slog.Warn("skipping invalid catalog descriptor", "error", err)
			continue
		}

		for _, method := range desc.Methods {
			for _, example := range method.Examples {
				if example.Text == "" || example.Code == "" {
					continue
				}
				in.entries = append(in.entries, MethodEntry{
					Module:      desc.Name,
					Method:      method.Name,
					Description: method.Description,
					Parameters:  method.Parameters,
					ExampleText: example.Text,
					ExampleCode: example.Code,
				})
			}

			// the description itself is matchable, degrading to a
			// parameterless call; kept even for methods that require
			// parameters since downstream consumers rely on
			// description-only matches
			if method.Description != "" {
				in.entries = append(in.entries, MethodEntry{
					Module:      desc.Name,
					Method:      method.Name,
					Description: method.Description,
					Parameters:  method.Parameters,
					ExampleText: method.Description,
					ExampleCode: method.Name + "()",
				})
			}

			in.suggestIndex = append(in.suggestIndex, suggestEntry{
				module: desc.Name,
				method: method.Name,
				stems:  stemSet(append(tfidf.Tokenize(method.Name+" "+method.Description), desc.Keywords...)),
			})
		}
	}

	if len(in.entries) > 0 {
		texts := make([]string, len(in.entries))
		for i, entry := range in.entries {
			texts[i] = entry.ExampleText
		}
		in.vectorizer = tfidf.Fit(texts)
		in.docVectors = in.vectorizer.TransformAll()
		in.initialized = true
	}

	slog.Debug("loaded catalogs", "descriptors", len(descriptors), "entries", len(in.entries))
	return len(in.entries)
}

// Initialized reports whether a corpus has been loaded.
func (in *Interpreter) Initialized() bool {
	return in.initialized
}

// Entries returns the loaded corpus entries in fit order.
func (in *Interpreter) Entries() []MethodEntry {
	return in.entries
}

// Match scores the instruction against every corpus entry, keeps
// candidates at or above threshold, deduplicates by (module, method)
// keeping the highest-scoring example, and returns up to topK results
// with parameters extracted and code generated. A never-loaded
// interpreter returns nil.
func (in *Interpreter) Match(text string, threshold float64, topK int) []MatchResult {
	if !in.initialized || in.vectorizer == nil {
		return nil
	}

	query := in.vectorizer.Transform(text)
	ranked := tfidf.Rank(query, in.docVectors, threshold)

	// a method may appear several times in the corpus, so scan up to
	// 2·topK raw candidates before giving up
	limit := topK * 2
	if limit > len(ranked) {
		limit = len(ranked)
	}

	var results []MatchResult
	seen := make(map[string]struct{})

	for _, candidate := range ranked[:limit] {
		entry := in.entries[candidate.Index]

		key := entry.Module + "." + entry.Method
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		values := in.extractor.Extract(text, entry.ExampleText)
		code := codegen.Generate(entry.ExampleCode, values)

		results = append(results, MatchResult{
			Module:         entry.Module,
			Method:         entry.Method,
			Score:          candidate.Score,
			MatchedExample: entry.ExampleText,
			Params:         values,
			GeneratedCode:  code,
			OriginalText:   text,
		})

		if len(results) >= topK {
			break
		}
	}

	return results
}

// Interpret returns the single best match for the instruction at the
// default threshold, or nil when nothing matches.
func (in *Interpreter) Interpret(text string) *MatchResult {
	results := in.Match(text, DefaultThreshold, DefaultTopK)
	if len(results) == 0 {
		return nil
	}
	return &results[0]
}

// Suggest ranks methods by overlap between the stemmed tokens of the
// instruction and each method's stemmed keywords and description. It is
// a coarse aid for the interactive front end when Match comes up empty;
// it never influences Match results.
func (in *Interpreter) Suggest(text string, limit int) []Suggestion {
	if len(in.suggestIndex) == 0 || limit <= 0 {
		return nil
	}

	queryStems := stemSet(tfidf.Tokenize(text))
	if len(queryStems) == 0 {
		return nil
	}

	var suggestions []Suggestion
	for _, entry := range in.suggestIndex {
		hits := 0
		for stem := range queryStems {
			if _, ok := entry.stems[stem]; ok {
				hits++
			}
		}
		if hits > 0 {
			suggestions = append(suggestions, Suggestion{Module: entry.module, Method: entry.method, Hits: hits})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Hits > suggestions[j].Hits
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// stemSet stems every token with the English snowball stemmer, falling
// back to the raw token when stemming fails.
func stemSet(tokens []string) map[string]struct{} {
	stems := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		tok = strings.ToLower(tok)
		stemmed, err := snowball.Stem(tok, "english", true)
		if err != nil {
			stemmed = tok
		}
		stems[stemmed] = struct{}{}
	}
	return stems
}
