// Package tfidf implements the TF-IDF weighting and cosine-similarity
// ranking used to match natural-language instructions against catalog
// example sentences.
//
// The package follows a fit/transform split: a Vectorizer is fitted once
// over the full corpus of example texts, producing an immutable vocabulary
// and smoothed inverse-document-frequency table. Queries are then
// transformed against that fixed vocabulary; terms never seen at fit time
// simply contribute nothing.
//
// Usage Example:
//
//	v := tfidf.Fit(documents)
//	docs := v.TransformAll()
//	query := v.Transform("create bucket mydata")
//	ranked := tfidf.Rank(query, docs, 0.1)
//
// Template placeholders ({{name}}) are collapsed to a single neutral
// marker during tokenization so arbitrary placeholder content does not
// pollute the vocabulary.
package tfidf

import (
	"log/slog"
	"math"
	"regexp"
	"sort"
	"strings"
)

var (
	// placeholderRegex matches {{name}} template markers (no nesting)
	placeholderRegex = regexp.MustCompile(`\{\{[^}]+\}\}`)
	// nonWordRegex matches characters that are neither word chars nor whitespace
	nonWordRegex = regexp.MustCompile(`[^\w\s]`)
)

// Vector is a sparse term → weight mapping. Absent terms have weight zero.
type Vector map[string]float64

// Tokenize breaks text into normalized lowercase tokens. Template
// placeholders are replaced with a neutral marker before splitting, and
// single-character remnants are dropped.
func Tokenize(text string) []string {
	text = placeholderRegex.ReplaceAllString(text, " PARAM ")
	text = nonWordRegex.ReplaceAllString(strings.ToLower(text), " ")

	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if len(tok) > 1 {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Vectorizer holds the vocabulary and IDF table fitted from a corpus.
// It is immutable after Fit and safe for concurrent reads.
type Vectorizer struct {
	vocabulary map[string]int     // term → stable index (sorted order)
	idf        map[string]float64 // smoothed inverse document frequency
	documents  [][]string         // tokenized fit-time documents, in order
}

// Fit builds a Vectorizer from the given documents. The vocabulary is the
// sorted set of all distinct tokens; IDF uses the smoothed formula
// ln((N+1)/(df+1))+1 so every vocabulary term keeps a positive weight.
func Fit(documents []string) *Vectorizer {
	v := &Vectorizer{
		vocabulary: make(map[string]int),
		idf:        make(map[string]float64),
		documents:  make([][]string, len(documents)),
	}

	docFreq := make(map[string]int)
	for i, doc := range documents {
		tokens := Tokenize(doc)
		v.documents[i] = tokens

		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			docFreq[tok]++
		}
	}

	// stable, sorted vocabulary indices aid testability
	terms := make([]string, 0, len(docFreq))
	for term := range docFreq {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	for idx, term := range terms {
		v.vocabulary[term] = idx
	}

	n := float64(len(documents))
	for term, df := range docFreq {
		v.idf[term] = math.Log((n+1)/(float64(df)+1)) + 1
	}

	slog.Debug("fitted TF-IDF vectorizer", "documents", len(documents), "vocabulary", len(v.vocabulary))
	return v
}

// VocabularySize returns the number of distinct terms seen at fit time.
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocabulary)
}

// IDF returns the fitted inverse document frequency for a term, or 0 if
// the term is not in the vocabulary.
func (v *Vectorizer) IDF(term string) float64 {
	return v.idf[term]
}

// Transform converts text into a sparse TF-IDF vector against the fitted
// vocabulary. Out-of-vocabulary terms are silently dropped; an empty or
// entirely unknown text yields an empty vector, never an error.
func (v *Vectorizer) Transform(text string) Vector {
	return v.weigh(Tokenize(text))
}

// TransformAll vectorizes every fit-time document, reusing the tokens
// captured during Fit. The result is positionally aligned with the
// document order passed to Fit.
func (v *Vectorizer) TransformAll() []Vector {
	vectors := make([]Vector, len(v.documents))
	for i, tokens := range v.documents {
		vectors[i] = v.weigh(tokens)
	}
	return vectors
}

// weigh applies augmented term frequency weighting, 0.5 + 0.5·count/maxTF,
// scaled by IDF. The augmentation dampens highly repeated terms without
// collapsing single-occurrence terms to zero.
func (v *Vectorizer) weigh(tokens []string) Vector {
	vec := make(Vector)
	if len(tokens) == 0 {
		return vec
	}

	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}

	maxTF := 1
	for _, count := range counts {
		if count > maxTF {
			maxTF = count
		}
	}

	for tok, count := range counts {
		if _, known := v.vocabulary[tok]; !known {
			continue
		}
		tfNorm := 0.5 + 0.5*float64(count)/float64(maxTF)
		vec[tok] = tfNorm * v.idf[tok]
	}
	return vec
}

// CosineSimilarity computes the cosine of the angle between two sparse
// vectors. The dot product runs over the key intersection; the norms run
// over all entries of each vector. Empty or zero-norm vectors score 0.
func CosineSimilarity(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var dot float64
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	if dot == 0 {
		return 0
	}

	magA := magnitude(a)
	magB := magnitude(b)
	if magA == 0 || magB == 0 {
		return 0
	}

	return dot / (magA * magB)
}

// magnitude returns the Euclidean norm over all entries of a vector.
func magnitude(v Vector) float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// DocScore pairs a corpus document index with its similarity score.
type DocScore struct {
	Index int     // position in the fitted document order
	Score float64 // cosine similarity in [0, 1]
}

// Rank scores the query against every document vector, keeps scores at or
// above threshold, and sorts descending. The sort is stable so equal
// scores preserve corpus order.
func Rank(query Vector, docs []Vector, threshold float64) []DocScore {
	var ranked []DocScore
	for i, doc := range docs {
		score := CosineSimilarity(query, doc)
		if score >= threshold {
			ranked = append(ranked, DocScore{Index: i, Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	slog.Debug("ranked documents", "candidates", len(ranked), "threshold", threshold)
	return ranked
}
