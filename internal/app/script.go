package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/LorenzoMascia/nl2go/internal/interp"
	"github.com/LorenzoMascia/nl2go/internal/llm"
	"github.com/LorenzoMascia/nl2go/internal/spinner"
)

// GenerateScript turns a list of instructions into a script of call
// expressions. Blank lines and comment lines pass through; unmatched
// instructions become a warning stanza, or are handed to the LLM fallback
// when one is configured. The output never contains a dangling
// placeholder, only complete call expressions and comments.
func GenerateScript(ctx context.Context, in *interp.Interpreter, gen *llm.Generator, instructions []string, cfg Config) string {
	var b strings.Builder

	b.WriteString("# Generated by nl2go\n")
	b.WriteString(fmt.Sprintf("# %d input lines\n\n", len(instructions)))

	for i, instruction := range instructions {
		lineNum := i + 1
		trimmed := strings.TrimSpace(instruction)

		if trimmed == "" {
			b.WriteString("\n")
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			b.WriteString(trimmed + "\n")
			continue
		}

		topK := cfg.TopK
		if topK < 1 {
			topK = interp.DefaultTopK
		}

		results := in.Match(trimmed, cfg.Threshold, topK)
		if len(results) > 0 {
			result := results[0]
			if cfg.Comments {
				b.WriteString(fmt.Sprintf("# Line %d: %s\n", lineNum, trimmed))
				b.WriteString(fmt.Sprintf("# Matched: %s (score: %.2f)\n", result.MatchedExample, result.Score))
				for _, alt := range results[1:] {
					b.WriteString(fmt.Sprintf("# Alternative: %s (score: %.2f)\n", alt.GeneratedCode, alt.Score))
				}
			}
			b.WriteString(result.GeneratedCode + "\n\n")
			continue
		}

		if gen != nil {
			code, err := generateWithFallback(ctx, gen, trimmed, cfg.Quiet)
			if err == nil {
				if cfg.Comments {
					b.WriteString(fmt.Sprintf("# Line %d: %s\n", lineNum, trimmed))
					b.WriteString("# Generated by LLM fallback\n")
				}
				b.WriteString(code + "\n\n")
				continue
			}
			if !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "Warning: llm fallback failed for line %d: %v\n", lineNum, err)
			}
		}

		b.WriteString(fmt.Sprintf("# Line %d: %s\n", lineNum, trimmed))
		b.WriteString("# WARNING: no matching method found\n\n")
	}

	return b.String()
}

// generateWithFallback runs one LLM request with a spinner on stderr.
func generateWithFallback(ctx context.Context, gen *llm.Generator, instruction string, quiet bool) (string, error) {
	if !quiet {
		sp := spinner.New(os.Stderr, "Generating with LLM...")
		sp.Start()
		defer sp.Stop()
	}
	return gen.GenerateCall(ctx, instruction)
}

// ProcessLines interprets each line independently and returns one result
// per line; blank lines, comments, and unmatched lines yield nil.
func ProcessLines(in *interp.Interpreter, lines []string, threshold float64) []*interp.MatchResult {
	results := make([]*interp.MatchResult, len(lines))

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		matches := in.Match(line, threshold, interp.DefaultTopK)
		if len(matches) > 0 {
			results[i] = &matches[0]
		}
	}

	return results
}
