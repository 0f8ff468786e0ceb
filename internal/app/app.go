// Package app contains the core application logic for the nl2go CLI
// tool: it wires catalogs, heuristics, and the optional LLM fallback into
// an interpreter, then drives either batch script generation or the
// interactive loop.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/LorenzoMascia/nl2go/internal/catalog"
	"github.com/LorenzoMascia/nl2go/internal/interp"
	"github.com/LorenzoMascia/nl2go/internal/llm"
	"github.com/LorenzoMascia/nl2go/internal/params"
)

// Config holds all configuration options for the nl2go application.
type Config struct {
	Sources        []string // file paths, or "-" for stdin
	Threshold      float64  // minimum similarity score for a match
	TopK           int      // distinct methods to return per instruction
	Comments       bool     // annotate generated script with source comments
	Sentences      bool     // split multi-sentence input with prose
	Interactive    bool     // run the interactive loop instead of batch mode
	CatalogDir     string   // extra YAML catalog directory
	HeuristicsFile string   // YAML heuristics override
	UseLLM         bool     // enable the LLM fallback for unmatched lines
	LLMModel       string
	LLMBaseURL     string
	LLMAPIKey      string
	Quiet          bool // suppress info messages
	Debug          bool
}

// Run executes the main nl2go application logic with the given
// configuration. In batch mode it returns the generated script; in
// interactive mode it drives stdin/stdout directly and returns "".
func Run(ctx context.Context, cfg Config) (string, error) {
	in, err := buildInterpreter(cfg)
	if err != nil {
		return "", err
	}

	var gen *llm.Generator
	if cfg.UseLLM {
		gen, err = llm.NewGenerator(llm.Config{
			APIKey:  cfg.LLMAPIKey,
			BaseURL: cfg.LLMBaseURL,
			Model:   cfg.LLMModel,
		})
		if err != nil {
			return "", fmt.Errorf("llm fallback unavailable: %w", err)
		}
	}

	if cfg.Interactive {
		return "", runInteractive(ctx, in, gen, cfg, os.Stdin, os.Stdout)
	}

	instructions, err := collectInstructions(cfg.Sources, cfg.Sentences)
	if err != nil {
		return "", err
	}

	return GenerateScript(ctx, in, gen, instructions, cfg), nil
}

// buildInterpreter loads heuristics and catalogs into a fresh interpreter.
func buildInterpreter(cfg Config) (*interp.Interpreter, error) {
	heuristics := params.DefaultHeuristics()
	if cfg.HeuristicsFile != "" {
		loaded, err := params.LoadHeuristicsFile(cfg.HeuristicsFile)
		if err != nil {
			return nil, err
		}
		heuristics = loaded
	}

	descriptors := catalog.Builtin()
	if cfg.CatalogDir != "" {
		extra, err := catalog.LoadDir(cfg.CatalogDir)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, extra...)
	}

	in := interp.New(interp.WithHeuristics(heuristics))
	count := in.LoadCatalogs(descriptors)

	if !cfg.Quiet {
		fmt.Fprintf(os.Stderr, "Loaded %d method examples from %d catalogs\n", count, len(descriptors))
	}
	return in, nil
}

// collectInstructions reads every source in order and splits the combined
// content into individual instructions, optionally breaking lines into
// sentences.
func collectInstructions(sources []string, sentences bool) ([]string, error) {
	var instructions []string

	for _, source := range sources {
		content, err := readSource(source)
		if err != nil {
			return nil, err
		}

		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimRight(line, "\r")
			trimmed := strings.TrimSpace(line)

			// comments and blank lines pass through untouched
			if !sentences || trimmed == "" || strings.HasPrefix(trimmed, "#") {
				instructions = append(instructions, line)
				continue
			}
			instructions = append(instructions, splitSentences(trimmed)...)
		}
	}

	return instructions, nil
}

// readSource returns the content of a file path, or stdin for "-".
func readSource(source string) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("failed to read source %s: %w", source, err)
	}
	return string(data), nil
}

// splitSentences breaks text into individual sentences. Segmentation
// failures fall back to the whole text as one instruction.
func splitSentences(text string) []string {
	doc, err := prose.NewDocument(text, prose.WithTagging(false), prose.WithExtraction(false))
	if err != nil {
		return []string{text}
	}

	var out []string
	for _, sentence := range doc.Sentences() {
		if t := strings.TrimSpace(sentence.Text); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return []string{text}
	}
	return out
}
