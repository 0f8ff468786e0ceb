package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"

	"github.com/LorenzoMascia/nl2go/internal/interp"
	"github.com/LorenzoMascia/nl2go/internal/llm"
)

// Matching parameters for the interactive loop: a looser threshold and
// several candidates, since a human is picking the right one.
const (
	interactiveThreshold = 0.05
	interactiveTopK      = 3
	suggestionLimit      = 3
)

// runInteractive reads instructions line by line and prints the top
// matches for each. It returns when input is exhausted or ctx is done.
func runInteractive(ctx context.Context, in *interp.Interpreter, gen *llm.Generator, cfg Config, input io.Reader, out io.Writer) error {
	prompt := ""
	if f, ok := input.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		prompt = "> "
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "nl2go interactive mode; enter natural language commands (Ctrl+D to exit)")
	}

	scanner := bufio.NewScanner(input)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		if prompt != "" {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			break
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		results := in.Match(text, interactiveThreshold, interactiveTopK)
		if len(results) > 0 {
			printMatches(out, results)
			continue
		}

		fmt.Fprintln(out, "No matching methods found")
		if suggestions := in.Suggest(text, suggestionLimit); len(suggestions) > 0 {
			printSuggestions(out, suggestions)
		}

		if gen != nil {
			code, err := generateWithFallback(ctx, gen, text, cfg.Quiet)
			if err != nil {
				fmt.Fprintf(out, "LLM fallback failed: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "LLM fallback: %s\n", code)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// printMatches renders ranked candidates with their extracted parameters
// and generated code.
func printMatches(out io.Writer, results []interp.MatchResult) {
	fmt.Fprintf(out, "Top %d matches:\n", len(results))
	for i, result := range results {
		fmt.Fprintf(out, "\n%d. %s.%s\n", i+1, result.Module, result.Method)
		fmt.Fprintf(out, "   Score: %.2f\n", result.Score)
		fmt.Fprintf(out, "   Example: %s\n", result.MatchedExample)
		if len(result.Params) > 0 {
			fmt.Fprintf(out, "   Params: %s\n", formatParams(result.Params))
		}
		fmt.Fprintf(out, "   Code: %s\n", result.GeneratedCode)
	}
	fmt.Fprintln(out)
}

// printSuggestions lists loosely related methods for an unmatched query.
func printSuggestions(out io.Writer, suggestions []interp.Suggestion) {
	names := make([]string, len(suggestions))
	for i, s := range suggestions {
		names[i] = s.Module + "." + s.Method
	}
	fmt.Fprintf(out, "Did you mean: %s\n", strings.Join(names, ", "))
}

// formatParams renders extracted parameters deterministically, sorted by
// placeholder name.
func formatParams(values map[string]string) string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, len(names))
	for i, name := range names {
		pairs[i] = fmt.Sprintf("%s=%q", name, values[name])
	}
	return strings.Join(pairs, " ")
}
