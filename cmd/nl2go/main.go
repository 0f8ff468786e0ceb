package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/LorenzoMascia/nl2go/internal/app"

	"github.com/spf13/cobra"
)

// buildConfig constructs an app.Config from command flags and arguments
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	threshold, _ := cmd.Flags().GetFloat64("threshold")
	topK, _ := cmd.Flags().GetInt("top-k")
	noComments, _ := cmd.Flags().GetBool("no-comments")
	sentences, _ := cmd.Flags().GetBool("sentences")
	interactive, _ := cmd.Flags().GetBool("interactive")
	catalogDir, _ := cmd.Flags().GetString("catalog")
	heuristicsFile, _ := cmd.Flags().GetString("heuristics")
	useLLM, _ := cmd.Flags().GetBool("llm")
	llmModel, _ := cmd.Flags().GetString("llm-model")
	llmBaseURL, _ := cmd.Flags().GetString("llm-base-url")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")

	if threshold < 0 || threshold > 1 {
		return app.Config{}, fmt.Errorf("threshold must be between 0 and 1, got %g", threshold)
	}
	if topK < 1 {
		return app.Config{}, fmt.Errorf("top-k must be at least 1, got %d", topK)
	}

	// use positional arguments as sources; default to stdin
	sources := args
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	return app.Config{
		Sources:        sources,
		Threshold:      threshold,
		TopK:           topK,
		Comments:       !noComments,
		Sentences:      sentences,
		Interactive:    interactive,
		CatalogDir:     catalogDir,
		HeuristicsFile: heuristicsFile,
		UseLLM:         useLLM,
		LLMModel:       llmModel,
		LLMBaseURL:     llmBaseURL,
		LLMAPIKey:      os.Getenv("OPENAI_API_KEY"),
		Quiet:          quiet,
		Debug:          debug,
	}, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "nl2go [sources...]",
	Short: "A CLI tool that maps natural language instructions to call expressions",
	Long: `nl2go matches free-form instructions against a catalog of known operations,
extracts parameter values, and emits ready-to-run call expressions.

Examples:
  nl2go commands.txt
  echo "create bucket my-data" | nl2go
  nl2go --interactive`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := buildConfig(cmd, args)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		setupLogger(config.Debug)

		// create context with signal handling for graceful shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		result, err := app.Run(ctx, config)
		if err != nil {
			return fmt.Errorf("nl2go failed: %w", err)
		}

		fmt.Print(result)
		return nil
	},
}

func init() {
	// matching flags
	rootCmd.Flags().Float64P("threshold", "t", 0.1, "Minimum similarity score for a match (0-1)")
	rootCmd.Flags().IntP("top-k", "k", 1, "Number of distinct methods to consider per instruction")

	// input handling
	rootCmd.Flags().Bool("sentences", false, "Split multi-sentence lines into individual instructions")
	rootCmd.Flags().BoolP("interactive", "i", false, "Run an interactive matching loop")

	// catalog and heuristics configuration
	rootCmd.Flags().String("catalog", "", "Directory of extra YAML catalog files")
	rootCmd.Flags().String("heuristics", "", "YAML file overriding extraction heuristics")

	// LLM fallback for unmatched instructions (API key from OPENAI_API_KEY)
	rootCmd.Flags().Bool("llm", false, "Enable LLM fallback for unmatched instructions")
	rootCmd.Flags().String("llm-model", "gpt-4o-mini", "Model name for the LLM fallback")
	rootCmd.Flags().String("llm-base-url", "", "Base URL for an OpenAI-compatible endpoint")

	// output flags
	rootCmd.Flags().Bool("no-comments", false, "Omit source and match comments from the generated script")
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress info messages")
	rootCmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.Flags().MarkHidden("debug")

	// interactive mode drives stdout itself; script flags don't apply
	rootCmd.MarkFlagsMutuallyExclusive("interactive", "no-comments")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
