// Package llm asks an OpenAI-compatible endpoint to produce a call
// expression for instructions the lexical matcher could not resolve.
//
// It is an optional fallback: the core matcher never depends on it, and
// a failed or disabled generator simply leaves the instruction unmatched.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sashabaranov/go-openai"
)

// Request parameters for call-expression generation.
const (
	requestTimeout  = 30 * time.Second
	maxPromptTokens = 2000
	maxReplyTokens  = 120
	temperature     = 0.1
)

const systemPrompt = `You translate one natural-language instruction into exactly one call expression.
Respond with the call expression only: a snake_case function name with named arguments, no explanation, no code fences.`

// Config holds the endpoint settings for the generator.
type Config struct {
	APIKey  string
	BaseURL string // optional, defaults to the OpenAI API
	Model   string
}

// Generator produces call expressions through a chat-completion endpoint.
type Generator struct {
	client   *openai.Client
	model    string
	encoding *tiktoken.Tiktoken
}

// NewGenerator creates a Generator from the given configuration. The API
// key is required; the token encoding is loaded eagerly so prompt
// budgeting never fails mid-request.
func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("llm generator requires an API key")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("llm generator requires a model name")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	encoding, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cl100k_base encoding: %w", err)
	}

	return &Generator{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		encoding: encoding,
	}, nil
}

// GenerateCall asks the model for a call expression matching the
// instruction. The prompt is rejected if it exceeds the token budget.
func (g *Generator) GenerateCall(ctx context.Context, instruction string) (string, error) {
	prompt := fmt.Sprintf("Instruction: %s", instruction)

	promptTokens := len(g.encoding.Encode(systemPrompt+prompt, nil, nil))
	if promptTokens > maxPromptTokens {
		return "", fmt.Errorf("instruction too long: %d prompt tokens exceeds budget of %d", promptTokens, maxPromptTokens)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		MaxTokens:   maxReplyTokens,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from llm")
	}

	code := CleanReply(resp.Choices[0].Message.Content)
	if code == "" {
		return "", fmt.Errorf("llm returned no usable code")
	}

	slog.Debug("llm call generated",
		"model", g.model,
		"prompt_tokens", promptTokens,
		"latency_ms", time.Since(start).Milliseconds())

	return code, nil
}

// CleanReply strips code fences and surrounding whitespace from a model
// reply, keeping only the first non-empty line.
func CleanReply(reply string) string {
	reply = strings.TrimSpace(reply)
	reply = strings.TrimPrefix(reply, "```python")
	reply = strings.TrimPrefix(reply, "```")
	reply = strings.TrimSuffix(reply, "```")

	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}
