package llm

import (
	"context"
	"errors"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const systemPrompt = "You are an expert in climate science and data analysis. Respond with strict JSON only: an object mapping each scenario name to an array of yearly warming values in degrees above pre-industrial levels."

// Caller abstracts the text-generation collaborator so strategies and tests
// can swap in fakes.
type Caller interface {
	GenerateScenarios(ctx context.Context, prompt string) (string, error)
}

// AnthropicCaller sends scenario prompts to the Anthropic Messages API.
type AnthropicCaller struct {
	messages Messager
}

// Messager is the slice of the Anthropic client the caller needs.
type Messager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// NewAnthropicCaller builds a caller for the given API key. The key arrives
// with each dashboard request; nothing is read from server-side state.
func NewAnthropicCaller(apiKey string) (*AnthropicCaller, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("anthropic API key is required for the model strategy")
	}
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicCaller{messages: &c.Messages}, nil
}

// NewAnthropicCallerFromEnv reads ANTHROPIC_API_KEY; used by the CLI.
func NewAnthropicCallerFromEnv() (*AnthropicCaller, error) {
	key := os.Getenv("ANTHROPIC_API_KEY")
	if strings.TrimSpace(key) == "" {
		return nil, errors.New("ANTHROPIC_API_KEY not configured")
	}
	return NewAnthropicCaller(key)
}

func (a *AnthropicCaller) GenerateScenarios(ctx context.Context, prompt string) (string, error) {
	resp, err := a.messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.ModelClaudeSonnet4_20250514,
		MaxTokens:   8192,
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
		Temperature: anthropic.Float(0),
	})
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, b := range resp.Content {
		if b.Type == "text" {
			sb.WriteString(b.Text)
		}
	}
	return sb.String(), nil
}
