// Package aianthropic implements the llm.LLM interface for Anthropic Claude.
package aianthropic

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/quizforge/quizforge/pkg/ai/llm"
)

// AnthropicProvider implements the LLM interface for Anthropic Claude.
type AnthropicProvider struct {
	client anthropic.Client
	apiKey string
}

// NewAnthropicProvider creates a new Anthropic provider.
func NewAnthropicProvider(apiKey string) *AnthropicProvider {
	return &AnthropicProvider{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		apiKey: apiKey,
	}
}

func defaultChatOptions() *llm.ChatOptions {
	options := llm.DefaultOptions()
	options.Model = "claude-sonnet-4-20250514"
	return options
}

// Chat implements the LLM interface.
func (p *AnthropicProvider) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (llm.Response, error) {
	if p.apiKey == "" {
		return llm.Response{}, errorRegistry.New(ErrMissingAPIKey)
	}
	if len(messages) == 0 {
		return llm.Response{}, errorRegistry.New(ErrEmptyMessages)
	}

	options := defaultChatOptions()
	for _, opt := range opts {
		opt(options)
	}

	var systemBlocks []anthropic.TextBlockParam
	converted := make([]anthropic.MessageParam, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case llm.RoleSystem:
			systemBlocks = append(systemBlocks, anthropic.TextBlockParam{Text: msg.Content})
		case llm.RoleAssistant:
			converted = append(converted, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			converted = append(converted, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}

	maxTokens := int64(4096)
	if options.MaxTokens > 0 {
		maxTokens = int64(options.MaxTokens)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(options.Model),
		MaxTokens: maxTokens,
		Messages:  converted,
	}
	if len(systemBlocks) > 0 {
		params.System = systemBlocks
	}
	if options.Temperature != 0 {
		params.Temperature = anthropic.Float(float64(options.Temperature))
	}
	if options.TopP != 0 {
		params.TopP = anthropic.Float(float64(options.TopP))
	}
	if len(options.Stop) > 0 {
		params.StopSequences = options.Stop
	}

	message, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return llm.Response{}, ParseAnthropicError(err).
			WithDetail("model", options.Model).
			WithDetail("num_messages", len(messages))
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	return llm.Response{
		Message:      llm.NewAssistantMessage(sb.String()),
		FinishReason: string(message.StopReason),
		Usage: llm.Usage{
			PromptTokens:     int(message.Usage.InputTokens),
			CompletionTokens: int(message.Usage.OutputTokens),
			TotalTokens:      int(message.Usage.InputTokens + message.Usage.OutputTokens),
		},
	}, nil
}
