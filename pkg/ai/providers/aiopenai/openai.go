// Package aiopenai implements the llm.LLM interface for OpenAI and any
// OpenAI-compatible endpoint (a base URL override reaches e.g. a local
// Ollama server).
package aiopenai

import (
	"context"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/quizforge/quizforge/pkg/ai/llm"
)

// OpenAIProvider implements the LLM interface for OpenAI-compatible backends.
type OpenAIProvider struct {
	client openai.Client
	apiKey string
}

// NewOpenAIProvider creates a new provider. baseURL is optional; when set the
// client talks to that OpenAI-compatible endpoint instead of api.openai.com.
func NewOpenAIProvider(apiKey, baseURL string) *OpenAIProvider {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAIProvider{
		client: openai.NewClient(opts...),
		apiKey: apiKey,
	}
}

func defaultChatOptions() *llm.ChatOptions {
	options := llm.DefaultOptions()
	options.Model = "gpt-4o-mini"
	return options
}

// Chat implements the LLM interface.
func (p *OpenAIProvider) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (llm.Response, error) {
	if len(messages) == 0 {
		return llm.Response{}, errorRegistry.New(ErrEmptyMessages)
	}

	options := defaultChatOptions()
	for _, opt := range opts {
		opt(options)
	}

	converted := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, msg := range messages {
		switch msg.Role {
		case llm.RoleSystem:
			converted = append(converted, openai.SystemMessage(msg.Content))
		case llm.RoleAssistant:
			converted = append(converted, openai.AssistantMessage(msg.Content))
		default:
			converted = append(converted, openai.UserMessage(msg.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Messages: converted,
		Model:    options.Model,
	}
	if options.Temperature != 0 {
		params.Temperature = openai.Float(float64(options.Temperature))
	}
	if options.TopP != 0 {
		params.TopP = openai.Float(float64(options.TopP))
	}
	if options.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(options.MaxTokens))
	}
	if len(options.Stop) > 0 {
		params.Stop = openai.ChatCompletionNewParamsStopUnion{
			OfStringArray: options.Stop,
		}
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return llm.Response{}, ParseOpenAIError(err).
			WithDetail("model", options.Model).
			WithDetail("num_messages", len(messages))
	}

	if len(completion.Choices) == 0 {
		return llm.Response{}, errorRegistry.New(ErrAPIResponse).
			WithDetail("reason", "no choices returned")
	}

	choice := completion.Choices[0]
	return llm.Response{
		Message:      llm.NewAssistantMessage(choice.Message.Content),
		FinishReason: string(choice.FinishReason),
		Usage: llm.Usage{
			PromptTokens:     int(completion.Usage.PromptTokens),
			CompletionTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:      int(completion.Usage.TotalTokens),
		},
	}, nil
}
