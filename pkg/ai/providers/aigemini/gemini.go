// Package aigemini implements the llm.LLM interface for Google Gemini.
package aigemini

import (
	"context"

	"google.golang.org/genai"

	"github.com/quizforge/quizforge/pkg/ai/llm"
	"github.com/quizforge/quizforge/pkg/ptrx"
)

// GeminiProvider implements the LLM interface for Google Gemini.
type GeminiProvider struct {
	client *genai.Client
	apiKey string
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, errorRegistry.New(ErrMissingAPIKey)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, WrapError(err, ErrAPIRequest).
			WithDetail("error", "failed to create Gemini client")
	}

	return &GeminiProvider{client: client, apiKey: apiKey}, nil
}

func defaultChatOptions() *llm.ChatOptions {
	options := llm.DefaultOptions()
	options.Model = "gemini-2.0-flash"
	return options
}

// Chat implements the LLM interface.
func (p *GeminiProvider) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (llm.Response, error) {
	if len(messages) == 0 {
		return llm.Response{}, errorRegistry.New(ErrEmptyMessages)
	}

	options := defaultChatOptions()
	for _, opt := range opts {
		opt(options)
	}

	systemText, contents := convertMessages(messages)

	config := &genai.GenerateContentConfig{}
	if systemText != "" {
		config.SystemInstruction = genai.NewContentFromText(systemText, genai.RoleUser)
	}
	if options.Temperature != 0 {
		config.Temperature = ptrx.Ptr(options.Temperature)
	}
	if options.TopP != 0 {
		config.TopP = ptrx.Ptr(options.TopP)
	}
	if options.MaxTokens > 0 {
		config.MaxOutputTokens = int32(options.MaxTokens)
	}
	if len(options.Stop) > 0 {
		config.StopSequences = options.Stop
	}
	if options.JSONOutput {
		config.ResponseMIMEType = "application/json"
	}

	result, err := p.client.Models.GenerateContent(ctx, options.Model, contents, config)
	if err != nil {
		return llm.Response{}, ParseGeminiError(err).
			WithDetail("model", options.Model).
			WithDetail("num_messages", len(messages))
	}

	resp := llm.Response{Message: llm.NewAssistantMessage(result.Text())}
	if result.UsageMetadata != nil {
		resp.Usage = llm.Usage{
			PromptTokens:     int(result.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(result.UsageMetadata.TotalTokenCount),
		}
	}
	return resp, nil
}

// convertMessages splits out system text and converts the rest to genai
// content. Gemini has no assistant role; it uses "model".
func convertMessages(messages []llm.Message) (string, []*genai.Content) {
	var systemText string
	contents := make([]*genai.Content, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case llm.RoleSystem:
			if systemText != "" {
				systemText += "\n"
			}
			systemText += msg.Content
		case llm.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(msg.Content, genai.RoleUser))
		}
	}
	return systemText, contents
}
