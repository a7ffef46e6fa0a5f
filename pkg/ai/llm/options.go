package llm

// ChatOptions holds per-call tuning for a chat request.
type ChatOptions struct {
	Model       string
	Temperature float32
	TopP        float32
	MaxTokens   int
	Stop        []string
	// JSONOutput asks the backend for a strict JSON response when the
	// backend supports constrained output; otherwise it is advisory.
	JSONOutput bool
}

// Option mutates ChatOptions.
type Option func(*ChatOptions)

// DefaultOptions returns the baseline chat options.
func DefaultOptions() *ChatOptions {
	return &ChatOptions{}
}

// WithModel selects the model.
func WithModel(model string) Option {
	return func(o *ChatOptions) { o.Model = model }
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float32) Option {
	return func(o *ChatOptions) { o.Temperature = t }
}

// WithTopP sets nucleus sampling.
func WithTopP(p float32) Option {
	return func(o *ChatOptions) { o.TopP = p }
}

// WithMaxTokens bounds the completion length.
func WithMaxTokens(n int) Option {
	return func(o *ChatOptions) { o.MaxTokens = n }
}

// WithStop sets stop sequences.
func WithStop(stop ...string) Option {
	return func(o *ChatOptions) { o.Stop = stop }
}

// WithJSONOutput requests strict JSON output.
func WithJSONOutput() Option {
	return func(o *ChatOptions) { o.JSONOutput = true }
}
