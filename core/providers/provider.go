// Package providers wraps the remote text-completion capabilities behind a
// single adapter interface. The generator only ever issues one non-streaming
// completion per request.
package providers

import (
	"context"
	"fmt"
)

// Provider is a remote completion backend.
type Provider interface {
	// Name returns the provider identifier.
	Name() string

	// Complete sends one prompt and returns the first completion's text
	// verbatim. Remote errors propagate to the caller; there is no local
	// retry.
	Complete(ctx context.Context, req *Request) (*Response, error)
}

// Request is a single completion request.
type Request struct {
	SystemPrompt string  `json:"system_prompt,omitempty"`
	Prompt       string  `json:"prompt"`
	Model        string  `json:"model,omitempty"`
	Temperature  float64 `json:"temperature,omitempty"`
	MaxTokens    int     `json:"max_tokens,omitempty"`
}

// Response is the completion result.
type Response struct {
	Content string `json:"content"`
	Model   string `json:"model"`
	Usage   Usage  `json:"usage"`
}

// Usage reports token accounting for one request.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// ProviderType identifies the provider.
type ProviderType string

const (
	ProviderTypeOpenAI    ProviderType = "openai"
	ProviderTypeAnthropic ProviderType = "anthropic"
)

// New constructs the provider named by providerType. An empty type selects
// OpenAI, which also covers any OpenAI-compatible completion endpoint via
// BaseURL.
func New(providerType ProviderType, openaiCfg OpenAIConfig, anthropicCfg AnthropicConfig) (Provider, error) {
	switch providerType {
	case ProviderTypeOpenAI, "":
		return NewOpenAIProvider(openaiCfg)
	case ProviderTypeAnthropic:
		return NewAnthropicProvider(anthropicCfg)
	default:
		return nil, fmt.Errorf("unknown provider %q", providerType)
	}
}
