package services

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// GroqClient wraps the Groq chat model behind langchaingo's OpenAI driver
// (Groq exposes an OpenAI-compatible endpoint). Built once at startup and
// injected wherever a model is needed.
type GroqClient struct {
	Chat llms.Model
}

func NewGroqClient(apiKey, apiEndpoint, model string) (*GroqClient, error) {
	chat, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithBaseURL(apiEndpoint),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Groq client: %w", err)
	}

	return &GroqClient{
		Chat: chat,
	}, nil
}
