package ai

import (
	"context"
	"errors"
	"log"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gpt-4o-mini"

	planTemperature        float32 = 0.7 // mostly deterministic structure, some variety
	landingPageTemperature float32 = 0.8 // more creative copy
)

// ChatClient is the slice of *openai.Client the generator needs.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator issues the two schema-constrained prompts. It holds no state
// between calls and never retries.
type Generator struct {
	client ChatClient
	model  string
}

// NewGenerator builds a Generator on the OpenAI API. baseURL may point at any
// OpenAI-compatible endpoint; empty keeps the default.
func NewGenerator(apiKey, baseURL, model string) (*Generator, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key missing; set OPENAI_API_KEY")
	}
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
		log.Printf("Info: Using OpenAI-compatible endpoint %s", baseURL)
	}
	return NewGeneratorWithClient(openai.NewClientWithConfig(config), model), nil
}

// NewGeneratorWithClient wraps an existing chat client.
func NewGeneratorWithClient(client ChatClient, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}
