package ai

import (
	"context"
	"fmt"
	"log"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"

	"mvp_launchpad/internal/ai/prompts"
	"mvp_launchpad/internal/utils"
)

// completeJSON sends one prompt constrained to schema and decodes the reply into out.
func (g *Generator) completeJSON(ctx context.Context, schemaName, prompt string, schema jsonschema.Definition, temperature float32, out any) error {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompts.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   schemaName,
				Schema: &schema,
				Strict: true,
			},
		},
		Temperature: temperature,
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("OpenAI usage for failed %s request: %+v", schemaName, resp.Usage)
		return ErrEmptyResponse
	}

	cleanedOutput := utils.CleanJSONOutput(resp.Choices[0].Message.Content)
	if err := jsonschema.VerifySchemaAndUnmarshal(relaxEnums(schema), []byte(cleanedOutput), out); err != nil {
		log.Printf("Failed to parse LLM JSON output for %s. Cleaned output: %s", schemaName, cleanedOutput)
		return fmt.Errorf("response does not match %s schema: %w", schemaName, err)
	}
	return nil
}
