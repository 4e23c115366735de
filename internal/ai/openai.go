package ai

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/azure"
)

const azureAPIVersion = "2024-02-01"

// OpenAIGenerator is a TextGenerator backed by an Azure OpenAI deployment.
type OpenAIGenerator struct {
	client     openai.Client
	deployment string
}

var _ TextGenerator = (*OpenAIGenerator)(nil)

// NewOpenAIGenerator creates a generator for the given Azure OpenAI
// endpoint, key and deployment name.
func NewOpenAIGenerator(endpoint, apiKey, deployment string) *OpenAIGenerator {
	client := openai.NewClient(
		azure.WithEndpoint(endpoint, azureAPIVersion),
		azure.WithAPIKey(apiKey),
	)
	return &OpenAIGenerator{
		client:     client,
		deployment: deployment,
	}
}

// Complete sends a single-turn chat completion request and returns the
// trimmed assistant reply.
func (g *OpenAIGenerator) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(g.deployment),
		MaxTokens:   openai.Int(300),
		Temperature: openai.Float(0.7),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", &ServiceError{Provider: "openai", Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &ServiceError{Provider: "openai", Err: errors.New("completion returned no choices")}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
