package recipe

import (
	"EcoPanier/domain"
	"EcoPanier/internal/metrics"
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const DefaultOpenAIModel = "gpt-4o-mini"

type openAIGenerator struct {
	client *openai.Client
	apiKey string
	model  string
}

// NewOpenAIGenerator talks to any OpenAI-compatible chat completion endpoint.
func NewOpenAIGenerator(apiKey, apiBase, model string) Generator {
	config := openai.DefaultConfig(apiKey)
	if apiBase != "" {
		config.BaseURL = apiBase
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &openAIGenerator{
		client: openai.NewClientWithConfig(config),
		apiKey: apiKey,
		model:  model,
	}
}

func (g *openAIGenerator) GenerateRecipe(ctx context.Context, items []domain.InventoryItem) (domain.GeneratedRecipe, error) {
	if g.apiKey == "" {
		return domain.GeneratedRecipe{}, domain.ErrAIKeyMissing
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a cooking expert who helps households cook what they already have before it spoils.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(items),
			},
		},
		Temperature: 0.7,
	})
	if err == nil && len(resp.Choices) == 0 {
		err = fmt.Errorf("no response from OpenAI API")
	}
	metrics.ObserveExternal(metrics.ServiceOpenAI, err)
	if err != nil {
		return domain.GeneratedRecipe{}, domain.ExternalError(metrics.ServiceOpenAI, err)
	}

	return parseGeneratedRecipe(resp.Choices[0].Message.Content)
}
