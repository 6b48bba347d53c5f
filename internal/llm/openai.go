// Package llm is the boundary to the remote generative text service used as
// a fallback when the knowledge base has no entry for a disease.
package llm

// #region imports
import (
	"context"
	"errors"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// #endregion

// #region client-interface

// Client generates free-text guidance. Implementations perform network calls;
// callers needing timeouts must bound the context themselves.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// #endregion client-interface

// #region openai-client

// OpenAIClient calls the OpenAI chat completion API.
// The API key and model name come from the environment.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient constructs an OpenAI-backed client. It reads
// OPENAI_API_KEY and OPENAI_MODEL, defaulting the model when unset.
func NewOpenAIClient() *OpenAIClient {
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIClient{
		client: openai.NewClient(os.Getenv("OPENAI_API_KEY")),
		model:  model,
	}
}

const systemPrompt = "You are a careful health-information assistant. Provide general lifestyle, diet, medical, and prevention guidance for the named condition. Do not prescribe medication. Keep it concise and remind the reader to consult a healthcare professional."

// Generate asks the model for guidance text.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

// #endregion openai-client
