package adapters

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"podcast-generation-service/application/ports/outbound"
	"podcast-generation-service/config"
)

type openaiChatCompleter struct {
	client *openai.Client
	model  string
	logger outbound.LoggerPort
}

func NewOpenAIChatCompleter(chatConfig *config.ChatConfig, logger outbound.LoggerPort) outbound.ChatCompleterPort {
	clientConfig := openai.DefaultConfig(chatConfig.ApiKey)
	if chatConfig.ApiUrl != "" {
		clientConfig.BaseURL = chatConfig.ApiUrl
	}
	return &openaiChatCompleter{
		client: openai.NewClientWithConfig(clientConfig),
		model:  chatConfig.Model,
		logger: logger,
	}
}

func (c *openaiChatCompleter) Complete(ctx context.Context, params outbound.ChatCompletionParams) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if params.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: params.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: params.Prompt,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
	})
	if err != nil {
		c.logger.ErrorWithFields(err, "Chat completion request failed", map[string]interface{}{
			"model": c.model,
		})
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
