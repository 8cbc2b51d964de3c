package config

import (
	"fmt"
	"os"
)

type ChatConfig struct {
	ApiUrl string
	ApiKey string
	Model  string
}

func GetChatConfig() (*ChatConfig, error) {
	apiKey := os.Getenv("CHAT_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("CHAT_API_KEY must be set")
	}
	model := os.Getenv("CHAT_MODEL")
	if model == "" {
		model = "gpt-3.5-turbo"
	}
	return &ChatConfig{
		ApiUrl: os.Getenv("CHAT_API_URL"),
		ApiKey: apiKey,
		Model:  model,
	}, nil
}
