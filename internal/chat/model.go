package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"

	"finassist/internal/config"
)

// Generation parameters fixed by the model contract.
const (
	modelTemperature    = float32(1.0)
	modelTopP           = float32(0.95)
	modelMaxOutputToken = 8192
)

// NewGeminiCompleter builds the production completion oracle: the Gemini
// API spoken through its OpenAI-compatible endpoint.
func NewGeminiCompleter(ctx context.Context, cfg *config.Config) (Completer, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	temperature := modelTemperature
	topP := modelTopP
	maxTokens := modelMaxOutputToken

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL:     cfg.GeminiBaseURL,
		APIKey:      cfg.GeminiAPIKey,
		Model:       cfg.GeminiModel,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
		TopP:        &topP,
	})
	if err != nil {
		return nil, fmt.Errorf("init chat model: %w", err)
	}
	return chatModel, nil
}
