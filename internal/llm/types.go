package llm

import (
	"context"

	"blog-agents/internal/config"
)

// Generator turns a prompt into raw model text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// HarmCategories are the content-safety categories configured on every request.
var HarmCategories = []string{
	"HARM_CATEGORY_HARASSMENT",
	"HARM_CATEGORY_HATE_SPEECH",
	"HARM_CATEGORY_SEXUALLY_EXPLICIT",
	"HARM_CATEGORY_DANGEROUS_CONTENT",
}

// SafetySetting is one category/threshold pair.
type SafetySetting struct {
	Category  string
	Threshold string
}

// Settings is the read-only client configuration, fixed at construction.
type Settings struct {
	APIKey  string
	BaseURL string
	Model   string

	Temperature     float32
	TopP            float32
	TopK            float32
	MaxOutputTokens int32

	Safety []SafetySetting
}

// NewSettings derives client settings from the loaded config. Every harm
// category gets the configured threshold.
func NewSettings(g config.GeminiConfig) Settings {
	safety := make([]SafetySetting, len(HarmCategories))
	for i, c := range HarmCategories {
		safety[i] = SafetySetting{Category: c, Threshold: g.SafetyThreshold}
	}
	return Settings{
		APIKey:          g.APIKey,
		BaseURL:         g.BaseURL,
		Model:           g.Model,
		Temperature:     g.Temperature,
		TopP:            g.TopP,
		TopK:            g.TopK,
		MaxOutputTokens: g.MaxOutputTokens,
		Safety:          safety,
	}
}

// ModelInfo describes a model the provider exposes.
type ModelInfo struct {
	Name             string   `json:"name"`
	DisplayName      string   `json:"display_name"`
	SupportedActions []string `json:"supported_actions"`
}
