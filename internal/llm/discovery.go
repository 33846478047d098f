package llm

import (
	"context"
	"fmt"
	"strings"
)

// ListModels enumerates every model visible to the API key, following
// pagination until the provider reports no more pages.
func (c *GeminiClient) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var models []ModelInfo
	for m, err := range c.client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
		models = append(models, ModelInfo{
			Name:             m.Name,
			DisplayName:      m.DisplayName,
			SupportedActions: m.SupportedActions,
		})
	}
	return models, nil
}

// FilterModels keeps the models whose name contains substr (case-insensitive).
// An empty substr keeps everything.
func FilterModels(models []ModelInfo, substr string) []ModelInfo {
	if substr == "" {
		return models
	}
	substr = strings.ToLower(substr)
	var out []ModelInfo
	for _, m := range models {
		if strings.Contains(strings.ToLower(m.Name), substr) {
			out = append(out, m)
		}
	}
	return out
}

// SupportsGeneration reports whether the model can serve generateContent.
func (m ModelInfo) SupportsGeneration() bool {
	for _, a := range m.SupportedActions {
		if a == "generateContent" {
			return true
		}
	}
	return false
}
