package llm

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// Finish reasons that mean the candidate was withheld rather than finished.
var blockedFinishReasons = map[genai.FinishReason]bool{
	genai.FinishReasonSafety:            true,
	genai.FinishReasonRecitation:        true,
	genai.FinishReasonBlocklist:         true,
	genai.FinishReasonProhibitedContent: true,
	genai.FinishReasonSPII:              true,
}

// GeminiClient implements Generator on the Gemini generateContent API.
type GeminiClient struct {
	client *genai.Client
	model  string
	genCfg *genai.GenerateContentConfig
}

// NewGeminiClient builds a client for settings. A nil httpClient uses the
// SDK default transport.
func NewGeminiClient(ctx context.Context, settings Settings, httpClient *http.Client) (*GeminiClient, error) {
	cc := &genai.ClientConfig{
		APIKey:     settings.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if settings.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: settings.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClient{
		client: client,
		model:  settings.Model,
		genCfg: generateConfig(settings),
	}, nil
}

func generateConfig(s Settings) *genai.GenerateContentConfig {
	safety := make([]*genai.SafetySetting, 0, len(s.Safety))
	for _, ss := range s.Safety {
		safety = append(safety, &genai.SafetySetting{
			Category:  genai.HarmCategory(ss.Category),
			Threshold: genai.HarmBlockThreshold(ss.Threshold),
		})
	}
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(s.Temperature),
		TopP:            genai.Ptr(s.TopP),
		TopK:            genai.Ptr(s.TopK),
		MaxOutputTokens: s.MaxOutputTokens,
		SafetySettings:  safety,
	}
}

// Model returns the model name requests are sent to.
func (c *GeminiClient) Model() string { return c.model }

// Generate sends prompt as a single user turn. Failures are always
// *GenerationError.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), c.genCfg)
	if err != nil {
		log.Printf("[Gemini] Request to %s failed: %v", c.model, err)
		return "", requestFailed(err)
	}
	return responseText(resp)
}

// responseText reads the first candidate. Truncated output (MAX_TOKENS)
// still counts as text.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", NoContent()
	}
	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" && fb.BlockReason != genai.BlockedReasonUnspecified {
		return "", blocked(string(fb.BlockReason))
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", NoContent()
	}

	cand := resp.Candidates[0]
	var b strings.Builder
	if cand.Content != nil {
		for _, part := range cand.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			b.WriteString(part.Text)
		}
	}
	text := b.String()

	if text == "" {
		if blockedFinishReasons[cand.FinishReason] {
			return "", blocked(string(cand.FinishReason))
		}
		return "", NoContent()
	}
	if cand.FinishReason == genai.FinishReasonMaxTokens {
		log.Printf("[Gemini] Output truncated at max_output_tokens (%d chars)", len(text))
	}
	return text, nil
}
