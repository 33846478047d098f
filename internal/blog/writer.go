// Package blog turns a topic into a finished HTML blog post.
package blog

import (
	"context"
	"log"
	"time"

	"blog-agents/internal/llm"
	"blog-agents/internal/prompt"
	"blog-agents/internal/sanitize"
)

// Writer runs prompt building, generation and sanitizing for one topic.
type Writer struct {
	gen llm.Generator
}

func NewWriter(gen llm.Generator) *Writer {
	return &Writer{gen: gen}
}

// Write returns the sanitized HTML fragment for topic. Generator errors are
// returned as is; a reply that is empty once fences are stripped becomes a
// FailureNoContent *llm.GenerationError.
func (w *Writer) Write(ctx context.Context, topic string) (string, error) {
	start := time.Now()

	raw, err := w.gen.Generate(ctx, prompt.Build(topic))
	if err != nil {
		log.Printf("[Writer] Generation error after %s: %v", time.Since(start), err)
		return "", err
	}

	content := sanitize.StripFences(raw)
	if !sanitize.HasContent(content) {
		log.Printf("[Writer] Reply had no visible text (%d raw chars)", len(raw))
		return "", llm.NoContent()
	}

	log.Printf("[Writer] Generated %d chars, %d sections for topic of %d chars in %s",
		len(content), len(sanitize.Headings(content)), len(topic), time.Since(start))
	return content, nil
}
