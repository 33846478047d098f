// Command listmodels prints the Gemini models visible to an API key and
// the generation methods each one supports.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"blog-agents/internal/config"
	"blog-agents/internal/llm"
)

type CLI struct {
	APIKey  string `name:"api-key" help:"Gemini API key." env:"GOOGLE_API_KEY" required:""`
	Filter  string `help:"Only list models whose name contains this text."`
	BaseURL string `name:"base-url" help:"Override the Generative Language API endpoint."`
}

type modelLister interface {
	ListModels(ctx context.Context) ([]llm.ModelInfo, error)
}

func main() {
	// The key may live in .env, load it before kong resolves env defaults.
	if err := config.LoadEnvFile(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
	}

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("listmodels"),
		kong.Description("List available Gemini models and their supported generation methods."),
	)

	ctx := context.Background()
	client, err := llm.NewGeminiClient(ctx, llm.Settings{APIKey: cli.APIKey, BaseURL: cli.BaseURL}, nil)
	kctx.FatalIfErrorf(err)

	kctx.FatalIfErrorf(run(ctx, os.Stdout, client, cli))
}

func run(ctx context.Context, out io.Writer, lister modelLister, cli CLI) error {
	fmt.Fprintf(out, "API Key configured: %s\n", config.MaskKey(cli.APIKey))

	models, err := lister.ListModels(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nListing available models:")
	for _, m := range llm.FilterModels(models, cli.Filter) {
		fmt.Fprintf(out, "- %s\n", m.Name)
		fmt.Fprintf(out, "  Supported generation methods: %v\n", m.SupportedActions)
	}
	return nil
}
