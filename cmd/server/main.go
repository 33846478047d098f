package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blog-agents/internal/api"
	"blog-agents/internal/blog"
	"blog-agents/internal/config"
	"blog-agents/internal/llm"
)

func main() {
	configPath := flag.String("config", "config.json", "path to config.json (optional)")
	envFile := flag.String("env-file", ".env", "dotenv file loaded before reading the environment")
	flag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	path := *configPath
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Printf("[Main] No config file at %s, using defaults and environment", path)
		path = ""
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	log.Printf("[Main] API Key configured: %s", cfg.MaskedAPIKey())

	client, err := llm.NewGeminiClient(context.Background(), llm.NewSettings(cfg.Gemini), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Gemini init error: %v\n", err)
		os.Exit(1)
	}
	log.Printf("[Main] ✓ Gemini model %s initialized", client.Model())

	r := api.SetupRouter(cfg, blog.NewWriter(client))
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		fmt.Printf("Starting server on %s%s\n", addr, cfg.Server.Subpath)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	}()

	<-done
	log.Printf("[Main] Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Shutdown error: %v\n", err)
		os.Exit(1)
	}
	log.Printf("[Main] Server stopped")
}
