package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned by Load when no Gemini credential is configured.
var ErrMissingAPIKey = errors.New("GOOGLE_API_KEY environment variable is not set")

// Environment variables consulted by Load. They win over the config file.
const (
	EnvAPIKey = "GOOGLE_API_KEY"
	EnvHost   = "BLOG_AGENTS_HOST"
	EnvPort   = "BLOG_AGENTS_PORT"
	EnvModel  = "BLOG_AGENTS_MODEL"
)

// GeminiConfig holds the model and sampling parameters sent with every request.
type GeminiConfig struct {
	APIKey          string  `json:"api_key"`
	BaseURL         string  `json:"base_url"`
	Model           string  `json:"model"`
	Temperature     float32 `json:"temperature"`
	TopP            float32 `json:"top_p"`
	TopK            float32 `json:"top_k"`
	MaxOutputTokens int32   `json:"max_output_tokens"`
	SafetyThreshold string  `json:"safety_threshold"`
}

type Config struct {
	Server struct {
		Host    string `json:"host"`
		Port    int    `json:"port"`
		Subpath string `json:"subpath"`
	} `json:"server"`
	Gemini GeminiConfig `json:"gemini"`
}

// Default returns the configuration used when no file or environment
// override is present. The API key is left empty.
func Default() Config {
	var c Config
	c.Server.Host = "0.0.0.0"
	c.Server.Port = 5000
	c.Gemini = GeminiConfig{
		Model:           "gemini-1.5-pro",
		Temperature:     0.7,
		TopP:            0.8,
		TopK:            40,
		MaxOutputTokens: 2048,
		SafetyThreshold: "BLOCK_MEDIUM_AND_ABOVE",
	}
	return c
}

// Load builds the configuration from defaults, the optional JSON file at
// path (skipped when path is empty) and the environment. The returned value
// is not shared; callers own it.
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("invalid config format: %w", err)
		}
	}
	if err := applyEnv(&c); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadEnvFile exports the variables of a dotenv file into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func applyEnv(c *Config) error {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv(EnvHost); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv(EnvModel); v != "" {
		c.Gemini.Model = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		c.Server.Port = port
	}
	return nil
}

func (c *Config) validate() error {
	if c.Gemini.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port out of range: %d", c.Server.Port)
	}
	if c.Gemini.Model == "" {
		return errors.New("gemini model must be set")
	}
	if c.Gemini.Temperature < 0 || c.Gemini.Temperature > 2 {
		return fmt.Errorf("temperature must be within [0, 2], got %v", c.Gemini.Temperature)
	}
	if c.Gemini.TopP < 0 || c.Gemini.TopP > 1 {
		return fmt.Errorf("top_p must be within [0, 1], got %v", c.Gemini.TopP)
	}
	if c.Gemini.TopK <= 0 {
		return fmt.Errorf("top_k must be positive, got %v", c.Gemini.TopK)
	}
	if c.Gemini.MaxOutputTokens <= 0 {
		return fmt.Errorf("max_output_tokens must be positive, got %d", c.Gemini.MaxOutputTokens)
	}
	return nil
}

// MaskedAPIKey returns the key prefix that is safe to print in logs.
func (c *Config) MaskedAPIKey() string {
	return MaskKey(c.Gemini.APIKey)
}

// MaskKey keeps the first ten characters of a secret.
func MaskKey(key string) string {
	if len(key) > 10 {
		key = key[:10]
	}
	return key + "..."
}
