package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Provider identifies which completion backend the service talks to.
type Provider string

const (
	ProviderASI    Provider = "asi"
	ProviderGemini Provider = "gemini"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// AI provider configuration
	Provider    Provider
	ASIAPIKey   string
	ASIAPIURL   string
	ASIModel    string
	GeminiKey   string
	GeminiModel string
	MaxTokens   int
	Temperature float64

	// CORS configuration
	AllowedOrigins []string

	// Rate limiting
	RateLimitPerMinute int

	// Redis configuration (rate limit counters only)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// Load creates a new Config instance from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		ServerHost:         getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Provider:           Provider(getEnv("AI_PROVIDER", string(ProviderASI))),
		ASIAPIURL:          getEnv("ASI_API_URL", "https://api.asi1.ai/v1/chat/completions"),
		ASIModel:           getEnv("ASI_MODEL", "asi1-mini"),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-pro"),
		MaxTokens:          getEnvInt("MAX_TOKENS", 32000),
		Temperature:        getEnvFloat("TEMPERATURE", 0.7),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		RedisHost:          getEnv("REDIS_HOST", ""),
		RedisPort:          getEnv("REDIS_PORT", "6379"),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvInt("REDIS_DB", 0),
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	key, err := loadAPIKey("ASI_API_KEY")
	if err != nil {
		return nil, err
	}
	cfg.ASIAPIKey = key

	geminiKey, err := loadAPIKey("GEMINI_API_KEY")
	if err != nil {
		return nil, err
	}
	cfg.GeminiKey = geminiKey

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is internally consistent
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderASI, ProviderGemini:
	default:
		return fmt.Errorf("unknown AI provider: %q", c.Provider)
	}

	if c.MaxTokens <= 0 {
		return fmt.Errorf("MAX_TOKENS must be positive, got %d", c.MaxTokens)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("TEMPERATURE must be between 0 and 2, got %v", c.Temperature)
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative, got %d", c.RateLimitPerMinute)
	}

	return nil
}

// loadAPIKey reads a credential from NAME or, failing that, from the file
// named by NAME_FILE (Docker secrets convention).
func loadAPIKey(name string) (string, error) {
	if key := os.Getenv(name); key != "" {
		return key, nil
	}

	keyFile := os.Getenv(name + "_FILE")
	if keyFile == "" {
		return "", nil
	}

	keyBytes, err := os.ReadFile(keyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name+"_FILE", err)
	}

	key := strings.TrimSpace(string(keyBytes))
	if key == "" {
		return "", fmt.Errorf("%s points to an empty file", name+"_FILE")
	}

	return key, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(name string, fallback float64) float64 {
	if v := os.Getenv(name); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
