package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GinMode     string
	CORSOrigins []string

	// LLM provider keys. All optional: with no provider configured the app
	// still serves the assessment and lexical search.
	GoogleAPIKey    string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	OllamaBaseURL   string
	OllamaModel     string

	// Default provider name, or "auto" to pick the first available one.
	DefaultProvider string

	// Embeddings configuration. The indexer and the query-time embedder must
	// use the same model and dimensionality.
	EmbeddingsProvider string // "openai" (default), "google"
	EmbeddingModel     string
	EmbeddingDims      int

	// Corpus paths
	SourceDir     string
	EmbeddingsDir string

	// Chunking thresholds (tokens)
	ChunkMinTokens int
	ChunkMaxTokens int

	// Daily token budget shared by all chat requests
	DailyTokenBudget int64

	// Per-IP rate limiting
	RateLimitReqs   int
	RateLimitWindow int

	MaxBodyBytes int64

	// Redis Configuration (usage counters + rate limiting; optional)
	RedisURL      string
	RedisPassword string
	RedisDB       int

	// MongoDB (anonymous placement counters; optional)
	MongoURI string
	DBName   string

	// Telemetry
	OTLPEndpoint   string
	TracingEnabled bool
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("error loading .env file: %v", err)
		}
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080"), ","),

		GoogleAPIKey:    getEnv("GOOGLE_API_KEY", ""),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		OllamaBaseURL:   getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:     getEnv("OLLAMA_MODEL", "llama3.2"),

		DefaultProvider: getEnv("DEFAULT_PROVIDER", "auto"),

		EmbeddingsProvider: getEnv("EMBEDDINGS_PROVIDER", "openai"),
		EmbeddingModel:     getEnv("EMBEDDING_MODEL", "text-embedding-3-large"),
		EmbeddingDims:      getEnvInt("EMBEDDING_DIMENSIONS", 3072),

		SourceDir:     getEnv("SOURCE_DIR", "./data/source"),
		EmbeddingsDir: getEnv("EMBEDDINGS_DIR", "./data/embeddings"),

		ChunkMinTokens: getEnvInt("CHUNK_MIN_TOKENS", 30),
		ChunkMaxTokens: getEnvInt("CHUNK_MAX_TOKENS", 400),

		DailyTokenBudget: getEnvInt64("DAILY_TOKEN_BUDGET", 500000),

		RateLimitReqs:   getEnvInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow: getEnvInt("RATE_LIMIT_WINDOW", 60),

		MaxBodyBytes: getEnvInt64("MAX_BODY_BYTES", 1048576), // chat payloads are small

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		MongoURI: getEnv("MONGO_URI", ""),
		DBName:   getEnv("DB_NAME", "dit_assessment"),

		OTLPEndpoint:   getEnv("OTLP_ENDPOINT", "localhost:4317"),
		TracingEnabled: getEnvBool("TRACING_ENABLED", false),
	}

	if cfg.ChunkMinTokens >= cfg.ChunkMaxTokens {
		return nil, fmt.Errorf("CHUNK_MIN_TOKENS (%d) must be below CHUNK_MAX_TOKENS (%d)",
			cfg.ChunkMinTokens, cfg.ChunkMaxTokens)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
