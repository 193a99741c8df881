package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	GigaChat     GigaChatConfig
	Embedding    EmbeddingConfig
	CharacterAPI CharacterAPIConfig
	Search       SearchConfig
	Logger       LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Path string
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	InsecureSkipVerify bool
}

type EmbeddingConfig struct {
	URL       string
	APIKey    string
	Model     string
	Dimension int
	Timeout   time.Duration
}

type CharacterAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SearchConfig struct {
	TopK      int
	ListLimit int
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file found is fine, plain environment variables still apply
	// (useful for Docker/K8s)

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	embedDim, _ := strconv.Atoi(getEnv("EMBEDDING_DIMENSION", "384"))
	embedTimeout, _ := strconv.Atoi(getEnv("EMBEDDING_TIMEOUT", "15"))
	charTimeout, _ := strconv.Atoi(getEnv("CHARACTER_API_TIMEOUT", "10"))
	topK, _ := strconv.Atoi(getEnv("SEARCH_TOP_K", "10"))
	listLimit, _ := strconv.Atoi(getEnv("LIST_LIMIT", "20"))
	insecureSkipVerify := getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "true") == "true"

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8000"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "rm.db"),
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			InsecureSkipVerify: insecureSkipVerify,
		},
		Embedding: EmbeddingConfig{
			URL:       getEnv("EMBEDDING_URL", "http://localhost:8081/v1/embeddings"),
			APIKey:    getEnv("EMBEDDING_API_KEY", ""),
			Model:     getEnv("EMBEDDING_MODEL", "all-minilm-l6-v2"),
			Dimension: embedDim,
			Timeout:   time.Duration(embedTimeout) * time.Second,
		},
		CharacterAPI: CharacterAPIConfig{
			BaseURL: getEnv("CHARACTER_API_URL", "https://rickandmortyapi.com/api"),
			Timeout: time.Duration(charTimeout) * time.Second,
		},
		Search: SearchConfig{
			TopK:      topK,
			ListLimit: listLimit,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
