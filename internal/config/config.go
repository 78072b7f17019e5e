package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	SMTP      SMTPConfig
	Ai        AIConfig
	Assistant AssistantConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type AIConfig struct {
	LLMProvider       string // "openai" or "ollama"
	LLMModel          string // e.g. "gpt-4o-mini", "llama3"
	EmbeddingProvider string // "openai" or "ollama"
	EmbeddingModel    string
	OpenAIAPIKey      string
	OllamaBaseURL     string
}

type AssistantConfig struct {
	KnowledgeBasePath     string
	StaticQAPath          string
	OpenDaysCachePath     string
	OpenDaysSourceURL     string
	OpenDaysRefreshSecret string
	AdmissionsEmail       string
	HandoffEvery          int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "PEN.ai"),
		},
		Ai: AIConfig{
			LLMProvider:       getEnv("LLM_PROVIDER", "openai"),
			LLMModel:          getEnv("LLM_MODEL", "gpt-4o-mini"),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "openai"),
			EmbeddingModel:    getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
			OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Assistant: AssistantConfig{
			KnowledgeBasePath:     getEnv("KNOWLEDGE_BASE_PATH", "data/kb_embeddings.jsonl"),
			StaticQAPath:          getEnv("STATIC_QA_PATH", ""),
			OpenDaysCachePath:     getEnv("OPEN_DAYS_CACHE_PATH", "/tmp/open_days.json"),
			OpenDaysSourceURL:     getEnv("OPEN_DAYS_SOURCE_URL", "https://www.cheltenhamcollege.org/admissions/visit-us/open-events/"),
			OpenDaysRefreshSecret: getEnv("OPEN_DAYS_REFRESH_SECRET", "change-me"),
			AdmissionsEmail:       getEnv("ADMISSIONS_EMAIL", "admissions@cheltenhamcollege.org"),
			HandoffEvery:          getEnvAsInt("HANDOFF_OFFER_EVERY", 5),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
