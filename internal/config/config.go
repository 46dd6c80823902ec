package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Source    SourceConfig
	Database  DatabaseConfig
	Gemini    GeminiConfig
	Qdrant    QdrantConfig
	Retrieval RetrievalConfig
	Storage   StorageConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type AuthConfig struct {
	Required  bool
	JWTSecret string
	JWTIssuer string
}

// SourceConfig selects and configures the resume backing store. Backend is
// one of "sheets", "drive" or "postgres".
type SourceConfig struct {
	Backend       string
	SheetID       string
	SheetRange    string
	GoogleAPIKey  string
	DriveFolderID string
	ArchiveFolder string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type GeminiConfig struct {
	APIKey       string
	Model        string
	EmbedModel   string
	OutputMode   string
	TemplatePath string
	ToolsEnabled bool
}

type QdrantConfig struct {
	URL        string
	APIKey     string
	Collection string
}

type RetrievalConfig struct {
	Enabled      bool
	TopK         int
	SyncInterval time.Duration
}

type StorageConfig struct {
	UploadPath  string
	MaxFileSize int64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Auth: AuthConfig{
			Required:  getEnvAsBool("AUTH_REQUIRED", false),
			JWTSecret: getEnv("JWT_SECRET", ""),
			JWTIssuer: getEnv("JWT_ISSUER", ""),
		},
		Source: SourceConfig{
			Backend:       getEnv("RESUME_SOURCE", "sheets"),
			SheetID:       getEnv("SHEET_ID", ""),
			SheetRange:    getEnv("SHEET_RANGE", "Sheet1!A:D"),
			GoogleAPIKey:  getEnv("GOOGLE_API_KEY", ""),
			DriveFolderID: getEnv("DRIVE_FOLDER_ID", ""),
			ArchiveFolder: getEnv("DRIVE_ARCHIVE_FOLDER", "archive"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "resume_screener"),
		},
		Gemini: GeminiConfig{
			APIKey:       getEnv("GEMINI_API_KEY", ""),
			Model:        getEnv("MODEL_NAME", "gemini-2.5-flash"),
			EmbedModel:   getEnv("EMBED_MODEL", "text-embedding-004"),
			OutputMode:   getEnv("OUTPUT_MODE", "markdown"),
			TemplatePath: getEnv("PROMPT_TEMPLATE_PATH", ""),
			ToolsEnabled: getEnvAsBool("GEMINI_TOOLS_ENABLED", false),
		},
		Qdrant: QdrantConfig{
			URL:        getEnv("QDRANT_URL", "http://localhost:6333"),
			APIKey:     getEnv("QDRANT_API_KEY", ""),
			Collection: getEnv("QDRANT_COLLECTION", "resume_screener_docs"),
		},
		Retrieval: RetrievalConfig{
			Enabled:      getEnvAsBool("RETRIEVAL_ENABLED", false),
			TopK:         getEnvAsInt("RETRIEVAL_TOP_K", 5),
			SyncInterval: getEnvAsDuration("INDEX_SYNC_INTERVAL", "0s"),
		},
		Storage: StorageConfig{
			UploadPath:  getEnv("UPLOAD_PATH", "./uploads"),
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
