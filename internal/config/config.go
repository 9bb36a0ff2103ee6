package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDriverMemory   = "memory"
	StorageDriverRedis    = "redis"
	StorageDriverPostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Storage  StorageConfig
	SMTP     SMTPConfig
	Auth     AuthConfig
	Analysis AnalysisConfig
	Report   ReportConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	ProgressLogPath    string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	FrontendDist       string
	OtelEnabled        bool
	OtelEndpoint       string
}

type DatabaseConfig struct {
	Connection string
}

type StorageConfig struct {
	Driver       string // "memory", "redis" or "postgres"
	HistoryLimit int
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

// Enabled reports whether real delivery is configured.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Email != ""
}

type AuthConfig struct {
	JWTSecret      string
	TokenTTL       time.Duration
	SimulatedDelay time.Duration
	GuardRoutes    bool
}

type AnalysisConfig struct {
	StepDelay      time.Duration
	MaxUploadBytes int64
}

type ReportConfig struct {
	DownloadDelay time.Duration
	EmailDelay    time.Duration
	EmailSentTTL  time.Duration
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:5000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			ProgressLogPath:    getEnv("PROGRESS_LOG_PATH", "logs/progress.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			FrontendDist:       getEnv("FRONTEND_DIST", "../Frontend/dist"),
			OtelEnabled:        getEnvAsBool("OTEL_ENABLED", false),
			OtelEndpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Storage: StorageConfig{
			Driver:       strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverMemory)),
			HistoryLimit: getEnvAsInt("HISTORY_LIMIT", 10),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "PlagiarismPro"),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("JWT_SECRET", "change-me-in-prod"),
			TokenTTL:       getEnvAsDuration("JWT_TTL", 12*time.Hour),
			SimulatedDelay: getEnvAsDuration("AUTH_DELAY", 1500*time.Millisecond),
			GuardRoutes:    getEnvAsBool("AUTH_GUARD_ROUTES", true),
		},
		Analysis: AnalysisConfig{
			StepDelay:      getEnvAsDuration("ANALYSIS_STEP_DELAY", 800*time.Millisecond),
			MaxUploadBytes: int64(getEnvAsInt("MAX_UPLOAD_BYTES", 10*1024*1024)),
		},
		Report: ReportConfig{
			DownloadDelay: getEnvAsDuration("REPORT_DOWNLOAD_DELAY", 2*time.Second),
			EmailDelay:    getEnvAsDuration("REPORT_EMAIL_DELAY", 1500*time.Millisecond),
			EmailSentTTL:  getEnvAsDuration("REPORT_EMAIL_SENT_TTL", 3*time.Second),
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

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("800ms") or plain milliseconds ("800").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	if ms, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
