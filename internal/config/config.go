package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Chat     ChatConfig
	Cache    CacheConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	// JwtSecret protects the API when set. Empty disables auth.
	JwtSecret string
}

type DatabaseConfig struct {
	// Connection enables turn analytics when set.
	Connection string
}

type ChatConfig struct {
	Greeting      string
	ThinkingMin   time.Duration
	ThinkingMax   time.Duration
	FollowUpDelay time.Duration
	EventTopic    string
	WsLogFilePath string
}

type CacheConfig struct {
	SnapshotTTL     time.Duration
	CleanupInterval time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			JwtSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Chat: ChatConfig{
			Greeting:      getEnv("CHAT_GREETING", "Hello! I'm your AI assistant. How can I help you today?"),
			ThinkingMin:   getEnvAsDuration("CHAT_THINKING_MIN", 1200*time.Millisecond),
			ThinkingMax:   getEnvAsDuration("CHAT_THINKING_MAX", 2000*time.Millisecond),
			FollowUpDelay: getEnvAsDuration("CHAT_FOLLOW_UP_DELAY", time.Second),
			EventTopic:    getEnv("CHAT_EVENT_TOPIC", "CHAT_EVENTS"),
			WsLogFilePath: getEnv("WS_LOG_FILE_PATH", "logs/websocket.log"),
		},
		Cache: CacheConfig{
			SnapshotTTL:     getEnvAsDuration("SNAPSHOT_CACHE_TTL", 5*time.Second),
			CleanupInterval: getEnvAsDuration("SNAPSHOT_CACHE_CLEANUP", time.Minute),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
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

// getEnvAsDuration accepts Go durations ("1.5s") or bare milliseconds ("1500").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if d, err := time.ParseDuration(strValue); err == nil {
		return d
	}
	if ms := getEnvAsInt(key, -1); ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
