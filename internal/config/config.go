package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	App      AppConfig
	Firebase FirebaseConfig
	Gemini   GeminiConfig
	Notifier NotifierConfig
	Redis    RedisConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Env  string
	Port string
}

// FirebaseConfig holds the service account fields used to build the
// credentials JSON at startup. PrivateKey is stored with real newlines
// (see Load).
type FirebaseConfig struct {
	ProjectID   string
	PrivateKey  string
	ClientEmail string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type NotifierConfig struct {
	Interval             time.Duration
	ActivitiesCollection string
	UsersCollection      string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

// Addr returns the Redis address, or "" when Redis is not configured
func (r RedisConfig) Addr() string {
	if r.Host == "" {
		return ""
	}
	return r.Host + ":" + r.Port
}

type CORSConfig struct {
	Origins []string
}

// Load reads configuration from .env file and environment variables
func Load() *Config {
	// Load .env file (ignore error if not exists - e.g. in Docker)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading from environment variables")
	}

	interval, err := time.ParseDuration(getEnv("NOTIFIER_INTERVAL", "1m"))
	if err != nil {
		interval = time.Minute
	}

	return &Config{
		App: AppConfig{
			Env:  getEnv("APP_ENV", "development"),
			Port: getEnv("APP_PORT", "3000"),
		},
		Firebase: FirebaseConfig{
			ProjectID: getEnv("FIREBASE_PROJECT_ID", ""),
			// Deployment tooling stores the PEM with escaped newlines
			PrivateKey:  strings.ReplaceAll(getEnv("FIREBASE_PRIVATE_KEY", ""), `\n`, "\n"),
			ClientEmail: getEnv("FIREBASE_CLIENT_EMAIL", ""),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		Notifier: NotifierConfig{
			Interval:             interval,
			ActivitiesCollection: getEnv("ACTIVITIES_COLLECTION", "timetables"),
			UsersCollection:      getEnv("USERS_COLLECTION", "users"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		CORS: CORSConfig{
			Origins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
