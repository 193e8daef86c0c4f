package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort        = "4000"
	defaultJWTTTL      = "168h" // 7 days
	defaultJWTSecret   = "change-me-jwt-secret"
	defaultAdminKey    = "secret-admin-key"
	defaultFrontendURL = "http://localhost:5173"
	defaultUploadDir   = "./uploads"
	defaultStaticBase  = "/static/uploads"
)

// Config is the explicit startup configuration. It is loaded once in
// main and injected into components; nothing below main reads the
// process environment directly.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration
	AdminKey  string

	FrontendURL    string
	AllowedOrigins string

	UploadDir     string
	StaticURLBase string

	RedisAddr     string
	RedisPassword string

	SMTP SMTPConfig
}

// SMTPConfig holds the transactional mail settings. Host left empty
// means mail is not configured and senders report failure without
// blocking the caller.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	NotifyTo string
}

// Load reads the configuration from the environment, honoring a local
// .env file in development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         strings.ToLower(getEnv("APP_ENV", "dev")),
		Port:           getEnv("PORT", defaultPort),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:      strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret)),
		AdminKey:       strings.TrimSpace(getEnv("ADMIN_KEY", defaultAdminKey)),
		FrontendURL:    getEnv("FRONTEND_URL", defaultFrontendURL),
		AllowedOrigins: os.Getenv("CORS_ALLOWED_ORIGINS"),
		UploadDir:      getEnv("UPLOAD_DIR", defaultUploadDir),
		StaticURLBase:  getEnv("STATIC_URL_BASE", defaultStaticBase),
		RedisAddr:      strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		SMTP: SMTPConfig{
			Host:     strings.TrimSpace(os.Getenv("SMTP_HOST")),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USER"),
			Password: strings.ReplaceAll(os.Getenv("SMTP_PASSWORD"), " ", ""),
			From:     os.Getenv("SMTP_FROM"),
			NotifyTo: os.Getenv("NOTIFICATION_EMAIL"),
		},
	}

	var err error
	cfg.JWTTTL, err = time.ParseDuration(getEnv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_TTL: %w", err)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}
	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
