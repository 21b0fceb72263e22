package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL        string
	StateDBURL        string
	AppEnv            string
	OAuthClientID     string
	OAuthClientSecret string
	OAuthAuthURL      string
	OAuthTokenURL     string
	OAuthRedirectURL  string
}

func Load() *Config {
	_ = godotenv.Load() // Ignore error if .env not found (e.g. prod)

	return &Config{
		APIBaseURL:        getEnv("LEXPORTAL_API_URL", "https://api.lexportal.in"),
		StateDBURL:        getEnv("LEXMARK_STATE_DB", "file:lexmark.db"),
		AppEnv:            getEnv("APP_ENV", "local"),
		OAuthClientID:     getEnv("LEXPORTAL_CLIENT_ID", ""),
		OAuthClientSecret: getEnv("LEXPORTAL_CLIENT_SECRET", ""),
		OAuthAuthURL:      getEnv("LEXPORTAL_AUTH_URL", "https://auth.lexportal.in/oauth/authorize"),
		OAuthTokenURL:     getEnv("LEXPORTAL_TOKEN_URL", "https://auth.lexportal.in/oauth/token"),
		OAuthRedirectURL:  getEnv("LEXPORTAL_REDIRECT_URL", "http://localhost:8765/callback"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
