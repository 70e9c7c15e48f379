package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	TelegramBotToken string
	WebhookURL       string

	GeminiAPIKey  string
	GeminiModel   string
	ModelAttempts int
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Printf("ignoring bad %s=%q, using %d", k, v, def)
	}
	return def
}

// mustSecret resolves a secret from a mounted file (<K>_FILE) first,
// then from the plain env var. Missing secret aborts startup.
func mustSecret(k string) string {
	if p := strings.TrimSpace(os.Getenv(k + "_FILE")); p != "" {
		b, err := os.ReadFile(p)
		if err != nil {
			log.Fatalf("reading %s_FILE: %v", k, err)
		}
		if v := strings.TrimSpace(string(b)); v != "" {
			return v
		}
		log.Fatalf("%s_FILE points at an empty file", k)
	}
	return mustEnv(k)
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8000"),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		WebhookURL:       getEnv("WEBHOOK_URL", ""),

		GeminiAPIKey:  mustSecret("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		ModelAttempts: getEnvInt("MODEL_ATTEMPTS", 2),
	}
}
