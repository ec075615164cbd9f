package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	GeminiAPIKey  string
	AllowedOrigin string
	// Path of the static page served at "/"
	IndexFile string
	// Optional YAML file overriding the built-in mode presets
	PresetFile string
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:          getEnvDefault("PORT", "8080"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		AllowedOrigin: getEnvDefault("ALLOWED_ORIGIN", "*"),
		IndexFile:     getEnvDefault("INDEX_FILE", "index.html"),
		PresetFile:    os.Getenv("PRESET_FILE"),
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("warning: GEMINI_API_KEY is not set; generate requests will fail until provided")
	}
	return cfg
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
