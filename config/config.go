package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Timezone string
	DBPath   string

	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string

	ZipFrostCSV  string
	ZipFrostXLSX string

	ScraperMaxBytes      int
	PlantableWindowWeeks int
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}

	cfg := AppConfig{
		Port:                 get("PORT", "8080"),
		Timezone:             get("TZ", "America/New_York"),
		DBPath:               get("DB_PATH", "seedwizard.db"),
		LLMEndpoint:          get("LLM_ENDPOINT", ""),
		LLMAPIKey:            get("LLM_API_KEY", ""),
		LLMModel:             get("LLM_MODEL", "gpt-4o-mini"),
		ZipFrostCSV:          get("ZIP_FROST_CSV", "./ZipFrostData.csv"),
		ZipFrostXLSX:         get("ZIP_FROST_XLSX", ""),
		ScraperMaxBytes:      getInt("SCRAPER_MAX_BYTES", 1500000),
		PlantableWindowWeeks: getInt("PLANTABLE_WINDOW_WEEKS", 4),
	}
	log.Printf("[cfg] port=%s db=%s llm=%t", cfg.Port, cfg.DBPath, cfg.LLMEndpoint != "")
	return cfg
}
