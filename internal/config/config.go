package config

import (
	"fmt"
	"os"
)

// Config holds application configuration
type Config struct {
	Port            string
	LogLevel        string
	IPCURL          string
	FxEvolutionURL  string
	FxHistoryURL    string
	FxDateURL       string
	FxCurrentURL    string
	GeminiAPIKey    string
	GeminiModel     string
	RefreshSchedule string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "INFO"),
		IPCURL:          getEnv("IPC_URL", "https://apis.datos.gob.ar/series/api/series/?ids=148.3_INIVELNAL_DICI_M_26&limit=5000&format=json"),
		FxEvolutionURL:  getEnv("FX_EVOLUTION_URL", "https://api.bluelytics.com.ar/v2/evolution.json"),
		FxHistoryURL:    getEnv("FX_HISTORY_URL", "https://api.argentinadatos.com/v1/cotizaciones/dolares/blue"),
		FxDateURL:       getEnv("FX_DATE_URL", "https://api.argentinadatos.com/v1/cotizaciones/dolares/blue"),
		FxCurrentURL:    getEnv("FX_CURRENT_URL", "https://dolarapi.com/v1/dolares/blue"),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		RefreshSchedule: getEnv("REFRESH_SCHEDULE", "0 6 * * *"),
	}

	if cfg.IPCURL == "" {
		return nil, fmt.Errorf("IPC_URL is required")
	}
	if cfg.FxCurrentURL == "" {
		return nil, fmt.Errorf("FX_CURRENT_URL is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
