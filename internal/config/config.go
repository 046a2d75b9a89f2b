package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"sonicseer/internal/params"
)

const DefaultHTTPAddr = "127.0.0.1:8501"

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DataPath    string
	LogDir      string
	FixturesDir string

	HTTPAddr    string
	CORSOrigins []string
	OpenBrowser bool

	EnableMermaidCharts bool
	CelebrityBoost      bool
	// Seed fixes the simulation RNG for requests without their own seed. Zero means time-based.
	Seed     int64
	DaysBack int

	// ForecastRate caps dashboard forecast requests per second. Zero disables the limit.
	ForecastRate  float64
	ForecastBurst int
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for MCP servers)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	return fromEnv(exeDir), nil
}

func fromEnv(exeDir string) *AppConfig {
	// 3. Resolve Data Paths
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := getEnv("LOGS_FOLDER", filepath.Join(dataPath, "logs"))
	fixturesDir := filepath.Join(dataPath, "fixtures")

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}

	daysBack := getEnvInt("DEFAULT_DAYS_BACK", params.DefaultDaysBack)
	if daysBack < 1 {
		log.Warn().Int("days_back", daysBack).Msg("DEFAULT_DAYS_BACK must be positive, using default")
		daysBack = params.DefaultDaysBack
	}

	seed, err := strconv.ParseInt(getEnv("SIMULATION_SEED", "0"), 10, 64)
	if err != nil {
		log.Warn().Err(err).Msg("Invalid SIMULATION_SEED, falling back to time-based seeding")
		seed = 0
	}

	forecastRate, err := strconv.ParseFloat(getEnv("FORECAST_RATE_LIMIT", "20"), 64)
	if err != nil || forecastRate < 0 {
		log.Warn().Str("value", os.Getenv("FORECAST_RATE_LIMIT")).Msg("Invalid FORECAST_RATE_LIMIT, using 20")
		forecastRate = 20
	}

	return &AppConfig{
		DataPath:            dataPath,
		LogDir:              logDir,
		FixturesDir:         fixturesDir,
		HTTPAddr:            getEnv("SONICSEER_ADDR", DefaultHTTPAddr),
		CORSOrigins:         splitList(getEnv("SONICSEER_CORS_ORIGINS", "")),
		OpenBrowser:         getEnvBool("OPEN_BROWSER", false),
		EnableMermaidCharts: getEnvBool("ENABLE_MERMAID_CHARTS", false),
		CelebrityBoost:      getEnvBool("ENABLE_CELEBRITY_BOOST", false),
		Seed:                seed,
		DaysBack:            daysBack,
		ForecastRate:        forecastRate,
		ForecastBurst:       getEnvInt("FORECAST_RATE_BURST", 40),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intVal
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
