package config

import (
	"errors"
	"io/fs"

	"labor_cost_backend/internal/report"
	"labor_cost_backend/pkg/utils"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the calculator service.
type Config struct {
	Port               string
	GinMode            string
	LogLevel           string
	LogFormat          string
	CORSAllowedOrigins []string
	ReportSheetName    string
}

var defaultOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

// Load reads an optional .env file from the working directory and then the environment.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path. A missing file is not an error.
func LoadFrom(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	ginMode := utils.Getenv("GIN_MODE", "debug")
	switch ginMode {
	case "debug", "release", "test":
	default:
		ginMode = "debug"
	}

	sheetName := utils.Getenv("REPORT_SHEET_NAME", report.DefaultSheetName)
	if err := report.CheckSheetName(sheetName); err != nil {
		utils.LogWarn(err, "REPORT_SHEET_NAME is not a valid sheet name, using "+report.DefaultSheetName)
		sheetName = report.DefaultSheetName
	}

	return &Config{
		Port:               utils.Getenv("PORT", "8080"),
		GinMode:            ginMode,
		LogLevel:           utils.Getenv("LOG_LEVEL", "info"),
		LogFormat:          utils.Getenv("LOG_FORMAT", "console"),
		CORSAllowedOrigins: utils.GetenvList("CORS_ALLOWED_ORIGINS", defaultOrigins),
		ReportSheetName:    sheetName,
	}, nil
}
