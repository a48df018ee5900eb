package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	appDirName   = ".taskline"
	dataFileName = "tasks.json"

	envData = "TASKLINE_DATA"
	envLog  = "TASKLINE_LOG"
)

type Config struct {
	DataPath string
	LogLevel zerolog.Level
}

// Load resolves configuration from a .env file (when present in the
// working directory) and environment variables, with code defaults:
// data under ~/.taskline, log level info.
func Load() (Config, error) {
	_ = godotenv.Load() // optional; absence is not an error

	cfg := Config{LogLevel: zerolog.InfoLevel}

	if p := strings.TrimSpace(os.Getenv(envData)); p != "" {
		cfg.DataPath = p
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("home: %w", err)
		}
		cfg.DataPath = filepath.Join(home, appDirName, dataFileName)
	}

	if lv := strings.TrimSpace(os.Getenv(envLog)); lv != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(lv))
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", envLog, err)
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}
