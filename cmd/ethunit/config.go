package main

import (
	"os"
	"path/filepath"

	"github.com/ipfs/go-log/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	configDirEnv     = "ETHUNIT_CONFIG_DIR"
	defaultConfigDir = "."

	unitEnv   = "ETHUNIT_UNIT"
	prefixEnv = "ETHUNIT_PREFIX"
)

// loadEnv loads .env from the config directory into the environment so the
// flags bound to ETHUNIT_* variables pick it up. Variables already set win.
func loadEnv(logger *zap.SugaredLogger) {
	dir := os.Getenv(configDirEnv)
	if dir == "" {
		dir = defaultConfigDir
	}

	path := filepath.Join(dir, ".env")
	logger.Debugw("loading .env file", "path", path)

	if err := godotenv.Load(path); err != nil {
		logger.Debugw(".env file not loaded", "path", path, "err", err)

		return
	}

	// The file may set the log level too.
	log.SetAllLoggers(logLevel())
}
