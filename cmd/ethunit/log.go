package main

import (
	"os"

	"github.com/ipfs/go-log/v2"
	"go.uber.org/zap"
)

const logLevelEnv = "ETHUNIT_LOG_LEVEL"

func newLogger(name string) *zap.SugaredLogger {
	return &log.Logger(name).SugaredLogger
}

// logLevel reads the level from the environment, falling back to warn.
func logLevel() log.LogLevel {
	name := os.Getenv(logLevelEnv)
	if name == "" {
		return log.LevelWarn
	}

	lvl, err := log.LevelFromString(name)
	if err != nil {
		return log.LevelWarn
	}

	return lvl
}

func init() {
	log.SetupLogging(log.Config{
		Level:  logLevel(),
		Stderr: true,
	})
}
