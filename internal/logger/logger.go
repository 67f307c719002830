package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init builds the global logger for the given environment and installs it
// with zap.ReplaceGlobals, so the rest of the code logs through zap.L().
func Init(environment string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("zap.New -> %w", err)
	}

	zap.ReplaceGlobals(logger)

	return logger, nil
}
