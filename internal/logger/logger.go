package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init installs a global zap logger. Production config for anything that
// isn't "development" so a misconfigured environment never logs debug output.
func Init(environment string) error {
	var (
		logger *zap.Logger
		err    error
	)

	if environment == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("zap.New -> %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}
