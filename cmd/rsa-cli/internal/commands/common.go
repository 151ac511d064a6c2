package commands

import (
	"fmt"
	"math/big"

	"github.com/Mykola-Nikolayev/RSA-algo/internal/pkg/config"
	"github.com/Mykola-Nikolayev/RSA-algo/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// parseBigInt parses a decimal flag value into an arbitrary-precision integer.
func parseBigInt(value, flagName string) (*big.Int, error) {
	parsed, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("invalid %s flag: %q is not a decimal integer", flagName, value)
	}
	return parsed, nil
}
