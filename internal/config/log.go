package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ParseLogLevel parses one of DEBUG, INFO, WARN or ERROR, case insensitive.
func ParseLogLevel(name string) (slog.Level, error) {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %q", name)
	}
}

// SetLogLevel sets the log level for the application.
func SetLogLevel(name string) error {
	level, err := ParseLogLevel(name)
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}
