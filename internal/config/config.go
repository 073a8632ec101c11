// Package config loads runtime settings for the tinct CLI from the
// environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/balkashynov/tinct/internal/errpolicy"
)

const (
	defaultDirName        = ".tinct"
	defaultDBFile         = "tinct.db"
	defaultLogFile        = "tinct.log"
	defaultReloadInterval = 3 * time.Second
	minimumReloadInterval = 100 * time.Millisecond
)

// Config captures startup settings.
type Config struct {
	DBPath         string
	LogPath        string
	LogLevel       slog.Level
	ErrorPolicy    errpolicy.Mode
	Debug          bool
	ReloadInterval time.Duration
}

// LoadFromEnv loads configuration from environment variables:
//   - TINCT_DB_PATH, TINCT_LOG_PATH (default under ~/.tinct)
//   - TINCT_LOG_LEVEL (debug|info|warn|error)
//   - TINCT_ERROR_POLICY (fail-fast|stop-pipeline)
//   - TINCT_DEBUG (boolean; double attach panics)
//   - TINCT_RELOAD_INTERVAL (duration; demo background reload)
func LoadFromEnv() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	baseDir := filepath.Join(home, defaultDirName)

	dbPath, err := readPath("TINCT_DB_PATH", filepath.Join(baseDir, defaultDBFile))
	if err != nil {
		return Config{}, err
	}

	logPath, err := readPath("TINCT_LOG_PATH", filepath.Join(baseDir, defaultLogFile))
	if err != nil {
		return Config{}, err
	}

	level, err := readLevel("TINCT_LOG_LEVEL", slog.LevelInfo)
	if err != nil {
		return Config{}, err
	}

	mode := errpolicy.FailFast
	if raw, ok := os.LookupEnv("TINCT_ERROR_POLICY"); ok {
		mode, err = errpolicy.ParseMode(raw)
		if err != nil {
			return Config{}, fmt.Errorf("TINCT_ERROR_POLICY: %w", err)
		}
	}

	debug, err := readBool("TINCT_DEBUG", false)
	if err != nil {
		return Config{}, err
	}

	reload, err := readDuration("TINCT_RELOAD_INTERVAL", defaultReloadInterval, minimumReloadInterval)
	if err != nil {
		return Config{}, err
	}

	return Config{
		DBPath:         dbPath,
		LogPath:        logPath,
		LogLevel:       level,
		ErrorPolicy:    mode,
		Debug:          debug,
		ReloadInterval: reload,
	}, nil
}

func readPath(key, fallback string) (string, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%s must not be empty", key)
	}
	if raw == ":memory:" {
		return "file::memory:", nil
	}
	clean := filepath.Clean(raw)
	if clean == "." {
		return "", fmt.Errorf("%s must not resolve to current directory", key)
	}
	return clean, nil
}

func readLevel(key string, fallback slog.Level) (slog.Level, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return 0, fmt.Errorf("%s must be debug, info, warn or error: %w", key, err)
	}
	return level, nil
}

func readBool(key string, fallback bool) (bool, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return parsed, nil
}

func readDuration(key string, fallback, min time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid duration: %w", key, err)
	}
	if parsed < min {
		return 0, fmt.Errorf("%s must be at least %s", key, min)
	}

	return parsed, nil
}
