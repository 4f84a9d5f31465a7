package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
)

const (
	envFile     = "CIPHERKIT_ENV_FILE"
	envLogLevel = "CIPHERKIT_LOG_LEVEL"
	envSalt     = "CIPHERKIT_HKDF_SALT"

	defaultEnvFile = ".env"
)

// settings is the configuration read from the environment and the
// optional dotenv file. Process variables take precedence over the file.
type settings struct {
	logLevel slog.Level
	salt     []byte
}

func loadSettings(getenv func(string) string) (settings, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	path := getenv(envFile)
	if path == "" {
		path = defaultEnvFile
	}

	fileVars, err := godotenv.Read(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return settings{}, fmt.Errorf("load %s: %w", path, err)
	}

	lookup := func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fileVars[key]
	}

	s := settings{logLevel: slog.LevelWarn}

	if v := lookup(envLogLevel); v != "" {
		if err := s.logLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return settings{}, fmt.Errorf("%s: %w", envLogLevel, err)
		}
	}

	if v := lookup(envSalt); v != "" {
		salt, err := hex.DecodeString(strings.TrimSpace(v))
		if err != nil {
			return settings{}, fmt.Errorf("%s: %w", envSalt, err)
		}
		s.salt = salt
	}

	return s, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
