// Package config provides the configuration loader for piff.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"go.trai.ch/piff/internal/adapters/shell"
	"go.trai.ch/piff/internal/core/domain"
	"go.trai.ch/piff/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file and the environment.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load builds the project settings. Values are layered in this order:
// defaults, the nearest piff.yaml at or above cwd, then PIFF_* variables
// (which may come from a .env file in cwd).
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if err := loadEnvFile(filepath.Join(cwd, domain.EnvFileName)); err != nil {
		return settings, err
	}

	var file Piffile
	if configPath, ok := findConfiguration(cwd); ok {
		if err := readAndUnmarshalYAML(configPath, &file); err != nil {
			return settings, zerr.With(err, "path", configPath)
		}
	}

	applyEnvironment(&file)

	if file.Transpile != "" {
		settings.TranspileCommand = file.Transpile
	}
	if file.Format != "" {
		settings.FormatCommand = file.Format
	}
	if file.Ignore != nil {
		settings.IgnoredDirs = file.Ignore
	}
	if file.Debounce != "" {
		window, err := parseDebounce(file.Debounce)
		if err != nil {
			return settings, err
		}
		settings.DebounceWindow = window
	}

	if err := validateCommands(settings); err != nil {
		return settings, err
	}

	if settings.DebounceWindow == 0 {
		l.Logger.Warn("debounce is 0, change events compile without delay")
	}

	return settings, nil
}

// findConfiguration walks from cwd to the filesystem root looking for piff.yaml.
func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

// loadEnvFile loads a dotenv file without overriding variables already set.
// A missing file is not an error.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return zerr.With(zerr.Wrap(err, domain.ErrEnvFileLoadFailed.Error()), "path", path)
}

func applyEnvironment(file *Piffile) {
	if v, ok := os.LookupEnv(EnvTranspile); ok && v != "" {
		file.Transpile = v
	}
	if v, ok := os.LookupEnv(EnvFormat); ok && v != "" {
		file.Format = v
	}
	if v, ok := os.LookupEnv(EnvDebounce); ok && v != "" {
		file.Debounce = v
	}
}

func parseDebounce(value string) (time.Duration, error) {
	window, err := time.ParseDuration(value)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrInvalidDebounce.Error()), "debounce", value)
	}
	if window < 0 {
		return 0, zerr.With(domain.ErrInvalidDebounce, "debounce", value)
	}
	return window, nil
}

func validateCommands(settings domain.Settings) error {
	if _, err := shell.SplitCommand(settings.TranspileCommand); err != nil {
		return zerr.With(err, "setting", "transpile")
	}
	if _, err := shell.SplitCommand(settings.FormatCommand); err != nil {
		return zerr.With(err, "setting", "format")
	}
	return nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
