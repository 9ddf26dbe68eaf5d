package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sethvargo/go-envconfig"

	"github.com/cwbudde/wavtrim"
)

// Trim contains the window selection settings.
type Trim struct {
	// LengthMS is the length of the output window in milliseconds.
	LengthMS int64 `toml:"length_ms" env:"WAVTRIM_LENGTH_MS, overwrite" validate:"gt=0"`
	// MinVolume is the mean absolute amplitude below which a file is skipped.
	MinVolume float64 `toml:"min_volume" env:"WAVTRIM_MIN_VOLUME, overwrite" validate:"gte=0,lte=1"`
}

// Output contains settings for the written files.
type Output struct {
	Format  string `toml:"format" env:"WAVTRIM_OUTPUT_FORMAT, overwrite" validate:"oneof=wav aiff"`
	Workers int    `toml:"workers" env:"WAVTRIM_WORKERS, overwrite" validate:"gte=1,lte=64"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level" env:"WAVTRIM_LOG_LEVEL, overwrite" validate:"oneof=debug info warn error"`
	Format string `toml:"format" env:"WAVTRIM_LOG_FORMAT, overwrite" validate:"oneof=auto console json"`
}

// Config encapsulates all configuration values for wavtrim.
//
// Values are layered: Default, then the TOML file, then WAVTRIM_*
// environment variables. Command line flags are applied by the caller.
type Config struct {
	Trim    Trim    `toml:"trim"`
	Output  Output  `toml:"output"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates and parses a configuration file and applies environment
// overrides. It reports the resolved path and whether the file existed. A
// missing file is not an error. The result is normalized but not validated,
// so callers can apply flags before calling Validate.
func Load(ctx context.Context, path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file).DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, "", false, fmt.Errorf("config: %w", err)
	}

	cfg.normalize()

	return &cfg, resolvedPath, exists, nil
}

// TrimOptions converts the trim settings for the core pipeline.
func (c *Config) TrimOptions() wavtrim.Options {
	return wavtrim.Options{
		DesiredLengthMS: c.Trim.LengthMS,
		MinVolume:       float32(c.Trim.MinVolume),
	}
}

// OutputExt returns the extension that replaces the input's for the output
// format. It is empty for WAV, where outputs keep the input base name.
func (c *Config) OutputExt() string {
	if c.Output.Format == FormatAIFF {
		return ".aif"
	}

	return ""
}

func (c *Config) normalize() {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))

	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}

	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}

		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, fmt.Errorf("config file %s does not exist", expanded)
			}

			return "", false, fmt.Errorf("stat config: %w", err)
		}

		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}

	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}

		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}

	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}

	return absolute, nil
}

// ExpandPath exposes the home-directory expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
