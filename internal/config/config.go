package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Extract controls the metadata pipeline.
type Extract struct {
	FinalLinePolicy string `toml:"final_line_policy"`
	TextEncoding    string `toml:"text_encoding"`
	InstrumentTag   int    `toml:"instrument_tag"`
	Workers         int    `toml:"workers"`
	Strict          bool   `toml:"strict"`
}

// Output controls where and how JSON sidecars are written.
type Output struct {
	Dir    string `toml:"dir"`
	Suffix string `toml:"suffix"`
	Indent int    `toml:"indent"`
	Clean  bool   `toml:"clean"`
}

// Index configures the SQLite extraction index.
type Index struct {
	Path string `toml:"path"`
}

// Logging configures the CLI logger.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// View configures the terminal feature table.
type View struct {
	Features      []string `toml:"features"`
	FallbackLimit int      `toml:"fallback_limit"`
}

// Config is the top-level semmeta configuration.
type Config struct {
	Extract Extract `toml:"extract"`
	Output  Output  `toml:"output"`
	Index   Index   `toml:"index"`
	Logging Logging `toml:"logging"`
	View    View    `toml:"view"`
}

const (
	defaultConfigPath  = "~/.config/semmeta/config.toml"
	projectConfigName  = "semmeta.toml"
	defaultIndexName   = "index.db"
	defaultAppDataName = "semmeta"
)

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. It returns the
// config, the path it resolved to, and whether that file existed. A missing
// file yields the defaults.
func Load(path string) (*Config, string, bool, error) {
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

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return nil, "", false, fmt.Errorf("parse config: %s", strict.String())
			}
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
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
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func defaultIndexPath() string {
	if base, ok := os.LookupEnv("XDG_DATA_HOME"); ok && strings.TrimSpace(base) != "" {
		return filepath.Join(base, defaultAppDataName, defaultIndexName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("~", ".local", "share", defaultAppDataName, defaultIndexName)
	}
	return filepath.Join(home, ".local", "share", defaultAppDataName, defaultIndexName)
}

// CreateSample writes a sample configuration file to the specified location.
// An existing file is left untouched and reported as an error.
func CreateSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
