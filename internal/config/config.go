// Package config resolves wedlinker's configuration from JSONC files and
// command line overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/tailscale/hujson"
)

// Config errors.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrDataFileEmpty      = errors.New("data_file cannot be empty")
	ErrLogLevel           = errors.New("unknown log_level")
	ErrLogFormat          = errors.New("unknown log_format")
)

// LogLevels lists the accepted log_level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// LogFormats lists the accepted log_format values.
var LogFormats = []string{"text", "json"}

// Config holds all configuration options.
type Config struct {
	DataFile    string `json:"data_file"`
	SampleData  *bool  `json:"sample_data,omitempty"`
	LogLevel    string `json:"log_level,omitempty"`
	LogFormat   string `json:"log_format,omitempty"`
	HistoryFile string `json:"history_file,omitempty"`

	// Resolved paths (computed, not serialized)
	EffectiveCwd   string `json:"-"`
	DataFileAbs    string `json:"-"`
	HistoryFileAbs string `json:"-"`

	Sources Sources `json:"-"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string
	Project string
}

// UseSampleData reports whether a missing data file starts from sample data.
func (c Config) UseSampleData() bool {
	return c.SampleData == nil || *c.SampleData
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		DataFile:  filepath.Join("data", "wedlinker.json"),
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// FileName is the project config file name.
const FileName = ".wedlinker.json"

// globalPath returns $XDG_CONFIG_HOME/wedlinker/config.json, falling back to
// ~/.config/wedlinker/config.json. Empty when neither variable is set.
func globalPath(env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "wedlinker", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "wedlinker", "config.json")
	}

	return ""
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	WorkDirOverride  string // -C/--cwd
	ConfigPath       string // -c/--config
	DataFileOverride string // --data-file
	LogLevelOverride string // --log-level
	Env              map[string]string
}

// Load resolves the configuration. Later sources win:
// defaults, global config, project config (or the explicit -c file), flags.
//
// All paths in the returned Config are absolute.
func Load(input LoadInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return Config{}, fmt.Errorf("cannot resolve working directory: %w", err)
	}

	cfg := Default()

	global, gpath, err := loadGlobal(input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = gpath
	cfg = merge(cfg, global)

	project, ppath, err := loadProject(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = ppath
	cfg = merge(cfg, project)

	if input.DataFileOverride != "" {
		cfg.DataFile = input.DataFileOverride
	}

	if input.LogLevelOverride != "" {
		cfg.LogLevel = input.LogLevelOverride
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	cfg.EffectiveCwd = workDir
	cfg.DataFileAbs = absFrom(workDir, cfg.DataFile)

	if cfg.HistoryFile != "" {
		cfg.HistoryFileAbs = absFrom(workDir, cfg.HistoryFile)
	}

	return cfg, nil
}

func absFrom(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(dir, path)
}

func loadGlobal(env map[string]string) (Config, string, error) {
	path := globalPath(env)
	if path == "" {
		return Config{}, "", nil
	}

	cfg, loaded, err := loadFile(path, false)
	if err != nil || !loaded {
		return Config{}, "", err
	}

	return cfg, path, nil
}

// loadProject loads .wedlinker.json from workDir, or the explicit config
// file when configPath is set. The explicit file must exist.
func loadProject(workDir, configPath string) (Config, string, error) {
	path := filepath.Join(workDir, FileName)
	mustExist := false

	if configPath != "" {
		path = absFrom(workDir, configPath)
		mustExist = true

		if _, err := os.Stat(path); err != nil {
			return Config{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}
	}

	cfg, loaded, err := loadFile(path, mustExist)
	if err != nil || !loaded {
		return Config{}, "", err
	}

	return cfg, path, nil
}

// loadFile reads one config file. A missing optional file yields a zero
// config and loaded=false.
func loadFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from flags or env
	if err != nil {
		if mustExist {
			return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
		}

		return Config{}, false, nil
	}

	cfg, explicitEmpty, err := parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	if explicitEmpty["data_file"] {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, ErrDataFileEmpty)
	}

	return cfg, true, nil
}

func parse(data []byte) (Config, map[string]bool, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, nil, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, nil, fmt.Errorf("invalid JSON: %w", err)
	}

	var raw map[string]any

	_ = json.Unmarshal(standardized, &raw)

	explicitEmpty := make(map[string]bool)

	if val, ok := raw["data_file"].(string); ok && val == "" {
		explicitEmpty["data_file"] = true
	}

	return cfg, explicitEmpty, nil
}

func merge(base, overlay Config) Config {
	if overlay.DataFile != "" {
		base.DataFile = overlay.DataFile
	}

	if overlay.SampleData != nil {
		base.SampleData = overlay.SampleData
	}

	if overlay.LogLevel != "" {
		base.LogLevel = overlay.LogLevel
	}

	if overlay.LogFormat != "" {
		base.LogFormat = overlay.LogFormat
	}

	if overlay.HistoryFile != "" {
		base.HistoryFile = overlay.HistoryFile
	}

	return base
}

func validate(cfg Config) error {
	if cfg.DataFile == "" {
		return ErrDataFileEmpty
	}

	if !slices.Contains(LogLevels, cfg.LogLevel) {
		return fmt.Errorf("%w: %q", ErrLogLevel, cfg.LogLevel)
	}

	if !slices.Contains(LogFormats, cfg.LogFormat) {
		return fmt.Errorf("%w: %q", ErrLogFormat, cfg.LogFormat)
	}

	return nil
}
