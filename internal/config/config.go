package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// HomeEnv overrides the configured script home directory when set.
const HomeEnv = "CAPTURECLI_HOME"

// Config holds all configurable CaptureCLI settings.
type Config struct {
	HomeDir      string `json:"home_dir"`      // directory holding captured scripts
	Shell        string `json:"shell"`         // shell used to run captured commands
	JournalLimit int    `json:"journal_limit"` // capture runs kept in the journal
}

// Defaults returns sensible default configuration values.
func Defaults() Config {
	return Config{
		HomeDir:      filepath.Join("~", "CaptureCLI"),
		Shell:        "sh",
		JournalLimit: 200,
	}
}

// LoadGlobal reads ~/.config/capturecli/config.json.
// Returns defaults if the file is absent.
func LoadGlobal() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(home, ".config", "capturecli", "config.json")
	return loadFile(path, true)
}

// LoadProject reads .capturecliconfig in the current working directory.
// Returns nil (no error) if the file is absent.
func LoadProject() (*Config, error) {
	return loadFile(".capturecliconfig", false)
}

// Load merges the global and project files and applies the environment.
func Load() (Config, error) {
	global, err := LoadGlobal()
	if err != nil {
		return Config{}, err
	}
	project, err := LoadProject()
	if err != nil {
		return Config{}, err
	}
	cfg := Merge(global, project)
	if v := os.Getenv(HomeEnv); v != "" {
		cfg.HomeDir = v
	}
	return cfg, nil
}

// loadFile reads and parses a JSON config file at path.
// If returnDefaults is true, returns defaults when the file is absent.
// If returnDefaults is false, returns nil when the file is absent.
func loadFile(path string, returnDefaults bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if returnDefaults {
				d := Defaults()
				return &d, nil
			}
			return nil, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &cfg, nil
}

// Merge combines global and project configs, with project taking precedence.
// Missing keys fall back to global, then defaults.
func Merge(global, project *Config) Config {
	result := Defaults()
	for _, c := range []*Config{global, project} {
		if c == nil {
			continue
		}
		if c.HomeDir != "" {
			result.HomeDir = c.HomeDir
		}
		if c.Shell != "" {
			result.Shell = c.Shell
		}
		if c.JournalLimit > 0 {
			result.JournalLimit = c.JournalLimit
		}
	}
	return result
}

// ResolveHome returns HomeDir with a leading "~" expanded to the user's home.
func (c Config) ResolveHome() (string, error) {
	dir := c.HomeDir
	if dir == "" {
		dir = Defaults().HomeDir
	}
	if dir == "~" || strings.HasPrefix(dir, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	return dir, nil
}

// ParseError is returned when a config file exists but cannot be parsed.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return "failed to parse config file " + e.Path + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
