package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the unified application configuration
type Config struct {
	Dirs          []string `yaml:"dirs"`
	Extensions    []string `yaml:"extensions"`
	ViewerCmd     []string `yaml:"viewer_cmd"`
	PostReviewCmd []string `yaml:"post_review_cmd"`
	DefaultView   string   `yaml:"default_view"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	Dirs []string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		Extensions:  []string{".txt", ".md"},
		DefaultView: "queues",
	}

	// Config file for base values
	if configPath, err := getConfigPath(); err == nil {
		if fileConfig, err := loadConfigFile(configPath); err == nil {
			if len(fileConfig.Dirs) > 0 {
				cfg.Dirs = expandPaths(fileConfig.Dirs)
			}
			if len(fileConfig.Extensions) > 0 {
				cfg.Extensions = fileConfig.Extensions
			}
			if len(fileConfig.ViewerCmd) > 0 {
				cfg.ViewerCmd = fileConfig.ViewerCmd
			}
			if len(fileConfig.PostReviewCmd) > 0 {
				cfg.PostReviewCmd = fileConfig.PostReviewCmd
			}
			if fileConfig.DefaultView != "" {
				cfg.DefaultView = fileConfig.DefaultView
			}
		}
	}

	// Environment variables override the config file
	if envDirs := os.Getenv("REVU_DIRS"); envDirs != "" {
		cfg.Dirs = expandPaths(ParseColonSeparated(envDirs))
	}

	// CLI flags override everything
	if len(flags.Dirs) > 0 {
		cfg.Dirs = expandPaths(flags.Dirs)
	}

	// Default directory if nothing configured
	if len(cfg.Dirs) == 0 {
		defaultDir, err := GetDefaultDir()
		if err != nil {
			return nil, err
		}
		cfg.Dirs = []string{defaultDir}
	}

	return cfg, nil
}

// GetDefaultDir returns the default notes directory path
func GetDefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "revu"), nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "revu", "config.yaml"), nil
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseColonSeparated splits a PATH-style list, dropping empty entries
func ParseColonSeparated(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ":") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseCommaSeparated splits a comma-separated flag value
func ParseCommaSeparated(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// expandPaths expands a leading ~ in each path
func expandPaths(paths []string) []string {
	home, err := os.UserHomeDir()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if err == nil && strings.HasPrefix(p, "~") {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
		out = append(out, p)
	}
	return out
}
