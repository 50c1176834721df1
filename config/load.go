package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/teranos/rome/errors"
	"github.com/teranos/rome/logger"
)

const (
	// ProjectConfigName is searched for from the working directory upward
	ProjectConfigName = "rome.toml"
	// UserConfigDir is created under the home directory
	UserConfigDir = ".rome"
	// UserConfigName lives in UserConfigDir
	UserConfigName = "config.toml"
	// EnvPrefix prefixes every environment override
	EnvPrefix = "ROME"
)

// SystemConfigPath is the lowest-precedence config file. Tests override it.
var SystemConfigPath = "/etc/rome/config.toml"

var (
	mu            sync.Mutex
	globalConfig  *Config
	viperInstance *viper.Viper
	loadedFiles   []string
)

// Load reads the configuration from all sources. The result is cached until
// Reset is called.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalConfig != nil {
		return globalConfig, nil
	}

	v, err := initViper()
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &cfg
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path on top of the
// defaults, ignoring every other source.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}
	return &cfg, nil
}

// GetViper returns the Viper instance backing Load
func GetViper() (*viper.Viper, error) {
	mu.Lock()
	defer mu.Unlock()
	return initViper()
}

// Reset clears the cached configuration
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	globalConfig = nil
	viperInstance = nil
	loadedFiles = nil
}

// LoadedFiles returns the config files merged by the last Load, lowest
// precedence first.
func LoadedFiles() []string {
	mu.Lock()
	defer mu.Unlock()
	return append([]string(nil), loadedFiles...)
}

// initViper must be called with mu held.
func initViper() (*viper.Viper, error) {
	if viperInstance != nil {
		return viperInstance, nil
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigType("toml")

	SetDefaults(v)

	files, err := mergeConfigFiles(v)
	if err != nil {
		return nil, err
	}

	viperInstance = v
	loadedFiles = files
	return v, nil
}

// mergeConfigFiles merges every existing config file in precedence order.
// A file that exists but cannot be parsed is an error.
func mergeConfigFiles(v *viper.Viper) ([]string, error) {
	var merged []string
	for _, path := range CandidatePaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, errors.WithHintf(
				errors.Wrapf(err, "failed to read config file %s", path),
				"fix or remove %s", path)
		}
		logger.Debugw("Merged config file", logger.FieldFile, path)
		merged = append(merged, path)
	}
	return merged, nil
}

// CandidatePaths lists every config file location in precedence order,
// whether or not the file exists. The project entry is present only when a
// rome.toml was found.
func CandidatePaths() []string {
	paths := []string{SystemConfigPath}
	if user := UserConfigPath(); user != "" {
		paths = append(paths, user)
	}
	if project := findProjectConfig(); project != "" {
		paths = append(paths, project)
	}
	return paths
}

// UserConfigPath returns ~/.rome/config.toml, or "" without a home directory
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigName)
}

// findProjectConfig walks up from the working directory looking for rome.toml
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, ProjectConfigName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
