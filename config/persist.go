package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/teranos/rome/errors"
	"github.com/teranos/rome/logger"
)

const backupCount = 3

// SetUserValue writes key=value into the user config file (~/.rome/config.toml).
//
// The key must be a known setting; the raw value is converted to the type of
// the setting's default. The resulting file is validated before it is
// written, and the previous file is kept as a rotating .back1-.back3 backup.
func SetUserValue(key, raw string) (string, error) {
	path := UserConfigPath()
	if path == "" {
		return "", errors.New("could not determine home directory")
	}

	key = strings.ToLower(key)
	defaults := viper.New()
	SetDefaults(defaults)
	if !slices.Contains(defaults.AllKeys(), key) {
		return "", errors.WithHintf(errors.Newf("unknown configuration key %q", key),
			"known keys: %s", strings.Join(defaults.AllKeys(), ", "))
	}

	value, err := convertLike(defaults.Get(key), raw)
	if err != nil {
		return "", errors.Wrapf(err, "invalid value for %s", key)
	}

	settings, err := readTOMLMap(path)
	if err != nil {
		return "", err
	}
	setNested(settings, strings.Split(key, "."), value)

	if err := validateSettings(settings); err != nil {
		return "", err
	}

	data, err := toml.Marshal(settings)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", errors.Wrap(err, "failed to create config directory")
	}
	if err := createBackup(path); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}

	logger.Infow("Config value saved", "key", key, logger.FieldFile, path)
	Reset()
	return path, nil
}

func readTOMLMap(path string) (map[string]interface{}, error) {
	settings := map[string]interface{}{}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return settings, nil
}

func setNested(m map[string]interface{}, path []string, value interface{}) {
	for _, part := range path[:len(path)-1] {
		child, ok := m[part].(map[string]interface{})
		if !ok {
			child = map[string]interface{}{}
			m[part] = child
		}
		m = child
	}
	m[path[len(path)-1]] = value
}

// validateSettings checks a settings map as if it were the only config file.
func validateSettings(settings map[string]interface{}) error {
	v := viper.New()
	SetDefaults(v)
	if err := v.MergeConfigMap(settings); err != nil {
		return errors.Wrap(err, "failed to merge settings")
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return errors.Wrap(err, "failed to unmarshal settings")
	}
	return cfg.Validate()
}

func convertLike(def interface{}, raw string) (interface{}, error) {
	switch def.(type) {
	case bool:
		return strconv.ParseBool(raw)
	case int:
		return strconv.Atoi(raw)
	case string:
		return raw, nil
	default:
		return nil, errors.Newf("unsupported setting type %T", def)
	}
}

// createBackup rotates backups (.back1 newest ... .back3 oldest) before
// the config file is modified.
func createBackup(configPath string) error {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil
	}

	oldest := fmt.Sprintf("%s.back%d", configPath, backupCount)
	if err := os.Remove(oldest); err != nil && !os.IsNotExist(err) {
		logger.Warnw("Failed to delete old config backup", logger.FieldFile, oldest, logger.FieldError, err)
	}

	for i := backupCount - 1; i >= 1; i-- {
		from := fmt.Sprintf("%s.back%d", configPath, i)
		to := fmt.Sprintf("%s.back%d", configPath, i+1)
		if _, err := os.Stat(from); err == nil {
			if err := os.Rename(from, to); err != nil {
				return errors.Wrapf(err, "failed to rotate %s", from)
			}
		}
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}
	if err := os.WriteFile(configPath+".back1", content, 0644); err != nil {
		return errors.Wrap(err, "failed to create .back1")
	}
	return nil
}

// IsBackupFile reports whether path is one of the rotating config backups
func IsBackupFile(path string) bool {
	ext := filepath.Ext(path)
	if !strings.HasPrefix(ext, ".back") {
		return false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(ext, ".back"))
	return err == nil && n >= 1 && n <= backupCount
}
