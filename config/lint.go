package config

import (
	"github.com/BurntSushi/toml"

	"github.com/teranos/rome/errors"
)

// FileReport is the result of checking one config file strictly
type FileReport struct {
	Path        string   `json:"path" yaml:"path" toml:"path"`
	UnknownKeys []string `json:"unknown_keys,omitempty" yaml:"unknown_keys,omitempty" toml:"unknown_keys,omitempty"`
}

// CheckFile decodes path strictly against Config. Keys that viper would
// silently ignore (typos such as display.locael) are reported in
// UnknownKeys; syntax and type errors are returned with their position.
func CheckFile(path string) (FileReport, error) {
	report := FileReport{Path: path}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			return report, errors.WithHint(errors.Wrapf(err, "invalid TOML in %s", path), perr.ErrorWithUsage())
		}
		return report, errors.Wrapf(err, "failed to decode %s", path)
	}

	for _, key := range md.Undecoded() {
		report.UnknownKeys = append(report.UnknownKeys, key.String())
	}
	return report, nil
}

// CheckLoadedFiles runs CheckFile on every file merged by the last Load
func CheckLoadedFiles() ([]FileReport, error) {
	var reports []FileReport
	for _, path := range LoadedFiles() {
		report, err := CheckFile(path)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
