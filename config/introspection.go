package config

import "os"

// SourceKind names one layer of the configuration cascade
type SourceKind string

const (
	SourceDefault SourceKind = "DEFAULT"
	SourceSystem  SourceKind = "SYSTEM"
	SourceUser    SourceKind = "USER"
	SourceProject SourceKind = "PROJECT"
	SourceEnv     SourceKind = "ENV"
)

// Source describes one config file location
type Source struct {
	Kind   SourceKind `json:"kind" yaml:"kind" toml:"kind"`
	Path   string     `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"`
	Exists bool       `json:"exists" yaml:"exists" toml:"exists"`
}

// Sources lists the file-backed layers in precedence order (lowest first).
// The project layer is reported even when no rome.toml was found.
func Sources() []Source {
	sources := []Source{fileSource(SourceSystem, SystemConfigPath)}
	if user := UserConfigPath(); user != "" {
		sources = append(sources, fileSource(SourceUser, user))
	}
	if project := findProjectConfig(); project != "" {
		sources = append(sources, fileSource(SourceProject, project))
	} else {
		sources = append(sources, Source{Kind: SourceProject})
	}
	return sources
}

func fileSource(kind SourceKind, path string) Source {
	_, err := os.Stat(path)
	return Source{Kind: kind, Path: path, Exists: err == nil}
}
