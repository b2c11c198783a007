package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dusk-indust/irvec/internal/embed"
)

// ProjectConfig holds project-level settings loaded from irvec.yml.
type ProjectConfig struct {
	// VocabPath is the JSON vocabulary file used when the CLI flag is not
	// given.
	VocabPath string `yaml:"vocabPath,omitempty"`
	// Weights overrides the default aggregation weights.
	Weights *embed.Weights `yaml:"weights,omitempty"`
	// Level is the default embedding granularity: inst, bb or func.
	Level string `yaml:"level,omitempty"`
	// Mode is the aggregation mode: sym (default) or fa.
	Mode string `yaml:"mode,omitempty"`
	// GraphDB is an optional KuzuDB path to persist extracted relation
	// graphs into.
	GraphDB string `yaml:"graphDb,omitempty"`
	Verbose bool   `yaml:"verbose,omitempty"`
}

// Load attempts to read irvec.yml or irvec.yaml from the given directory.
// Returns a zero-value config (not an error) if no config file exists.
func Load(dir string) (*ProjectConfig, error) {
	for _, name := range []string{"irvec.yml", "irvec.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg ProjectConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &ProjectConfig{}, nil
}
