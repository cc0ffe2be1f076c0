package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/noctarius/pgloader/pkg/consts"
)

type (
	// Format holds formatter preferences for the fmt command.
	Format struct {
		// IndentSize is the continuation-clause indent width
		IndentSize int `yaml:"indent_size,omitempty"`

		// LowercaseKeywords emits keywords in lowercase instead of the
		// default uppercase
		LowercaseKeywords bool `yaml:"lowercase_keywords,omitempty"`
	}

	// Config represents the project configuration for a load project.
	Config struct {
		// Commands is the load command file serving as the project entry point
		Commands string `yaml:"commands"`

		// Format holds formatter preferences
		Format Format `yaml:"format,omitempty"`
	}
)

// LoadConfig parses a project configuration from the provided io.Reader. The
// function expects YAML-formatted data; missing values fall back to
// defaults (commands.load, four-space indent, uppercase keywords).
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal project config")
	}

	if cfg.Commands == "" {
		cfg.Commands = consts.DefaultCommandsFile
	}
	if cfg.Format.IndentSize == 0 {
		cfg.Format.IndentSize = 4
	}

	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}
