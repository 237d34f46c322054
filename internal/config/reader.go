package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile reads a YAML config, or a TOML one when the path ends in .toml.
// Keys missing from the file keep their defaults.
func ReadFile(path string) (*Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read a config file, path=%q", path)
	}

	c := NewConfig()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err = toml.Unmarshal(bytes, c); err != nil {
			return nil, errors.Wrapf(err, "failed to parse a TOML config file, path=%q", path)
		}
		return c, nil
	}

	if err = yaml.Unmarshal(bytes, c); err != nil {
		return nil, errors.Wrapf(err, "failed to parse a YAML config file, path=%q", path)
	}
	return c, nil
}
