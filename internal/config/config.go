package config

import (
	"net"
	"path/filepath"
)

type Config struct {
	Http   HttpConfig   `yaml:"http" toml:"http"`
	Static StaticConfig `yaml:"static" toml:"static"`
	Log    LogConfig    `yaml:"log" toml:"log"`
}

type HttpConfig struct {
	Listen string `yaml:"listen" toml:"listen"`
	CORS   bool   `yaml:"cors" toml:"cors"`
}

type StaticConfig struct {
	// Root is the document root. Relative roots are resolved against the
	// directory of the server executable.
	Root  string `yaml:"root" toml:"root"`
	Index string `yaml:"index" toml:"index"`
}

type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
}

func NewConfig() *Config {
	return &Config{
		Http:   HttpConfig{Listen: "0.0.0.0:5000"},
		Static: StaticConfig{Root: "build/web", Index: "index.html"},
		Log:    LogConfig{Level: "info"},
	}
}

// ApplyEnv overrides the listen port with $PORT when it is set.
func (c *Config) ApplyEnv(getenv func(string) string) {
	port := getenv("PORT")
	if port == "" {
		return
	}

	host, _, err := net.SplitHostPort(c.Http.Listen)
	if err != nil {
		host = ""
	}
	c.Http.Listen = net.JoinHostPort(host, port)
}

// Port returns the port part of Http.Listen.
func (c *Config) Port() string {
	_, port, err := net.SplitHostPort(c.Http.Listen)
	if err != nil {
		return ""
	}
	return port
}

func (c *StaticConfig) AbsRoot(base string) string {
	if filepath.IsAbs(c.Root) {
		return filepath.Clean(c.Root)
	}
	return filepath.Join(base, c.Root)
}
