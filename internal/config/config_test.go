package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestNewConfig(t *testing.T) {
	c := NewConfig()

	assert.Equal(t, "0.0.0.0:5000", c.Http.Listen)
	assert.False(t, c.Http.CORS)
	assert.Equal(t, "build/web", c.Static.Root)
	assert.Equal(t, "index.html", c.Static.Index)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "5000", c.Port())
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name   string
		listen string
		port   string
		want   string
	}{
		{"No PORT", "0.0.0.0:5000", "", "0.0.0.0:5000"},
		{"PORT keeps host", "0.0.0.0:5000", "8080", "0.0.0.0:8080"},
		{"Bare port listen", ":5000", "9000", ":9000"},
		{"Unparsable listen", "garbage", "7000", ":7000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConfig()
			c.Http.Listen = tt.listen
			c.ApplyEnv(func(key string) string {
				if key == "PORT" {
					return tt.port
				}
				return ""
			})
			assert.Equal(t, tt.want, c.Http.Listen)
		})
	}
}

func TestAbsRoot(t *testing.T) {
	base := filepath.FromSlash("/opt/app")

	s := StaticConfig{Root: "build/web"}
	assert.Equal(t, filepath.Join(base, "build", "web"), s.AbsRoot(base))

	abs, err := filepath.Abs(filepath.FromSlash("/var/www/"))
	require.NoError(t, err)
	s = StaticConfig{Root: abs}
	assert.Equal(t, filepath.Clean(abs), s.AbsRoot(base))
}

func TestReadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "http:\n  listen: 127.0.0.1:8000\n  cors: true\nstatic:\n  root: /srv/site\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8000", c.Http.Listen)
	assert.True(t, c.Http.CORS)
	assert.Equal(t, "/srv/site", c.Static.Root)
	assert.Equal(t, "index.html", c.Static.Index)
	assert.Equal(t, "info", c.Log.Level)
}

func TestReadFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[static]\nindex = \"app.html\"\n\n[log]\nlevel = \"debug\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:5000", c.Http.Listen)
	assert.Equal(t, "build/web", c.Static.Root)
	assert.Equal(t, "app.html", c.Static.Index)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("http: [\n"), 0o644))
	_, err = ReadFile(bad)
	assert.ErrorContains(t, err, "failed to parse a YAML config file")

	badToml := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(badToml, []byte("[static\n"), 0o644))
	_, err = ReadFile(badToml)
	assert.ErrorContains(t, err, "failed to parse a TOML config file")
}
