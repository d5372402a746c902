package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		CodeStyle: CodeStyleConfig{
			IndentType:  "space",
			IndentWidth: 4,
			Lang:        "cpp",
		},
		Server: ServerConfig{
			Transport: "stdio",
			HTTPPort:  8080,
		},
		Logging: LoggingConfig{
			Mode:  "production",
			Level: "info",
		},
	}
}

func TestConfigValidation(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := validConfig()
		require.NoError(t, cfg.validate())
	})

	t.Run("InvalidServerTransport", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.Transport = "invalid"

		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid server.transport")
	})

	t.Run("InvalidHTTPPort", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.Transport = "http"
		cfg.Server.HTTPPort = 0

		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid server.http_port")
	})

	t.Run("PortIgnoredForStdio", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.HTTPPort = -1
		require.NoError(t, cfg.validate())
	})

	t.Run("InvalidLoggingMode", func(t *testing.T) {
		cfg := validConfig()
		cfg.Logging.Mode = "invalid_mode"

		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid logging.mode")
	})

	t.Run("InvalidLogLevel", func(t *testing.T) {
		cfg := validConfig()
		cfg.Logging.Level = "invalid_level"

		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid logging.level")
	})

	t.Run("CodeStyleNotValidatedHere", func(t *testing.T) {
		cfg := validConfig()
		cfg.CodeStyle.IndentType = "bogus"
		require.NoError(t, cfg.validate())
	})
}

func TestLoad(t *testing.T) {
	t.Run("ExplicitFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
codestyle:
  indent_type: tab
  indent_width: 1
  lang: java
  workspace_dir: /tmp/ws
server:
  transport: http
  http_port: 9090
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "tab", cfg.CodeStyle.IndentType)
		assert.Equal(t, 1, cfg.CodeStyle.IndentWidth)
		assert.Equal(t, "java", cfg.CodeStyle.Lang)
		assert.Equal(t, "/tmp/ws", cfg.CodeStyle.WorkspaceDir)
		assert.Empty(t, cfg.CodeStyle.TemplateFile)
		assert.Equal(t, "http", cfg.Server.Transport)
		assert.Equal(t, 9090, cfg.Server.HTTPPort)
		assert.Equal(t, "cli", cfg.Logging.Mode)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("MissingExplicitFile", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})

	t.Run("DefaultsWithoutFile", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("HOME", t.TempDir())

		cfg, err := New()
		require.NoError(t, err)
		assert.Equal(t, "space", cfg.CodeStyle.IndentType)
		assert.Equal(t, 4, cfg.CodeStyle.IndentWidth)
		assert.Equal(t, "cpp", cfg.CodeStyle.Lang)
		assert.Equal(t, "stdio", cfg.Server.Transport)
	})

	t.Run("EnvOverride", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("HOME", t.TempDir())
		t.Setenv("ATCODER_TOOLS_CODESTYLE_LANG", "java")
		t.Setenv("ATCODER_TOOLS_CODESTYLE_INDENT_WIDTH", "2")

		cfg, err := New()
		require.NoError(t, err)
		assert.Equal(t, "java", cfg.CodeStyle.Lang)
		assert.Equal(t, 2, cfg.CodeStyle.IndentWidth)
	})

	t.Run("InvalidFileValues", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("logging:\n  mode: loud\n"), 0o600))

		_, err := Load(path, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config validation error")
	})
}

func TestLoadWithFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("codestyle:\n  lang: java\n  indent_width: 8\n"), 0o600))

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("lang", "", "")
	flags.Int("indent-width", 4, "")
	flags.String("unrelated", "", "")
	require.NoError(t, flags.Parse([]string{"--lang", "cpp"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "cpp", cfg.CodeStyle.Lang)
	// unchanged flags do not shadow the file
	assert.Equal(t, 8, cfg.CodeStyle.IndentWidth)
}
