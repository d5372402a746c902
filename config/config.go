package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides,
// e.g. ATCODER_TOOLS_CODESTYLE_LANG=java.
const EnvPrefix = "ATCODER_TOOLS"

// Config represents the application configuration
type Config struct {
	CodeStyle CodeStyleConfig `mapstructure:"codestyle"`
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// CodeStyleConfig holds the raw code style options. They are validated when
// the style is built by the codegen package.
type CodeStyleConfig struct {
	IndentType        string `mapstructure:"indent_type"`
	IndentWidth       int    `mapstructure:"indent_width"`
	CodeGeneratorFile string `mapstructure:"code_generator_file"`
	TemplateFile      string `mapstructure:"template_file"`
	WorkspaceDir      string `mapstructure:"workspace_dir"`
	Lang              string `mapstructure:"lang"`
}

// ServerConfig holds MCP server configuration
type ServerConfig struct {
	Transport string `mapstructure:"transport"`
	HTTPPort  int    `mapstructure:"http_port"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Mode  string `mapstructure:"mode"`
	Level string `mapstructure:"level"`
}

// FlagKeys maps command line flag names to configuration keys. Flags that
// are set on the command line take precedence over the file and environment.
var FlagKeys = map[string]string{
	"indent-type":  "codestyle.indent_type",
	"indent-width": "codestyle.indent_width",
	"generator":    "codestyle.code_generator_file",
	"template":     "codestyle.template_file",
	"workspace":    "codestyle.workspace_dir",
	"lang":         "codestyle.lang",
	"transport":    "server.transport",
	"port":         "server.http_port",
	"log-mode":     "logging.mode",
	"log-level":    "logging.level",
}

// New loads the configuration from the default search paths
func New() (*Config, error) {
	return Load("", nil)
}

// Load loads and validates the configuration. When path is empty the file
// "config.yaml" is searched in the working directory, ./config and
// $HOME/.atcoder-tools; a missing file is not an error. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.atcoder-tools")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if flags != nil {
		for name, key := range FlagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("error binding flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// If config file not found, continue with defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("codestyle.indent_type", "space")
	v.SetDefault("codestyle.indent_width", 4)
	v.SetDefault("codestyle.code_generator_file", "")
	v.SetDefault("codestyle.template_file", "")
	v.SetDefault("codestyle.workspace_dir", "")
	v.SetDefault("codestyle.lang", "cpp")

	v.SetDefault("server.transport", "stdio")
	v.SetDefault("server.http_port", 8080)

	v.SetDefault("logging.mode", "cli")
	v.SetDefault("logging.level", "info")
}

// validate ensures the configuration is valid
func (c *Config) validate() error {
	if c.Server.Transport != "stdio" && c.Server.Transport != "http" {
		return fmt.Errorf("invalid server.transport: %s, must be 'stdio' or 'http'", c.Server.Transport)
	}

	if c.Server.Transport == "http" && (c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535) {
		return fmt.Errorf("invalid server.http_port: %d", c.Server.HTTPPort)
	}

	switch c.Logging.Mode {
	case "cli", "development", "production":
	default:
		return fmt.Errorf("invalid logging.mode: %s, must be 'cli', 'development' or 'production'", c.Logging.Mode)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error", "dpanic", "panic", "fatal":
	default:
		return fmt.Errorf("invalid logging.level: %s", c.Logging.Level)
	}

	return nil
}
