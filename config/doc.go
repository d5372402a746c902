// Package config provides application configuration management.
//
// The config package loads the application's configuration from a YAML file
// with viper. It covers the code style section consumed by the code
// generator, the MCP server transport and the logger settings. Every value
// can be overridden through ATCODER_TOOLS_* environment variables.
//
// Usage:
//
//	cfg, err := config.Load("/etc/atcoder-tools/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Language: %s\n", cfg.CodeStyle.Lang)
package config
