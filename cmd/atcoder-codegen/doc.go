// Package main is the entry point for atcoder-codegen.
//
// atcoder-codegen writes starter source files for competitive-programming
// problems. It reads the code style from a YAML config file, generates code
// from a YAML problem description with a built-in C++/Java generator or a
// JavaScript plugin, and can serve the same functionality as an MCP server
// over stdio or HTTP.
//
// The application uses Uber's fx framework for dependency injection, cobra
// for the command line, zap for structured logging and viper for
// configuration.
package main
