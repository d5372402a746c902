// Package mcpserver exposes the scaffolder over the Model Context Protocol.
//
// The server uses the mark3labs/mcp-go library and registers three tools:
// generate_code returns starter code for a YAML problem description,
// scaffold_problem also writes it into the workspace, and list_languages
// reports the supported target languages.
package mcpserver
