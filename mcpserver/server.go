// Package mcpserver exposes the scaffolder over the Model Context Protocol.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/koba-e964/atcoder-tools/codegen"
	"github.com/koba-e964/atcoder-tools/config"
	"github.com/koba-e964/atcoder-tools/problem"
	"github.com/koba-e964/atcoder-tools/scaffold"
	"github.com/koba-e964/atcoder-tools/workspace"
)

// MCPServer represents the MCP server
type MCPServer struct {
	config    *config.Config
	logger    *zap.Logger
	scaffold  *scaffold.Service
	mcpServer *server.MCPServer
}

// New creates a new MCPServer
func New(cfg *config.Config, logger *zap.Logger, svc *scaffold.Service) (*MCPServer, error) {
	s := &MCPServer{
		config:   cfg,
		logger:   logger,
		scaffold: svc,
	}

	style := svc.Style()
	logger.Info("configuration loaded",
		zap.String("server.transport", cfg.Server.Transport),
		zap.Int("server.http_port", cfg.Server.HTTPPort),
		zap.String("codestyle.lang", style.Language().String()),
		zap.String("codestyle.indent_type", string(style.IndentType())),
		zap.Int("codestyle.indent_width", style.IndentWidth()),
		zap.String("codestyle.template_file", style.TemplatePath()),
		zap.String("codestyle.code_generator_file", style.GeneratorPath()),
		zap.String("codestyle.workspace_dir", style.WorkspaceDir()),
	)

	s.mcpServer = server.NewMCPServer("atcoder-codegen", "Starter code generator for competitive programming")

	s.registerGenerateCodeTool()
	s.registerScaffoldProblemTool()
	s.registerListLanguagesTool()

	return s, nil
}

var problemProperty = map[string]any{
	"type":        "string",
	"description": "YAML problem description with 'format' and 'constants' sections",
}

// registerGenerateCodeTool registers the generate_code tool
func (s *MCPServer) registerGenerateCodeTool() {
	tool := mcp.Tool{
		Name:        "generate_code",
		Description: "Generate starter source code for a problem in the configured language",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"problem": problemProperty,
			},
			Required: []string{"problem"},
		},
	}

	s.mcpServer.AddTool(tool, s.handleGenerateCode)
}

// registerScaffoldProblemTool registers the scaffold_problem tool
func (s *MCPServer) registerScaffoldProblemTool() {
	tool := mcp.Tool{
		Name:        "scaffold_problem",
		Description: "Generate starter source code and write it into the workspace directory",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"contest_id": map[string]any{
					"type":        "string",
					"description": "Contest identifier, e.g. abc100",
				},
				"problem_id": map[string]any{
					"type":        "string",
					"description": "Problem identifier within the contest, e.g. A",
				},
				"problem": problemProperty,
			},
			Required: []string{"contest_id", "problem_id", "problem"},
		},
	}

	s.mcpServer.AddTool(tool, s.handleScaffoldProblem)
}

// registerListLanguagesTool registers the list_languages tool
func (s *MCPServer) registerListLanguagesTool() {
	tool := mcp.Tool{
		Name:        "list_languages",
		Description: "List supported target languages and the configured one",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{},
		},
	}

	s.mcpServer.AddTool(tool, s.handleListLanguages)
}

// handleGenerateCode handles the generate_code tool
func (s *MCPServer) handleGenerateCode(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := s.decodeProblem(request)
	if err != nil {
		return nil, err
	}

	code, err := s.scaffold.Generate(p)
	if err != nil {
		s.logger.Error("code generation failed", zap.Error(err))
		return errorResult(fmt.Sprintf("Generation failed: %v", err)), nil
	}

	return textResult(code), nil
}

// handleScaffoldProblem handles the scaffold_problem tool
func (s *MCPServer) handleScaffoldProblem(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contestID, err := request.RequireString("contest_id")
	if err != nil {
		return nil, fmt.Errorf("contest_id parameter is required: %w", err)
	}

	problemID, err := request.RequireString("problem_id")
	if err != nil {
		return nil, fmt.Errorf("problem_id parameter is required: %w", err)
	}

	p, err := s.decodeProblem(request)
	if err != nil {
		return nil, err
	}

	s.logger.Info("scaffold requested",
		zap.String("contest", contestID),
		zap.String("problem", problemID))

	path, err := s.scaffold.Scaffold(contestID, problemID, p)
	if errors.Is(err, workspace.ErrFileExists) {
		return jsonResult(scaffoldResult{Path: path, Created: false})
	}
	if err != nil {
		s.logger.Error("scaffold failed",
			zap.Error(err),
			zap.String("contest", contestID),
			zap.String("problem", problemID))
		return errorResult(fmt.Sprintf("Scaffold failed: %v", err)), nil
	}

	return jsonResult(scaffoldResult{Path: path, Created: true})
}

// handleListLanguages handles the list_languages tool
func (s *MCPServer) handleListLanguages(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names := make([]string, 0, len(codegen.SupportedLanguages()))
	for _, l := range codegen.SupportedLanguages() {
		names = append(names, l.String())
	}

	return jsonResult(languagesResult{
		Supported:  names,
		Configured: s.scaffold.Style().Language().String(),
	})
}

func (s *MCPServer) decodeProblem(request mcp.CallToolRequest) (*problem.Problem, error) {
	raw, err := request.RequireString("problem")
	if err != nil {
		return nil, fmt.Errorf("problem parameter is required: %w", err)
	}

	p, err := problem.Decode(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid problem: %w", err)
	}
	return p, nil
}

type scaffoldResult struct {
	Path    string `json:"path"`
	Created bool   `json:"created"`
}

type languagesResult struct {
	Supported  []string `json:"supported"`
	Configured string   `json:"configured"`
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return textResult(string(data)), nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	result := textResult(text)
	result.IsError = true
	return result
}

// ServeStdio starts the server on stdio
func (s *MCPServer) ServeStdio() error {
	s.logger.Info("starting MCP server on stdio")
	return server.ServeStdio(s.mcpServer)
}

// ServeHTTP starts the server on HTTP
func (s *MCPServer) ServeHTTP() error {
	port := s.config.Server.HTTPPort
	s.logger.Info("starting MCP server on HTTP", zap.Int("port", port))

	httpServer := server.NewStreamableHTTPServer(s.mcpServer)
	return httpServer.Start(fmt.Sprintf(":%d", port))
}

// GetMCPServer returns the underlying MCP server
func (s *MCPServer) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}
