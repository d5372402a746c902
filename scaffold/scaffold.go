// Package scaffold generates starter source files and places them in the
// workspace.
package scaffold

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/koba-e964/atcoder-tools/codegen"
	"github.com/koba-e964/atcoder-tools/problem"
	"github.com/koba-e964/atcoder-tools/workspace"
)

// Service ties a style config to a workspace writer
type Service struct {
	logger *zap.Logger
	style  *codegen.StyleConfig
	writer *workspace.Writer
}

// New creates a Service
func New(logger *zap.Logger, style *codegen.StyleConfig, writer *workspace.Writer) *Service {
	return &Service{
		logger: logger,
		style:  style,
		writer: writer,
	}
}

// Style returns the style config used for generation
func (s *Service) Style() *codegen.StyleConfig {
	return s.style
}

// Generate runs the resolved generator for p
func (s *Service) Generate(p *problem.Problem) (string, error) {
	args := codegen.NewArgs(p.Format, p.Constants, s.style)

	code, err := s.style.Generator().Generate(args)
	if err != nil {
		return "", fmt.Errorf("code generation failed: %w", err)
	}

	s.logger.Debug("code generated",
		zap.String("language", s.style.Language().String()),
		zap.Bool("prediction_success", p.Format != nil),
		zap.Int("bytes", len(code)))

	return code, nil
}

// Scaffold generates code for p and writes it as the language's source file
// under <workspace>/<contestID>/<problemID>. It returns the written path.
func (s *Service) Scaffold(contestID, problemID string, p *problem.Problem) (string, error) {
	code, err := s.Generate(p)
	if err != nil {
		return "", err
	}

	path, err := s.writer.Write(contestID, problemID, s.style.Language().SourceFileName(), []byte(code))
	if err != nil {
		return path, err
	}

	s.logger.Info("problem scaffolded",
		zap.String("contest", contestID),
		zap.String("problem", problemID),
		zap.String("path", path))

	return path, nil
}
