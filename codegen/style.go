package codegen

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/koba-e964/atcoder-tools/config"
	"github.com/koba-e964/atcoder-tools/workspace"
)

// IndentType selects the whitespace character used for indentation
type IndentType string

// Indent types
const (
	IndentSpace IndentType = "space"
	IndentTab   IndentType = "tab"
)

// Options are the caller provided inputs of a StyleConfig
type Options struct {
	IndentType  string
	IndentWidth int
	// GeneratorPath points at a custom generator plugin (optional).
	GeneratorPath string
	// TemplatePath points at a template file (optional).
	TemplatePath string
	// WorkspaceDir is where generated files go (optional).
	WorkspaceDir string
	// Language is a language tag; empty means DefaultLanguage.
	Language string
}

// DefaultOptions returns four-space indentation for C++
func DefaultOptions() Options {
	return Options{
		IndentType:  string(IndentSpace),
		IndentWidth: 4,
		Language:    string(DefaultLanguage),
	}
}

// StyleConfig is a validated, immutable code style. It is safe for
// concurrent use once built.
type StyleConfig struct {
	logger *zap.Logger
	fs     workspace.FileSystem
	loader PluginLoader

	indentType        IndentType
	indentWidth       int
	generatorPath     string
	templatePath      string
	templateDefaulted bool
	workspaceDir      string
	language          Language
	generator         Generator
}

// Option defines a functional option for New
type Option func(*StyleConfig)

// WithPluginLoader enables custom generator files. Without it a configured
// generator file fails with ErrGeneratorLoad.
func WithPluginLoader(loader PluginLoader) Option {
	return func(c *StyleConfig) {
		c.loader = loader
	}
}

// WithFileSystem sets the FileSystem used for existence checks and template reads
func WithFileSystem(fs workspace.FileSystem) Option {
	return func(c *StyleConfig) {
		c.fs = fs
	}
}

// NewFromConfig builds a StyleConfig from the codestyle section of cfg
func NewFromConfig(logger *zap.Logger, cfg *config.Config, opts ...Option) (*StyleConfig, error) {
	return New(logger, Options{
		IndentType:    cfg.CodeStyle.IndentType,
		IndentWidth:   cfg.CodeStyle.IndentWidth,
		GeneratorPath: cfg.CodeStyle.CodeGeneratorFile,
		TemplatePath:  cfg.CodeStyle.TemplateFile,
		WorkspaceDir:  cfg.CodeStyle.WorkspaceDir,
		Language:      cfg.CodeStyle.Lang,
	}, opts...)
}

// New validates opts and resolves the generator, the template path and the
// workspace directory.
func New(logger *zap.Logger, opts Options, extra ...Option) (*StyleConfig, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &StyleConfig{
		logger: logger,
		fs:     &workspace.RealFileSystem{},
	}

	for _, opt := range extra {
		opt(c)
	}

	if err := c.validate(opts); err != nil {
		return nil, err
	}

	if err := c.resolve(opts); err != nil {
		return nil, err
	}

	c.logger.Debug("code style resolved",
		zap.String("indent_type", string(c.indentType)),
		zap.Int("indent_width", c.indentWidth),
		zap.String("language", c.language.String()),
		zap.String("generator_file", c.generatorPath),
		zap.String("template_file", c.templatePath),
		zap.Bool("template_defaulted", c.templateDefaulted),
		zap.String("workspace_dir", c.workspaceDir),
	)

	return c, nil
}

// validate checks opts in a fixed order and stores the validated values
func (c *StyleConfig) validate(opts Options) error {
	indentType := IndentType(opts.IndentType)
	if indentType != IndentSpace && indentType != IndentTab {
		return fmt.Errorf("%w: %q, must be 'space' or 'tab'", ErrInvalidIndentType, opts.IndentType)
	}

	if opts.IndentWidth < 0 {
		return fmt.Errorf("%w: %d, must be a non-negative integer", ErrInvalidIndentWidth, opts.IndentWidth)
	}

	generatorPath, err := workspace.NormalizePath(opts.GeneratorPath)
	if err != nil {
		return fmt.Errorf("invalid generator file path: %w", err)
	}
	if generatorPath != "" {
		if err := c.requireFile(generatorPath); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrGeneratorFileNotFound, generatorPath, err)
		}
	}

	templatePath, err := workspace.NormalizePath(opts.TemplatePath)
	if err != nil {
		return fmt.Errorf("invalid template file path: %w", err)
	}
	if templatePath != "" {
		if err := c.requireFile(templatePath); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrTemplateFileNotFound, templatePath, err)
		}
	}

	language := DefaultLanguage
	if opts.Language != "" {
		language, err = ParseLanguage(opts.Language)
		if err != nil {
			return err
		}
	}

	c.indentType = indentType
	c.indentWidth = opts.IndentWidth
	c.generatorPath = generatorPath
	c.templatePath = templatePath
	c.language = language

	return nil
}

func (c *StyleConfig) requireFile(path string) error {
	exists, err := c.fs.FileExists(path)
	if err != nil {
		return err
	}
	if !exists {
		return fs.ErrNotExist
	}
	return nil
}

// resolve picks the generator and fills in default paths
func (c *StyleConfig) resolve(opts Options) error {
	if c.generatorPath != "" {
		if c.loader == nil {
			return fmt.Errorf("%w: %s: no plugin loader configured", ErrGeneratorLoad, c.generatorPath)
		}

		c.logger.Info("loading custom code generator", zap.String("path", c.generatorPath))
		gen, err := c.loader.Load(c.generatorPath)
		if err != nil {
			if errors.Is(err, ErrGeneratorLoad) {
				return err
			}
			return fmt.Errorf("%w: error while loading %s: %w", ErrGeneratorLoad, c.generatorPath, err)
		}
		if gen == nil {
			return fmt.Errorf("%w: %s: loader returned no generator", ErrGeneratorLoad, c.generatorPath)
		}
		c.generator = gen
	} else {
		gen, err := c.language.Builtin()
		if err != nil {
			return err
		}
		c.generator = gen
	}

	if c.templatePath == "" {
		path, err := DefaultTemplatePath(c.language)
		if err != nil {
			return err
		}
		c.templatePath = path
		c.templateDefaulted = true
	}

	workspaceDir, err := workspace.NormalizePath(opts.WorkspaceDir)
	if err != nil {
		return fmt.Errorf("invalid workspace dir: %w", err)
	}
	if workspaceDir == "" {
		dir, err := workspace.DefaultDir()
		if err != nil {
			return err
		}
		if workspaceDir, err = workspace.NormalizePath(dir); err != nil {
			return err
		}
	}
	c.workspaceDir = workspaceDir

	return nil
}

// Indent returns the indentation for the given nesting depth. A negative
// depth yields no indentation. Indent panics if indentWidth*depth overflows
// int, as strings.Repeat does for oversized output.
func (c *StyleConfig) Indent(depth int) string {
	if depth <= 0 || c.indentWidth == 0 {
		return ""
	}
	if depth > math.MaxInt/c.indentWidth {
		panic(fmt.Sprintf("codegen: indent depth %d overflows with width %d", depth, c.indentWidth))
	}

	unit := " "
	if c.indentType == IndentTab {
		unit = "\t"
	}
	return strings.Repeat(unit, c.indentWidth*depth)
}

// IndentType returns the configured indent type
func (c *StyleConfig) IndentType() IndentType {
	return c.indentType
}

// IndentWidth returns the number of indent characters per level
func (c *StyleConfig) IndentWidth() int {
	return c.indentWidth
}

// GeneratorPath returns the custom generator file, or "" for built-in generators
func (c *StyleConfig) GeneratorPath() string {
	return c.generatorPath
}

// TemplatePath returns the resolved template file path
func (c *StyleConfig) TemplatePath() string {
	return c.templatePath
}

// WorkspaceDir returns the resolved workspace directory
func (c *StyleConfig) WorkspaceDir() string {
	return c.workspaceDir
}

// Language returns the target language
func (c *StyleConfig) Language() Language {
	return c.language
}

// Generator returns the resolved generator
func (c *StyleConfig) Generator() Generator {
	return c.generator
}

// LoadTemplate reads the template text. A default template path that does
// not exist on disk falls back to the bundled template.
func (c *StyleConfig) LoadTemplate() (string, error) {
	data, err := c.fs.ReadFile(c.templatePath)
	if err == nil {
		return string(data), nil
	}

	if c.templateDefaulted && errors.Is(err, fs.ErrNotExist) {
		return BundledTemplate(c.language)
	}
	return "", fmt.Errorf("failed to read template %s: %w", c.templatePath, err)
}
