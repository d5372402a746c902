package jsplugin

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/koba-e964/atcoder-tools/codegen"
	"github.com/koba-e964/atcoder-tools/problem"
)

// EntryPoint is the global function a plugin must define
const EntryPoint = "main"

// Loader implements codegen.PluginLoader for JavaScript plugins
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a Loader
func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the script at path, evaluates it once and checks that it
// defines the entry point.
func (l *Loader) Load(path string) (codegen.Generator, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", codegen.ErrGeneratorLoad, path, err)
	}

	err = withRuntime(func(rt *jsRuntime) error {
		if _, err := rt.Execute(string(source)); err != nil {
			return fmt.Errorf("%w: error while evaluating %s: %w", codegen.ErrGeneratorLoad, path, err)
		}

		kind, err := rt.Execute("typeof " + EntryPoint)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", codegen.ErrGeneratorLoad, path, err)
		}
		if kind != "function" {
			return fmt.Errorf("%w: %s does not define a function named %q (found %s)",
				codegen.ErrGeneratorLoad, path, EntryPoint, kind)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info("custom code generator loaded",
		zap.String("path", path),
		zap.Int("bytes", len(source)))

	return &Generator{
		logger: l.logger,
		path:   path,
		source: string(source),
	}, nil
}

// Generator runs a loaded plugin. Each call evaluates the script in a
// fresh engine.
type Generator struct {
	logger *zap.Logger
	path   string
	source string
}

// Path returns the plugin file the generator was loaded from
func (g *Generator) Path() string {
	return g.path
}

// Generate calls the plugin's main with the JSON payload of args
func (g *Generator) Generate(args *codegen.GenerationArgs) (string, error) {
	payload, err := newPayload(args)
	if err != nil {
		return "", err
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode plugin arguments: %w", err)
	}

	var out string
	err = withRuntime(func(rt *jsRuntime) error {
		if _, err := rt.Execute(g.source); err != nil {
			return fmt.Errorf("error while evaluating %s: %w", g.path, err)
		}

		// JSON is a valid JavaScript expression.
		call := fmt.Sprintf(`(function (args) {
	var out = %s(args);
	if (typeof out !== "string") {
		throw new TypeError("%s must return a string, got " + typeof out);
	}
	return out;
})(%s)`, EntryPoint, EntryPoint, encoded)

		out, err = rt.Execute(call)
		if err != nil {
			return fmt.Errorf("plugin %s failed: %w", g.path, err)
		}
		return nil
	})
	if err != nil {
		g.logger.Error("custom code generator failed", zap.String("path", g.path), zap.Error(err))
		return "", err
	}

	return out, nil
}

type payloadConfig struct {
	IndentType   string `json:"indent_type"`
	IndentWidth  int    `json:"indent_width"`
	IndentUnit   string `json:"indent_unit"`
	Lang         string `json:"lang"`
	Template     string `json:"template"`
	TemplatePath string `json:"template_path"`
	WorkspaceDir string `json:"workspace_dir"`
}

type payload struct {
	Format    *problem.Format     `json:"format"`
	Constants problem.ConstantSet `json:"constants"`
	Config    payloadConfig       `json:"config"`
}

func newPayload(args *codegen.GenerationArgs) (*payload, error) {
	cfg := args.Config()
	if cfg == nil {
		return nil, fmt.Errorf("generation args carry no style config")
	}

	tmpl, err := cfg.LoadTemplate()
	if err != nil {
		return nil, err
	}

	return &payload{
		Format:    args.Format(),
		Constants: args.Constants(),
		Config: payloadConfig{
			IndentType:   string(cfg.IndentType()),
			IndentWidth:  cfg.IndentWidth(),
			IndentUnit:   cfg.Indent(1),
			Lang:         cfg.Language().String(),
			Template:     tmpl,
			TemplatePath: cfg.TemplatePath(),
			WorkspaceDir: cfg.WorkspaceDir(),
		},
	}, nil
}
