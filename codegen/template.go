package codegen

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/koba-e964/atcoder-tools/workspace"
)

//go:embed templates/*
var bundledTemplates embed.FS

// TemplateDirName is the directory under the user's home that holds the
// default templates
const TemplateDirName = ".atcoder-tools/templates"

// DefaultTemplatePath returns where the default template for l lives
func DefaultTemplatePath(l Language) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home dir: %w", err)
	}
	return workspace.NormalizePath(filepath.Join(home, filepath.FromSlash(TemplateDirName), l.DefaultTemplateFileName()))
}

// BundledTemplate returns the template shipped with the binary
func BundledTemplate(l Language) (string, error) {
	data, err := bundledTemplates.ReadFile("templates/" + l.DefaultTemplateFileName())
	if err != nil {
		return "", fmt.Errorf("no bundled template for %s: %w", l, err)
	}
	return string(data), nil
}

// InstallDefaultTemplates writes the bundled templates to their default
// paths and returns the paths written. Existing files are kept unless
// overwrite is set.
func InstallDefaultTemplates(fsys workspace.FileSystem, overwrite bool) ([]string, error) {
	var written []string

	for _, l := range SupportedLanguages() {
		path, err := DefaultTemplatePath(l)
		if err != nil {
			return written, err
		}

		exists, err := fsys.FileExists(path)
		if err != nil {
			return written, fmt.Errorf("failed to check %s: %w", path, err)
		}
		if exists && !overwrite {
			continue
		}

		content, err := BundledTemplate(l)
		if err != nil {
			return written, err
		}
		if err := fsys.MkdirAll(filepath.Dir(path), workspace.DirPermission); err != nil {
			return written, fmt.Errorf("failed to create template dir: %w", err)
		}
		if err := fsys.WriteFile(path, []byte(content), workspace.FilePermission); err != nil {
			return written, fmt.Errorf("failed to write template %s: %w", path, err)
		}
		written = append(written, path)
	}

	return written, nil
}

// templateData is what the built-in generators expose to templates
type templateData struct {
	PredictionSuccess bool
	FormalArguments   string
	ActualArguments   string
	InputPart         string
	Mod               string
	YesStr            string
	NoStr             string
}

// templateFuncs exposes the style's indentation to templates as
// {{ indent N }}.
func templateFuncs(cfg *StyleConfig) template.FuncMap {
	return template.FuncMap{
		"indent": cfg.Indent,
	}
}

func renderTemplate(name, text string, funcs template.FuncMap, data templateData) (string, error) {
	tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return sb.String(), nil
}
