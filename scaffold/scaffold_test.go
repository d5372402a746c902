package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/koba-e964/atcoder-tools/codegen"
	"github.com/koba-e964/atcoder-tools/problem"
	"github.com/koba-e964/atcoder-tools/workspace"
)

const sampleProblem = `
format:
  sequence:
    - kind: singular
      vars:
        - {name: N, type: int}
constants:
  yes_str: "Yes"
`

func newService(t *testing.T, lang string) *Service {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	logger := zaptest.NewLogger(t)

	style, err := codegen.New(logger, codegen.Options{
		IndentType:   "space",
		IndentWidth:  4,
		WorkspaceDir: t.TempDir(),
		Language:     lang,
	})
	require.NoError(t, err)

	return New(logger, style, workspace.NewWriter(logger, style.WorkspaceDir()))
}

func TestServiceGenerate(t *testing.T) {
	svc := newService(t, "cpp")

	p, err := problem.Decode(strings.NewReader(sampleProblem))
	require.NoError(t, err)

	code, err := svc.Generate(p)
	require.NoError(t, err)
	assert.Contains(t, code, "    long long N;\n    std::cin >> N;\n")
	assert.Contains(t, code, `const string YES = "Yes";`)
}

func TestServiceScaffold(t *testing.T) {
	t.Run("WritesSourceFile", func(t *testing.T) {
		svc := newService(t, "java")

		p, err := problem.Decode(strings.NewReader(sampleProblem))
		require.NoError(t, err)

		path, err := svc.Scaffold("abc100", "A", p)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(svc.Style().WorkspaceDir(), "abc100", "A", "Main.java"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "N = sc.nextLong();")
	})

	t.Run("KeepsExistingFile", func(t *testing.T) {
		svc := newService(t, "cpp")
		p := &problem.Problem{}

		path, err := svc.Scaffold("abc100", "B", p)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, []byte("solved"), 0o600))

		_, err = svc.Scaffold("abc100", "B", p)
		require.Error(t, err)
		assert.True(t, errors.Is(err, workspace.ErrFileExists))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "solved", string(data))
	})

	t.Run("GeneratorError", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		logger := zaptest.NewLogger(t)
		genPath := filepath.Join(t.TempDir(), "gen.js")
		require.NoError(t, os.WriteFile(genPath, []byte("x"), 0o600))

		failing := codegen.GeneratorFunc(func(*codegen.GenerationArgs) (string, error) {
			return "", errors.New("boom")
		})
		style, err := codegen.New(logger, codegen.Options{
			IndentType:    "space",
			IndentWidth:   4,
			GeneratorPath: genPath,
		}, codegen.WithPluginLoader(staticLoader{failing}))
		require.NoError(t, err)

		svc := New(logger, style, workspace.NewWriter(logger, t.TempDir()))
		_, err = svc.Scaffold("abc100", "C", &problem.Problem{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "code generation failed: boom")
	})
}

type staticLoader struct {
	gen codegen.Generator
}

func (l staticLoader) Load(string) (codegen.Generator, error) {
	return l.gen, nil
}
