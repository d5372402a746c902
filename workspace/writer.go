package workspace

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ErrFileExists is returned when the target source file is already present
// and the writer is not allowed to overwrite it.
var ErrFileExists = errors.New("file already exists")

// Writer places generated files in the workspace directory
type Writer struct {
	logger    *zap.Logger
	root      string
	fs        FileSystem
	overwrite bool
}

// WriterOption defines a functional option for Writer
type WriterOption func(*Writer)

// WithFileSystem sets the FileSystem for Writer
func WithFileSystem(fs FileSystem) WriterOption {
	return func(w *Writer) {
		w.fs = fs
	}
}

// WithOverwrite allows Writer to replace existing files
func WithOverwrite(overwrite bool) WriterOption {
	return func(w *Writer) {
		w.overwrite = overwrite
	}
}

// NewWriter creates a Writer rooted at root
func NewWriter(logger *zap.Logger, root string, opts ...WriterOption) *Writer {
	w := &Writer{
		logger: logger,
		root:   filepath.Clean(root),
		fs:     &RealFileSystem{},
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Root returns the workspace root directory
func (w *Writer) Root() string {
	return w.root
}

// ProblemDir returns the directory that holds files for a single problem
func (w *Writer) ProblemDir(contestID, problemID string) (string, error) {
	for _, part := range []string{contestID, problemID} {
		if err := validatePathElement(part); err != nil {
			return "", err
		}
	}
	return filepath.Join(w.root, contestID, problemID), nil
}

// Write stores content as <root>/<contestID>/<problemID>/<fileName> and
// returns the written path.
func (w *Writer) Write(contestID, problemID, fileName string, content []byte) (string, error) {
	if err := validatePathElement(fileName); err != nil {
		return "", err
	}

	dir, err := w.ProblemDir(contestID, problemID)
	if err != nil {
		return "", err
	}

	if err := w.fs.MkdirAll(dir, DirPermission); err != nil {
		return "", fmt.Errorf("failed to create problem dir: %w", err)
	}

	path := filepath.Join(dir, fileName)
	exists, err := w.fs.FileExists(path)
	if err != nil {
		return "", fmt.Errorf("failed to check %s: %w", path, err)
	}
	if exists && !w.overwrite {
		w.logger.Warn("source file already exists, skipping", zap.String("path", path))
		return path, fmt.Errorf("%w: %s", ErrFileExists, path)
	}

	if err := w.fs.WriteFile(path, content, FilePermission); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	w.logger.Info("source file written",
		zap.String("path", path),
		zap.Int("bytes", len(content)))

	return path, nil
}

// validatePathElement rejects names that would escape the workspace
func validatePathElement(name string) error {
	if name == "" {
		return fmt.Errorf("empty path element")
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("unsafe path element: %q", name)
	}
	return nil
}
