package codegen

import "errors"

// Errors returned by New. Each one is wrapped with details about the
// offending value; match them with errors.Is.
var (
	ErrInvalidIndentType     = errors.New("invalid indent type")
	ErrInvalidIndentWidth    = errors.New("invalid indent width")
	ErrGeneratorFileNotFound = errors.New("generator file not found")
	ErrTemplateFileNotFound  = errors.New("template file not found")
	ErrUnsupportedLanguage   = errors.New("unsupported language")
	ErrGeneratorLoad         = errors.New("failed to load generator")
)
