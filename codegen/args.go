package codegen

import "github.com/koba-e964/atcoder-tools/problem"

// GenerationArgs is the argument bundle passed to a Generator. It performs
// no validation: the style config validates itself and the format is
// validated by whoever produced it.
type GenerationArgs struct {
	format    *problem.Format
	constants problem.ConstantSet
	config    *StyleConfig
}

// NewArgs creates GenerationArgs. format may be nil when the input format
// is unknown.
func NewArgs(format *problem.Format, constants problem.ConstantSet, config *StyleConfig) *GenerationArgs {
	return &GenerationArgs{
		format:    format,
		constants: constants,
		config:    config,
	}
}

// Format returns the input format, or nil if it is unknown
func (a *GenerationArgs) Format() *problem.Format {
	return a.format
}

// Constants returns the predicted constants
func (a *GenerationArgs) Constants() problem.ConstantSet {
	return a.constants
}

// Config returns the style config
func (a *GenerationArgs) Config() *StyleConfig {
	return a.config
}
