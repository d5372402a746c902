package problem

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ConstantSet holds the constants predicted from the problem statement.
// Nil fields were not found.
type ConstantSet struct {
	Mod    *int64  `yaml:"mod,omitempty" json:"mod,omitempty"`
	YesStr *string `yaml:"yes_str,omitempty" json:"yes_str,omitempty"`
	NoStr  *string `yaml:"no_str,omitempty" json:"no_str,omitempty"`
}

// Problem bundles a format and its constants. Format is nil when the input
// format could not be determined.
type Problem struct {
	Format    *Format     `yaml:"format,omitempty" json:"format,omitempty"`
	Constants ConstantSet `yaml:"constants" json:"constants"`
}

// Decode reads a YAML problem description and validates its format
func Decode(r io.Reader) (*Problem, error) {
	var p Problem

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if err == io.EOF {
			return &p, nil
		}
		return nil, fmt.Errorf("error decoding problem: %w", err)
	}

	if p.Format != nil {
		if err := p.Format.Validate(); err != nil {
			return nil, fmt.Errorf("invalid format: %w", err)
		}
	}

	return &p, nil
}

// LoadFile reads a problem description from path
func LoadFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open problem file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}
