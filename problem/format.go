package problem

import (
	"fmt"
	"regexp"
)

// VarType is the element type of an input variable
type VarType string

// Supported variable types
const (
	TypeInt    VarType = "int"
	TypeFloat  VarType = "float"
	TypeString VarType = "str"
)

// PatternKind describes how the variables of a pattern are laid out in the input
type PatternKind string

// Pattern kinds
const (
	// PatternSingular is a single scalar on its own.
	PatternSingular PatternKind = "singular"
	// PatternParallel is one or more 1-D arrays read element by element together.
	PatternParallel PatternKind = "parallel"
	// PatternTwoDimensional is a single matrix read row by row.
	PatternTwoDimensional PatternKind = "two_dimensional"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Index is one dimension of an array variable. Length is an expression over
// previously read variables, e.g. "N" or "N-1".
type Index struct {
	Length string `yaml:"length" json:"length"`
}

// Variable is a named input value
type Variable struct {
	Name        string  `yaml:"name" json:"name"`
	Type        VarType `yaml:"type" json:"type"`
	FirstIndex  *Index  `yaml:"first_index,omitempty" json:"first_index,omitempty"`
	SecondIndex *Index  `yaml:"second_index,omitempty" json:"second_index,omitempty"`
}

// Dim returns the number of dimensions of the variable
func (v Variable) Dim() int {
	switch {
	case v.SecondIndex != nil:
		return 2
	case v.FirstIndex != nil:
		return 1
	default:
		return 0
	}
}

// Pattern is one step of the input format
type Pattern struct {
	Kind PatternKind `yaml:"kind" json:"kind"`
	Vars []Variable  `yaml:"vars" json:"vars"`
}

// Format is the ordered sequence of patterns that make up the input
type Format struct {
	Sequence []Pattern `yaml:"sequence" json:"sequence"`
}

// AllVars returns every variable in input order
func (f *Format) AllVars() []Variable {
	var vars []Variable
	for _, p := range f.Sequence {
		vars = append(vars, p.Vars...)
	}
	return vars
}

// Validate checks that every pattern is well formed
func (f *Format) Validate() error {
	seen := make(map[string]bool)

	for i, p := range f.Sequence {
		if len(p.Vars) == 0 {
			return fmt.Errorf("sequence[%d]: pattern has no variables", i)
		}

		for _, v := range p.Vars {
			if err := v.validate(); err != nil {
				return fmt.Errorf("sequence[%d]: %w", i, err)
			}
			if seen[v.Name] {
				return fmt.Errorf("sequence[%d]: duplicate variable %s", i, v.Name)
			}
			seen[v.Name] = true
		}

		if err := p.validateShape(); err != nil {
			return fmt.Errorf("sequence[%d]: %w", i, err)
		}
	}

	return nil
}

func (v Variable) validate() error {
	if !identPattern.MatchString(v.Name) {
		return fmt.Errorf("invalid variable name: %q", v.Name)
	}

	switch v.Type {
	case TypeInt, TypeFloat, TypeString:
	default:
		return fmt.Errorf("invalid type for %s: %q, must be 'int', 'float' or 'str'", v.Name, v.Type)
	}

	if v.SecondIndex != nil && v.FirstIndex == nil {
		return fmt.Errorf("variable %s has second_index without first_index", v.Name)
	}
	for _, idx := range []*Index{v.FirstIndex, v.SecondIndex} {
		if idx != nil && idx.Length == "" {
			return fmt.Errorf("variable %s has an index without length", v.Name)
		}
	}

	return nil
}

func (p Pattern) validateShape() error {
	switch p.Kind {
	case PatternSingular:
		if len(p.Vars) != 1 || p.Vars[0].Dim() != 0 {
			return fmt.Errorf("singular pattern needs exactly one scalar variable")
		}
	case PatternParallel:
		length := p.Vars[0].FirstIndex
		for _, v := range p.Vars {
			if v.Dim() != 1 {
				return fmt.Errorf("parallel pattern variable %s must be one-dimensional", v.Name)
			}
			if v.FirstIndex.Length != length.Length {
				return fmt.Errorf("parallel pattern variables must share one length, got %q and %q",
					length.Length, v.FirstIndex.Length)
			}
		}
	case PatternTwoDimensional:
		if len(p.Vars) != 1 || p.Vars[0].Dim() != 2 {
			return fmt.Errorf("two_dimensional pattern needs exactly one two-dimensional variable")
		}
	default:
		return fmt.Errorf("invalid pattern kind: %q", p.Kind)
	}
	return nil
}
