package problem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProblem = `
format:
  sequence:
    - kind: singular
      vars:
        - {name: N, type: int}
    - kind: parallel
      vars:
        - {name: A, type: int, first_index: {length: N}}
        - {name: B, type: str, first_index: {length: N}}
    - kind: two_dimensional
      vars:
        - {name: G, type: float, first_index: {length: N}, second_index: {length: N}}
constants:
  mod: 998244353
  yes_str: "Yes"
  no_str: "No"
`

func TestDecode(t *testing.T) {
	t.Run("FullProblem", func(t *testing.T) {
		p, err := Decode(strings.NewReader(sampleProblem))
		require.NoError(t, err)
		require.NotNil(t, p.Format)

		require.Len(t, p.Format.Sequence, 3)
		assert.Equal(t, PatternParallel, p.Format.Sequence[1].Kind)

		vars := p.Format.AllVars()
		require.Len(t, vars, 4)
		assert.Equal(t, []string{"N", "A", "B", "G"}, []string{vars[0].Name, vars[1].Name, vars[2].Name, vars[3].Name})
		assert.Equal(t, 0, vars[0].Dim())
		assert.Equal(t, 1, vars[1].Dim())
		assert.Equal(t, 2, vars[3].Dim())

		require.NotNil(t, p.Constants.Mod)
		assert.Equal(t, int64(998244353), *p.Constants.Mod)
		require.NotNil(t, p.Constants.YesStr)
		assert.Equal(t, "Yes", *p.Constants.YesStr)
		assert.Equal(t, "No", *p.Constants.NoStr)
	})

	t.Run("ConstantsOnly", func(t *testing.T) {
		p, err := Decode(strings.NewReader("constants:\n  mod: 7\n"))
		require.NoError(t, err)
		assert.Nil(t, p.Format)
		assert.Equal(t, int64(7), *p.Constants.Mod)
		assert.Nil(t, p.Constants.YesStr)
	})

	t.Run("Empty", func(t *testing.T) {
		p, err := Decode(strings.NewReader(""))
		require.NoError(t, err)
		assert.Nil(t, p.Format)
	})

	t.Run("UnknownField", func(t *testing.T) {
		_, err := Decode(strings.NewReader("formats: {}\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error decoding problem")
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`
format:
  sequence:
    - kind: singular
      vars:
        - {name: N, type: complex}
`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid type for N")
	})
}

func TestFormatValidate(t *testing.T) {
	scalar := func(name string) Variable { return Variable{Name: name, Type: TypeInt} }
	array := func(name, length string) Variable {
		return Variable{Name: name, Type: TypeInt, FirstIndex: &Index{Length: length}}
	}

	tests := []struct {
		name    string
		format  Format
		wantErr string
	}{
		{
			name:   "Valid",
			format: Format{Sequence: []Pattern{{Kind: PatternSingular, Vars: []Variable{scalar("N")}}}},
		},
		{
			name:    "EmptyPattern",
			format:  Format{Sequence: []Pattern{{Kind: PatternSingular}}},
			wantErr: "pattern has no variables",
		},
		{
			name:    "BadName",
			format:  Format{Sequence: []Pattern{{Kind: PatternSingular, Vars: []Variable{scalar("1x")}}}},
			wantErr: "invalid variable name",
		},
		{
			name: "Duplicate",
			format: Format{Sequence: []Pattern{
				{Kind: PatternSingular, Vars: []Variable{scalar("N")}},
				{Kind: PatternSingular, Vars: []Variable{scalar("N")}},
			}},
			wantErr: "duplicate variable N",
		},
		{
			name:    "SingularWithArray",
			format:  Format{Sequence: []Pattern{{Kind: PatternSingular, Vars: []Variable{array("A", "N")}}}},
			wantErr: "singular pattern",
		},
		{
			name: "ParallelLengthMismatch",
			format: Format{Sequence: []Pattern{
				{Kind: PatternParallel, Vars: []Variable{array("A", "N"), array("B", "M")}},
			}},
			wantErr: "share one length",
		},
		{
			name:    "ParallelScalar",
			format:  Format{Sequence: []Pattern{{Kind: PatternParallel, Vars: []Variable{scalar("A")}}}},
			wantErr: "must be one-dimensional",
		},
		{
			name:    "TwoDimensionalNeedsMatrix",
			format:  Format{Sequence: []Pattern{{Kind: PatternTwoDimensional, Vars: []Variable{array("G", "N")}}}},
			wantErr: "two_dimensional pattern",
		},
		{
			name: "SecondWithoutFirst",
			format: Format{Sequence: []Pattern{{Kind: PatternTwoDimensional, Vars: []Variable{
				{Name: "G", Type: TypeInt, SecondIndex: &Index{Length: "N"}},
			}}}},
			wantErr: "second_index without first_index",
		},
		{
			name:    "UnknownKind",
			format:  Format{Sequence: []Pattern{{Kind: "triangle", Vars: []Variable{scalar("N")}}}},
			wantErr: "invalid pattern kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.format.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleProblem), 0o600))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, p.Format.Sequence, 3)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open problem file")
}
