package codegen

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/koba-e964/atcoder-tools/problem"
)

// syntax is the per-language part of a built-in generator
type syntax interface {
	// declare returns the declaration of v, allocating arrays.
	declare(v problem.Variable) string
	// read returns the statement that reads one element into target.
	read(target string, t problem.VarType) string
	// loop returns the header of a counted for loop; the body is closed by "}".
	loop(counter, length string) string
	// param returns v as a formal parameter of solve.
	param(v problem.Variable) string
	modLiteral(mod int64) string
}

type codeLine struct {
	depth int
	text  string
}

// generateBuiltin renders the configured template. baseDepth is the nesting
// depth of the template line that holds the input part.
func generateBuiltin(args *GenerationArgs, s syntax, baseDepth int) (string, error) {
	cfg := args.Config()
	if cfg == nil {
		return "", fmt.Errorf("generation args carry no style config")
	}

	text, err := cfg.LoadTemplate()
	if err != nil {
		return "", err
	}

	data := templateData{}
	if f := args.Format(); f != nil {
		data.PredictionSuccess = true
		data.InputPart = joinLines(cfg, inputLines(s, f), baseDepth)

		var formal, actual []string
		for _, v := range f.AllVars() {
			formal = append(formal, s.param(v))
			actual = append(actual, v.Name)
		}
		data.FormalArguments = strings.Join(formal, ", ")
		data.ActualArguments = strings.Join(actual, ", ")
	}

	constants := args.Constants()
	if constants.Mod != nil {
		data.Mod = s.modLiteral(*constants.Mod)
	}
	if constants.YesStr != nil {
		data.YesStr = strconv.Quote(*constants.YesStr)
	}
	if constants.NoStr != nil {
		data.NoStr = strconv.Quote(*constants.NoStr)
	}

	return renderTemplate(filepath.Base(cfg.TemplatePath()), text, templateFuncs(cfg), data)
}

// inputLines emits the statements that read the whole input
func inputLines(s syntax, f *problem.Format) []codeLine {
	var lines []codeLine

	for _, p := range f.Sequence {
		switch p.Kind {
		case problem.PatternSingular:
			v := p.Vars[0]
			lines = append(lines,
				codeLine{0, s.declare(v)},
				codeLine{0, s.read(v.Name, v.Type)},
			)
		case problem.PatternParallel:
			for _, v := range p.Vars {
				lines = append(lines, codeLine{0, s.declare(v)})
			}
			lines = append(lines, codeLine{0, s.loop("i", p.Vars[0].FirstIndex.Length)})
			for _, v := range p.Vars {
				lines = append(lines, codeLine{1, s.read(v.Name+"[i]", v.Type)})
			}
			lines = append(lines, codeLine{0, "}"})
		case problem.PatternTwoDimensional:
			v := p.Vars[0]
			lines = append(lines,
				codeLine{0, s.declare(v)},
				codeLine{0, s.loop("i", v.FirstIndex.Length)},
				codeLine{1, s.loop("j", v.SecondIndex.Length)},
				codeLine{2, s.read(v.Name+"[i][j]", v.Type)},
				codeLine{1, "}"},
				codeLine{0, "}"},
			)
		}
	}

	return lines
}

// joinLines lays out lines for a template slot at baseDepth. The first
// line takes its indentation from the template.
func joinLines(cfg *StyleConfig, lines []codeLine, baseDepth int) string {
	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteString("\n")
			sb.WriteString(cfg.Indent(baseDepth + l.depth))
		}
		sb.WriteString(l.text)
	}
	return sb.String()
}
