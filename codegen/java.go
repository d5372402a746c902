package codegen

import (
	"fmt"

	"github.com/koba-e964/atcoder-tools/problem"
)

// JavaGenerator is the built-in Java generator
type JavaGenerator struct{}

// Generate renders the Java template
func (JavaGenerator) Generate(args *GenerationArgs) (string, error) {
	return generateBuiltin(args, javaSyntax{}, 2)
}

type javaSyntax struct{}

func (javaSyntax) scalarType(t problem.VarType) string {
	switch t {
	case problem.TypeFloat:
		return "double"
	case problem.TypeString:
		return "String"
	default:
		return "long"
	}
}

func (s javaSyntax) fullType(v problem.Variable) string {
	switch v.Dim() {
	case 2:
		return s.scalarType(v.Type) + "[][]"
	case 1:
		return s.scalarType(v.Type) + "[]"
	default:
		return s.scalarType(v.Type)
	}
}

func (s javaSyntax) declare(v problem.Variable) string {
	elem := s.scalarType(v.Type)
	switch v.Dim() {
	case 2:
		return fmt.Sprintf("%s %s = new %s[(int)(%s)][(int)(%s)];",
			s.fullType(v), v.Name, elem, v.FirstIndex.Length, v.SecondIndex.Length)
	case 1:
		return fmt.Sprintf("%s %s = new %s[(int)(%s)];", s.fullType(v), v.Name, elem, v.FirstIndex.Length)
	default:
		return fmt.Sprintf("%s %s;", elem, v.Name)
	}
}

func (javaSyntax) read(target string, t problem.VarType) string {
	switch t {
	case problem.TypeFloat:
		return fmt.Sprintf("%s = sc.nextDouble();", target)
	case problem.TypeString:
		return fmt.Sprintf("%s = sc.next();", target)
	default:
		return fmt.Sprintf("%s = sc.nextLong();", target)
	}
}

func (javaSyntax) loop(counter, length string) string {
	return fmt.Sprintf("for(int %[1]s = 0 ; %[1]s < %[2]s ; %[1]s++){", counter, length)
}

func (s javaSyntax) param(v problem.Variable) string {
	return fmt.Sprintf("%s %s", s.fullType(v), v.Name)
}

func (javaSyntax) modLiteral(mod int64) string {
	return fmt.Sprintf("%dL", mod)
}
