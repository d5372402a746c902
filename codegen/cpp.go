package codegen

import (
	"fmt"

	"github.com/koba-e964/atcoder-tools/problem"
)

// CPPGenerator is the built-in C++ generator
type CPPGenerator struct{}

// Generate renders the C++ template
func (CPPGenerator) Generate(args *GenerationArgs) (string, error) {
	return generateBuiltin(args, cppSyntax{}, 1)
}

type cppSyntax struct{}

func (cppSyntax) scalarType(t problem.VarType) string {
	switch t {
	case problem.TypeFloat:
		return "double"
	case problem.TypeString:
		return "std::string"
	default:
		return "long long"
	}
}

func (s cppSyntax) fullType(v problem.Variable) string {
	elem := s.scalarType(v.Type)
	switch v.Dim() {
	case 2:
		return fmt.Sprintf("std::vector<std::vector<%s>>", elem)
	case 1:
		return fmt.Sprintf("std::vector<%s>", elem)
	default:
		return elem
	}
}

func (s cppSyntax) declare(v problem.Variable) string {
	switch v.Dim() {
	case 2:
		return fmt.Sprintf("%s %s(%s, std::vector<%s>(%s));",
			s.fullType(v), v.Name, v.FirstIndex.Length, s.scalarType(v.Type), v.SecondIndex.Length)
	case 1:
		return fmt.Sprintf("%s %s(%s);", s.fullType(v), v.Name, v.FirstIndex.Length)
	default:
		return fmt.Sprintf("%s %s;", s.fullType(v), v.Name)
	}
}

func (cppSyntax) read(target string, _ problem.VarType) string {
	return fmt.Sprintf("std::cin >> %s;", target)
}

func (cppSyntax) loop(counter, length string) string {
	return fmt.Sprintf("for(int %[1]s = 0 ; %[1]s < %[2]s ; %[1]s++){", counter, length)
}

func (s cppSyntax) param(v problem.Variable) string {
	return fmt.Sprintf("%s %s", s.fullType(v), v.Name)
}

func (cppSyntax) modLiteral(mod int64) string {
	return fmt.Sprintf("%d", mod)
}
