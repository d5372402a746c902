package codegen

import (
	"fmt"
	"strings"
)

// Language is a supported target language
type Language string

// Language constants
const (
	LanguageCPP  Language = "cpp"
	LanguageJava Language = "java"
)

// DefaultLanguage is used when no language is configured
const DefaultLanguage = LanguageCPP

// SupportedLanguages returns every language with a built-in generator
func SupportedLanguages() []Language {
	return []Language{LanguageCPP, LanguageJava}
}

// ParseLanguage converts a language tag into a Language
func ParseLanguage(s string) (Language, error) {
	for _, l := range SupportedLanguages() {
		if string(l) == s {
			return l, nil
		}
	}

	names := make([]string, 0, len(SupportedLanguages()))
	for _, l := range SupportedLanguages() {
		names = append(names, string(l))
	}
	return "", fmt.Errorf("%w: %q, must be one of [%s]", ErrUnsupportedLanguage, s, strings.Join(names, ", "))
}

func (l Language) String() string {
	return string(l)
}

// FileExtension returns the source file extension without the dot
func (l Language) FileExtension() string {
	switch l {
	case LanguageCPP:
		return "cpp"
	case LanguageJava:
		return "java"
	default:
		return ""
	}
}

// SourceFileName returns the name of the generated source file
func (l Language) SourceFileName() string {
	switch l {
	case LanguageCPP:
		return "main.cpp"
	case LanguageJava:
		return "Main.java"
	default:
		return ""
	}
}

// DefaultTemplateFileName returns the file name of the bundled template
func (l Language) DefaultTemplateFileName() string {
	return "default_template." + l.FileExtension()
}

// Builtin returns the built-in generator for the language
func (l Language) Builtin() (Generator, error) {
	switch l {
	case LanguageCPP:
		return CPPGenerator{}, nil
	case LanguageJava:
		return JavaGenerator{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, string(l))
	}
}
