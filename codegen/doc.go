// Package codegen turns a problem format into a starter source file.
//
// A StyleConfig is built once per invocation from caller options. Building it
// validates the indentation settings, the optional generator and template
// files and the target language, then resolves which Generator to use: a
// plugin loaded through an explicitly configured PluginLoader when a
// generator file is given, otherwise the built-in generator for the language.
//
// Usage:
//
//	style, err := codegen.New(logger, codegen.Options{
//	    IndentType:  "space",
//	    IndentWidth: 4,
//	    Language:    "cpp",
//	})
//	if err != nil {
//	    return err
//	}
//	args := codegen.NewArgs(p.Format, p.Constants, style)
//	code, err := style.Generator().Generate(args)
package codegen
