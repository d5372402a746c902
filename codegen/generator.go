package codegen

// Generator turns GenerationArgs into source code text
type Generator interface {
	Generate(args *GenerationArgs) (string, error)
}

// GeneratorFunc adapts a plain function to Generator
type GeneratorFunc func(args *GenerationArgs) (string, error)

// Generate calls f(args)
func (f GeneratorFunc) Generate(args *GenerationArgs) (string, error) {
	return f(args)
}

// PluginLoader loads a user supplied generator from a file. The file must
// expose an entry point named "main"; implementations report a missing entry
// point or a load failure with an error wrapping ErrGeneratorLoad.
//
// Loading runs user code, so New only calls a loader that the caller has
// configured explicitly with WithPluginLoader.
type PluginLoader interface {
	Load(path string) (Generator, error)
}
