// Package workspace provides filesystem access and output placement.
//
// The workspace package abstracts the few filesystem operations the tool
// needs behind the FileSystem interface, normalizes user supplied paths and
// places generated source files under the workspace directory using a
// <contest>/<problem>/<file> layout.
//
// Usage:
//
//	w := workspace.NewWriter(logger, "/home/me/atcoder-workspace")
//	path, err := w.Write("abc100", "A", "main.cpp", code)
package workspace
