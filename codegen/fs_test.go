package codegen

import (
	"os"
)

// memFileSystem is an in-memory workspace.FileSystem
type memFileSystem struct {
	files map[string][]byte
}

func newMemFileSystem() *memFileSystem {
	return &memFileSystem{files: make(map[string][]byte)}
}

func (m *memFileSystem) MkdirAll(string, os.FileMode) error {
	return nil
}

func (m *memFileSystem) WriteFile(filename string, data []byte, _ os.FileMode) error {
	m.files[filename] = data
	return nil
}

func (m *memFileSystem) ReadFile(filename string) ([]byte, error) {
	if data, ok := m.files[filename]; ok {
		return data, nil
	}
	return nil, os.ErrNotExist
}

func (m *memFileSystem) FileExists(path string) (bool, error) {
	_, ok := m.files[path]
	return ok, nil
}
