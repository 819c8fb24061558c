package system

import (
	"fmt"
	"os"
	"sync"
)

// MockFileSystem is an in-memory FileSystemManager for tests.
type MockFileSystem struct {
	mu           sync.Mutex
	WrittenFiles map[string][]byte
	Modes        map[string]os.FileMode
	Directories  map[string]bool
}

// NewMockFileSystem creates a new MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		WrittenFiles: make(map[string][]byte),
		Modes:        make(map[string]os.FileMode),
		Directories:  make(map[string]bool),
	}
}

// FileExists reports whether a file has been written.
func (m *MockFileSystem) FileExists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.WrittenFiles[path]
	return ok, nil
}

// ReadFile returns previously written content.
func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.WrittenFiles[path]
	if !ok {
		return nil, fmt.Errorf("failed to read %s: %w", path, os.ErrNotExist)
	}
	return content, nil
}

// WriteFile captures the content that would be written to a file.
func (m *MockFileSystem) WriteFile(path string, content []byte, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WrittenFiles[path] = content
	m.Modes[path] = perms
	return nil
}

// EnsureDirectory records the directory.
func (m *MockFileSystem) EnsureDirectory(path string, perms os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Directories[path] = true
	return nil
}

// BackupFile copies the file to path+".backup".
func (m *MockFileSystem) BackupFile(path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.WrittenFiles[path]
	if !ok {
		return "", nil
	}
	backupPath := path + ".backup"
	m.WrittenFiles[backupPath] = content
	m.Modes[backupPath] = m.Modes[path]
	return backupPath, nil
}

// RemoveFile forgets a file.
func (m *MockFileSystem) RemoveFile(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.WrittenFiles, path)
	delete(m.Modes, path)
	return nil
}
