package system

import "os"

// FileSystemManager defines the interface for file system operations.
// This allows for mocking the file system in tests.
type FileSystemManager interface {
	FileExists(path string) (bool, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte, perms os.FileMode) error
	EnsureDirectory(path string, perms os.FileMode) error
	BackupFile(path string) (string, error)
	RemoveFile(path string) error
}
