package fs

import (
	"io"
	"os"
)

// FS abstracts the filesystem operations the stores need, so tests can run
// against an in-memory implementation.
type FS interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Remove(path string) error
	RemoveAll(path string) error
	Rename(oldPath, newPath string) error
	Stat(path string) (os.FileInfo, error)
	ReadDir(path string) ([]os.DirEntry, error)
	CreateTemp(dir, pattern string) (io.WriteCloser, string, error)
	Exists(path string) bool
	IsDir(path string) bool
}
