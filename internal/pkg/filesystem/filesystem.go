// nolint: forbidigo
package filesystem

import (
	"os"
	"path/filepath"
)

// Fs - filesystem abstraction, all paths are relative to the base path.
type Fs interface {
	Name() string // name of the used implementation, for example local, memory, ...
	BasePath() string
	Stat(path string) (os.FileInfo, error)
	ReadDir(path string) ([]os.FileInfo, error)
	Mkdir(path string) error
	Exists(path string) bool
	IsFile(path string) bool
	IsDir(path string) bool
	Move(src, dst string) error
	ReadFile(path, desc string) (*File, error)
	WriteFile(file *File) error
}

// Join joins any number of path elements into a single path.
func Join(elem ...string) string {
	return filepath.Join(elem...)
}

// Dir returns all but the last element of path, typically the path's directory.
func Dir(path string) string {
	return filepath.Dir(path)
}

// Base returns the last element of path.
func Base(path string) string {
	return filepath.Base(path)
}

// ReplaceBase returns path with the last element replaced by the new name.
func ReplaceBase(path, newName string) string {
	return Join(Dir(path), newName)
}
