package aferofs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/batchmv/batchmv/internal/pkg/filesystem"
)

// backend is implemented by localfs.LocalFs and memoryfs.MemoryFs.
type backend interface {
	afero.Fs
	Name() string
	BasePath() string
}

// Fs implements the filesystem.Fs abstraction on top of an Afero backend.
type Fs struct {
	logger  *zap.SugaredLogger
	backend backend
	utils   *afero.Afero
}

func New(logger *zap.SugaredLogger, backend backend) *Fs {
	return &Fs{
		logger:  logger,
		backend: backend,
		utils:   &afero.Afero{Fs: backend},
	}
}

func (fs *Fs) Name() string {
	return fs.backend.Name()
}

func (fs *Fs) BasePath() string {
	return fs.backend.BasePath()
}

func (fs *Fs) Stat(path string) (os.FileInfo, error) {
	return fs.backend.Stat(path)
}

func (fs *Fs) ReadDir(path string) ([]os.FileInfo, error) {
	return fs.utils.ReadDir(path)
}

func (fs *Fs) Mkdir(path string) error {
	if err := fs.utils.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf(`cannot create directory "%s": %w`, path, err)
	}
	fs.logger.Debugf(`Created directory "%s"`, path)
	return nil
}

func (fs *Fs) Exists(path string) bool {
	if _, err := fs.backend.Stat(path); err == nil {
		return true
	}
	return false
}

func (fs *Fs) IsFile(path string) bool {
	if s, err := fs.backend.Stat(path); err == nil {
		return s.Mode().IsRegular()
	}
	return false
}

func (fs *Fs) IsDir(path string) bool {
	if s, err := fs.backend.Stat(path); err == nil {
		return s.IsDir()
	}
	return false
}

// Move renames a file or directory, the parent of the destination must exist.
func (fs *Fs) Move(src, dst string) error {
	if err := fs.backend.Rename(src, dst); err != nil {
		// Unwrap os.LinkError, the rest of the message is composed here
		var linkErr *os.LinkError
		if errors.As(err, &linkErr) {
			err = linkErr.Err
		}
		return fmt.Errorf(`cannot move "%s" -> "%s": %w`, src, dst, err)
	}
	fs.logger.Debugf(`Moved "%s" -> "%s"`, src, dst)
	return nil
}

func (fs *Fs) ReadFile(path, desc string) (*filesystem.File, error) {
	desc = strings.TrimSpace(desc + " file")
	content, err := fs.utils.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(`cannot read %s "%s": %w`, desc, path, err)
	}

	fs.logger.Debugf(`Loaded "%s"`, path)
	file := filesystem.CreateFile(path, string(content))
	file.Description = desc
	return file, nil
}

func (fs *Fs) WriteFile(file *filesystem.File) error {
	desc := strings.TrimSpace(file.Description + " file")

	// Create dir
	dir := filesystem.Dir(file.Path)
	if !fs.Exists(dir) {
		if err := fs.Mkdir(dir); err != nil {
			return err
		}
	}

	if err := fs.utils.WriteFile(file.Path, []byte(file.Content), 0o644); err != nil {
		return fmt.Errorf(`cannot write %s "%s": %w`, desc, file.Path, err)
	}

	fs.logger.Debugf(`Saved "%s"`, file.Path)
	return nil
}
