// nolint: forbidigo
package aferofs

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/batchmv/batchmv/internal/pkg/filesystem"
	"github.com/batchmv/batchmv/internal/pkg/filesystem/aferofs/localfs"
	"github.com/batchmv/batchmv/internal/pkg/filesystem/aferofs/memoryfs"
)

// NewLocalFs creates a filesystem abstraction rooted at the given directory.
func NewLocalFs(logger *zap.SugaredLogger, dir string) (fs filesystem.Fs, err error) {
	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf(`cannot get working dir from OS: %w`, err)
		}
	}

	// Convert path to absolute
	dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	// Base path must be a directory
	if stat, statErr := os.Stat(dir); statErr != nil {
		return nil, fmt.Errorf(`cannot open directory "%s": %w`, dir, statErr)
	} else if !stat.IsDir() {
		return nil, fmt.Errorf(`path "%s" is not a directory`, dir)
	}

	return New(logger, localfs.New(dir)), nil
}

// NewMemoryFs creates an in-memory filesystem abstraction, used in tests.
func NewMemoryFs(logger *zap.SugaredLogger) filesystem.Fs {
	return New(logger, memoryfs.New())
}
