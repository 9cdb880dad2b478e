package local

import (
	"go.uber.org/zap"

	"github.com/batchmv/batchmv/internal/pkg/filesystem"
)

// Manager provides operations on files in the local directory.
type Manager struct {
	logger *zap.SugaredLogger
	fs     filesystem.Fs
}

func NewManager(logger *zap.SugaredLogger, fs filesystem.Fs) *Manager {
	return &Manager{
		logger: logger,
		fs:     fs,
	}
}
