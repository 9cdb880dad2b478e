package plan

import (
	"strings"

	"go.uber.org/zap"

	"github.com/batchmv/batchmv/internal/pkg/filesystem"
	"github.com/batchmv/batchmv/internal/pkg/model"
)

type renameExecutor struct {
	*Plan
	logger *zap.SugaredLogger
	fs     filesystem.Fs
}

func newRenameExecutor(logger *zap.SugaredLogger, fs filesystem.Fs, plan *Plan) *renameExecutor {
	return &renameExecutor{Plan: plan, logger: logger, fs: fs}
}

// invoke applies the actions one by one and stops on the first failure.
// There is no rollback, finished renames are kept.
func (e *renameExecutor) invoke() error {
	if len(e.actions) == 0 {
		e.logger.Debug(`No path to rename.`)
		return nil
	}

	e.LogDebug(e.logger)
	e.logger.Debugf(`Starting renaming of the %d paths.`, len(e.actions))
	for _, action := range e.actions {
		// Validate the new name
		if strings.TrimSpace(action.NewName) == "" {
			return &model.ValidationError{FileName: filesystem.Base(action.OldPath)}
		}

		// Rename, the operation is atomic on the OS level
		if err := e.fs.Move(action.OldPath, action.NewPath); err != nil {
			return err
		}
	}

	e.logger.Debugf(`All %d paths have been renamed.`, len(e.actions))
	return nil
}
