package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/batchmv/batchmv/internal/pkg/encoding/json"
	"github.com/batchmv/batchmv/internal/pkg/filesystem"
	"github.com/batchmv/batchmv/internal/pkg/interaction"
	"github.com/batchmv/batchmv/internal/pkg/model"
	"github.com/batchmv/batchmv/internal/pkg/plan"
	"github.com/batchmv/batchmv/internal/pkg/utils"
)

const (
	renameShortDescription = `Rename files according to a batch of instructions`
	renameLongDescription  = `Command "rename"

Rename files according to a batch of instructions.

A single file can be renamed directly:
  batchmv rename old.txt new.txt

A batch is loaded from a JSON file, produced for example by "list --format json",
with a "newName" set on each entry:
  batchmv rename --batch plan.json

The instructions are applied in order and the operation
stops on the first failure, finished renames are kept.
`
)

func renameCommand(root *rootCommand) *cobra.Command {
	batchPath := ""
	autoApprove := false
	cmd := &cobra.Command{
		Use:   "rename [old-name new-name]",
		Short: renameShortDescription,
		Long:  renameLongDescription,
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Assemble rename instructions
			var files []*model.RenameFile
			var err error
			switch {
			case len(batchPath) > 0 && len(args) > 0:
				return fmt.Errorf(`use either the "--batch" flag or the [old-name new-name] arguments, not both`)
			case len(batchPath) > 0:
				files, err = loadBatchFile(batchPath)
			case len(args) == 2:
				files, err = singleRename(root, args[0], args[1])
			default:
				return fmt.Errorf(`nothing to rename, use the "--batch" flag or the [old-name new-name] arguments`)
			}
			if err != nil {
				return err
			}

			// Create plan
			renamePlan, err := plan.Rename(files)
			if err != nil {
				return err
			}
			if renamePlan.Empty() {
				root.logger.Info("No paths to rename.")
				return nil
			}

			// Preview and confirm
			renamePlan.LogInfo(root.logger)
			if !autoApprove {
				confirmed := root.prompt.Confirm(&interaction.Confirm{
					Label:   "Do you want to rename the files listed above?",
					Default: true,
				})
				if !confirmed {
					root.logger.Info("Aborted.")
					return nil
				}
			}

			// Invoke
			if err := renamePlan.Invoke(root.logger, root.fs); err != nil {
				return err
			}

			root.logger.Infof("All %d files have been renamed.", len(renamePlan.Actions()))
			return nil
		},
	}

	cmd.Flags().SortFlags = true
	cmd.Flags().StringVar(&batchPath, "batch", "", "path to a JSON file with the rename instructions")
	cmd.Flags().BoolVarP(&autoApprove, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

// loadBatchFile reads rename instructions from a JSON file.
// The file can be outside the working directory, so it is NOT using the virtual filesystem.
func loadBatchFile(path string) ([]*model.RenameFile, error) {
	// nolint: forbidigo
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(`cannot read batch file "%s": %w`, path, err)
	}

	// Decode draft entries, so a missing "newName" is reported
	// by the narrowing conversion below, not by the decoder.
	var entries []*model.FileEntry
	if err := json.Decode(content, &entries); err != nil {
		return nil, fmt.Errorf(`invalid batch file "%s": %w`, path, err)
	}

	errs := utils.NewMultiError()
	errs.SetPrefix(fmt.Sprintf(`invalid batch file "%s":`, path))
	files := make([]*model.RenameFile, 0, len(entries))
	for _, entry := range entries {
		file, err := entry.ToRenameFile()
		if err != nil {
			errs.Append(err)
			continue
		}
		files = append(files, file)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return files, nil
}

// singleRename builds one instruction from the command arguments.
func singleRename(root *rootCommand, oldName, newName string) ([]*model.RenameFile, error) {
	info, err := root.fs.Stat(oldName)
	if err != nil {
		return nil, fmt.Errorf(`cannot read file "%s": %w`, oldName, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf(`path "%s" is not a regular file`, oldName)
	}

	entry := &model.FileEntry{
		Name:     filesystem.Base(oldName),
		Path:     oldName,
		Modified: info.ModTime().UTC(),
	}
	entry.SetNewName(newName)

	file, err := entry.ToRenameFile()
	if err != nil {
		return nil, err
	}
	return []*model.RenameFile{file}, nil
}
