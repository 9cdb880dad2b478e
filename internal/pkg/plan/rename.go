package plan

import (
	"fmt"
	"strings"

	"github.com/batchmv/batchmv/internal/pkg/filesystem"
	"github.com/batchmv/batchmv/internal/pkg/model"
	"github.com/batchmv/batchmv/internal/pkg/utils"
	"github.com/batchmv/batchmv/internal/pkg/validator"
)

// Rename creates a plan from the rename instructions.
// The plan is pure, no filesystem change is made until Invoke.
//
// Structural problems are rejected here, all at once:
//   - an instruction with a missing required field,
//   - a new name containing a path separator, a cross-directory move is not supported,
//   - two instructions targeting the same destination path.
//
// Whitespace-only new names are NOT rejected here, they stop the execution
// at the offending instruction, see the executor.
func Rename(files []*model.RenameFile) (*Plan, error) {
	errors := utils.NewMultiError()
	errors.SetPrefix("invalid rename batch:")

	plan := &Plan{}
	destinations := make(map[string]string) // new path -> name of the file that claimed it
	for _, file := range files {
		if err := validator.Validate(file); err != nil {
			errors.AppendWithPrefix(fmt.Sprintf(`invalid instruction for file "%s"`, file.Name), err)
			continue
		}

		// An empty name stops the execution at this instruction,
		// so it is excluded from the structural checks below.
		if strings.TrimSpace(file.NewName) == "" {
			plan.actions = append(plan.actions, model.RenameAction{
				OldPath:     file.Path,
				NewPath:     file.Path,
				NewName:     file.NewName,
				Description: fmt.Sprintf(`%s -> ?`, file.Path),
			})
			continue
		}

		if strings.ContainsAny(file.NewName, `/\`) {
			errors.Append(fmt.Errorf(`new name "%s" for file "%s" must not contain a path separator`, file.NewName, file.Name))
			continue
		}

		newPath := filesystem.ReplaceBase(file.Path, file.NewName)
		if owner, found := destinations[newPath]; found {
			errors.Append(fmt.Errorf(`files "%s" and "%s" have the same new path "%s"`, owner, file.Name, newPath))
			continue
		}
		destinations[newPath] = file.Name

		plan.actions = append(plan.actions, model.RenameAction{
			OldPath:     file.Path,
			NewPath:     newPath,
			NewName:     file.NewName,
			Description: fmt.Sprintf(`%s -> %s`, file.Path, newPath),
		})
	}

	if err := errors.ErrorOrNil(); err != nil {
		return nil, err
	}

	return plan, nil
}
