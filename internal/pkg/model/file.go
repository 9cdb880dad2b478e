package model

import (
	"fmt"
	"time"
)

// FileEntry - one regular file discovered in a directory.
// NewName is unset until the user proposes a new name.
type FileEntry struct {
	Name     string    `json:"name" validate:"required"`
	Path     string    `json:"path" validate:"required"`
	Modified time.Time `json:"modified"`
	NewName  *string   `json:"newName,omitempty"`
}

// RenameFile - one accepted rename instruction, NewName is required.
// It is created from a FileEntry by the ToRenameFile conversion,
// an entry without a proposed name must never reach the rename step.
type RenameFile struct {
	Name     string    `json:"name" validate:"required"`
	Path     string    `json:"path" validate:"required"`
	Modified time.Time `json:"modified"`
	// NewName is validated by the executor, a whitespace-only value
	// must stop the batch at this instruction, not up front.
	NewName string `json:"newName"`
}

// RenameAction - one executable step of a rename plan.
type RenameAction struct {
	OldPath     string
	NewPath     string
	NewName     string
	Description string
}

func (a RenameAction) String() string {
	return a.Description
}

// SetNewName proposes a new name for the entry.
func (f *FileEntry) SetNewName(newName string) {
	f.NewName = &newName
}

// ToRenameFile converts the draft entry to a rename instruction.
// It fails if no new name has been proposed.
func (f *FileEntry) ToRenameFile() (*RenameFile, error) {
	if f.NewName == nil {
		return nil, &MissingProposalError{FileName: f.Name}
	}
	return &RenameFile{
		Name:     f.Name,
		Path:     f.Path,
		Modified: f.Modified,
		NewName:  *f.NewName,
	}, nil
}

// ValidationError - a proposed new name is empty or whitespace-only.
type ValidationError struct {
	FileName string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf(`new name is empty for file "%s"`, e.FileName)
}

// MissingProposalError - an entry reached the rename step without a proposed name.
type MissingProposalError struct {
	FileName string
}

func (e *MissingProposalError) Error() string {
	return fmt.Sprintf(`missing new name for file "%s"`, e.FileName)
}
