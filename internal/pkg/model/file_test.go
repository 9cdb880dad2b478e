package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToRenameFile(t *testing.T) {
	t.Parallel()
	modified := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	entry := &FileEntry{Name: `a.txt`, Path: `a.txt`, Modified: modified}
	entry.SetNewName(`b.txt`)

	file, err := entry.ToRenameFile()
	assert.NoError(t, err)
	assert.Equal(t, &RenameFile{Name: `a.txt`, Path: `a.txt`, Modified: modified, NewName: `b.txt`}, file)
}

func TestToRenameFileMissingProposal(t *testing.T) {
	t.Parallel()
	entry := &FileEntry{Name: `a.txt`, Path: `a.txt`}

	file, err := entry.ToRenameFile()
	assert.Nil(t, file)
	assert.Error(t, err)

	var expected *MissingProposalError
	assert.True(t, errors.As(err, &expected))
	assert.Equal(t, `missing new name for file "a.txt"`, err.Error())
}
