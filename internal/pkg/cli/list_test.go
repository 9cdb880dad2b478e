package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/batchmv/batchmv/internal/pkg/filesystem"
)

func TestListCommand(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	assert.NoError(t, os.WriteFile(filesystem.Join(tempDir, "one.txt"), []byte("1"), 0o644))
	assert.NoError(t, os.WriteFile(filesystem.Join(tempDir, "two.txt"), []byte("2"), 0o644))
	assert.NoError(t, os.Mkdir(filesystem.Join(tempDir, "sub"), 0o755))

	root, out := newTestRootCommand()
	root.cmd.SetArgs([]string{"list", "--sort", "--working-dir", tempDir})
	assert.Equal(t, 0, root.Execute())

	output := out.String()
	assert.Contains(t, output, `Found 2 files in directory "."`)
	assert.Contains(t, output, `one.txt`)
	assert.Contains(t, output, `two.txt`)
	assert.NotContains(t, output, `sub`)
}

func TestListCommandJson(t *testing.T) {
	t.Parallel()
	tempDir := t.TempDir()
	assert.NoError(t, os.WriteFile(filesystem.Join(tempDir, "one.txt"), []byte("1"), 0o644))

	root, out := newTestRootCommand()
	root.cmd.SetArgs([]string{"list", "--format", "json", "--working-dir", tempDir})
	assert.Equal(t, 0, root.Execute())

	output := out.String()
	assert.Contains(t, output, `"name": "one.txt"`)
	assert.Contains(t, output, `"path": "one.txt"`)
	assert.Contains(t, output, `"modified"`)
	assert.NotContains(t, output, `"newName"`)
}

func TestListCommandMissingDir(t *testing.T) {
	t.Parallel()
	root, out := newTestRootCommand()
	root.cmd.SetArgs([]string{"list", "missing", "--working-dir", t.TempDir()})
	assert.Equal(t, 1, root.Execute())
	assert.Contains(t, out.String(), `cannot read directory "missing"`)
}

func TestListCommandInvalidFormat(t *testing.T) {
	t.Parallel()
	root, out := newTestRootCommand()
	root.cmd.SetArgs([]string{"list", "--format", "xml", "--working-dir", t.TempDir()})
	assert.Equal(t, 1, root.Execute())
	assert.Contains(t, out.String(), `invalid format "xml"`)
}
