package local

import (
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/batchmv/batchmv/internal/pkg/filesystem"
	"github.com/batchmv/batchmv/internal/pkg/filesystem/aferofs"
	"github.com/batchmv/batchmv/internal/pkg/log"
	"github.com/batchmv/batchmv/internal/pkg/utils"
)

func newTestManager(t *testing.T) (*Manager, filesystem.Fs) {
	t.Helper()
	logger, _, _ := utils.NewDebugLogger()
	fs := aferofs.NewMemoryFs(logger)
	return NewManager(logger, fs), fs
}

func TestListFilesEmptyDir(t *testing.T) {
	t.Parallel()
	m, fs := newTestManager(t)
	assert.NoError(t, fs.Mkdir(`dir`))

	entries, err := m.ListFiles(`dir`)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListFilesAllRegular(t *testing.T) {
	t.Parallel()
	m, fs := newTestManager(t)
	assert.NoError(t, fs.WriteFile(filesystem.CreateFile(`dir/one.txt`, `1`)))
	assert.NoError(t, fs.WriteFile(filesystem.CreateFile(`dir/two.txt`, `2`)))
	assert.NoError(t, fs.WriteFile(filesystem.CreateFile(`dir/three.txt`, `3`)))

	entries, err := m.ListFiles(`dir`)
	assert.NoError(t, err)
	assert.Len(t, entries, 3)

	names := make(map[string]string)
	for _, entry := range entries {
		names[entry.Name] = entry.Path
		assert.Equal(t, time.UTC, entry.Modified.Location())
		assert.Nil(t, entry.NewName)
	}
	assert.Equal(t, map[string]string{
		`one.txt`:   `dir/one.txt`,
		`two.txt`:   `dir/two.txt`,
		`three.txt`: `dir/three.txt`,
	}, names)
}

func TestListFilesSkipsDirectories(t *testing.T) {
	t.Parallel()
	m, fs := newTestManager(t)
	assert.NoError(t, fs.WriteFile(filesystem.CreateFile(`dir/file.txt`, `content`)))
	assert.NoError(t, fs.Mkdir(`dir/sub`))

	entries, err := m.ListFiles(`dir`)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, `file.txt`, entries[0].Name)
}

func TestListFilesSkipsSymlinks(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated rights on Windows")
	}

	// Symlinks need a real filesystem, the memory backend cannot create them
	tempDir := t.TempDir()
	assert.NoError(t, os.WriteFile(filesystem.Join(tempDir, "file.txt"), []byte("content"), 0o644))
	assert.NoError(t, os.Mkdir(filesystem.Join(tempDir, "sub"), 0o755))
	assert.NoError(t, os.Symlink(filesystem.Join(tempDir, "file.txt"), filesystem.Join(tempDir, "link-to-file")))
	assert.NoError(t, os.Symlink(filesystem.Join(tempDir, "sub"), filesystem.Join(tempDir, "link-to-dir")))

	fs, err := aferofs.NewLocalFs(log.NewNopLogger(), tempDir)
	assert.NoError(t, err)
	m := NewManager(log.NewNopLogger(), fs)

	// Only the regular file is listed, both symlinks and the directory are skipped
	entries, err := m.ListFiles(`.`)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, `file.txt`, entries[0].Name)
}

func TestListFilesMissingDir(t *testing.T) {
	t.Parallel()
	m, _ := newTestManager(t)

	entries, err := m.ListFiles(`missing`)
	assert.Nil(t, entries)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `cannot read directory "missing"`)
}

func TestListFilesIdempotent(t *testing.T) {
	t.Parallel()
	m, fs := newTestManager(t)
	assert.NoError(t, fs.WriteFile(filesystem.CreateFile(`dir/one.txt`, `1`)))
	assert.NoError(t, fs.WriteFile(filesystem.CreateFile(`dir/two.txt`, `2`)))

	first, err := m.ListFiles(`dir`)
	assert.NoError(t, err)
	second, err := m.ListFiles(`dir`)
	assert.NoError(t, err)
	assert.ElementsMatch(t, first, second)
}
