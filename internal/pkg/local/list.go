package local

import (
	"fmt"

	"github.com/batchmv/batchmv/internal/pkg/filesystem"
	"github.com/batchmv/batchmv/internal/pkg/model"
)

// ListFiles returns entries for all regular files in the directory.
// Sub-directories, symlinks and special files are skipped.
// The order of the entries follows the filesystem enumeration, it is not sorted.
// Any read error aborts the whole listing, no partial result is returned.
func (m *Manager) ListFiles(dir string) ([]*model.FileEntry, error) {
	items, err := m.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf(`cannot read directory "%s": %w`, dir, err)
	}

	entries := make([]*model.FileEntry, 0, len(items))
	for _, item := range items {
		// Only regular files
		if !item.Mode().IsRegular() {
			m.logger.Debugf(`Skipped "%s", not a regular file`, item.Name())
			continue
		}

		entries = append(entries, &model.FileEntry{
			Name:     item.Name(),
			Path:     filesystem.Join(dir, item.Name()),
			Modified: item.ModTime().UTC(),
		})
	}

	m.logger.Debugf(`Found %d files in directory "%s"`, len(entries), dir)
	return entries, nil
}
