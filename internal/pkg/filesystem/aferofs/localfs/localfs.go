package localfs

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

type fs = afero.Fs

// LocalFs is abstraction of the local filesystem implemented by the "os" package.
// All paths are relative to the basePath.
type LocalFs struct {
	fs
	basePath string
}

func New(basePath string) *LocalFs {
	if !filepath.IsAbs(basePath) {
		panic(fmt.Errorf(`base path "%s" must be absolute`, basePath))
	}

	return &LocalFs{
		fs:       afero.NewBasePathFs(afero.NewOsFs(), basePath),
		basePath: basePath,
	}
}

func (fs *LocalFs) Name() string {
	return `local`
}

func (fs *LocalFs) BasePath() string {
	return fs.basePath
}
