package testutils

import (
	"path"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
)

// TestFileSystem provides an in-memory file system
// populated with the given files.
func TestFileSystem(files map[string]string) (vfs.FileSystem, error) {
	fs := memoryfs.New()
	for name, content := range files {
		err := fs.MkdirAll(path.Dir(name), 0o700)
		if err != nil {
			return nil, err
		}
		err = vfs.WriteFile(fs, name, []byte(content), 0o600)
		if err != nil {
			return nil, err
		}
	}
	return fs, nil
}
