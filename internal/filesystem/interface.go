package filesystem

import (
	"io/fs"
)

// FileSystem provides an abstraction over the file reads the shell performs
// (config and script files) so they can be tested in memory
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
}
