package file

import (
	"os"
	"time"
)

// Utils defines file operation interfaces
type Utils interface {
	GetFileInfo(path string) (*FileInfo, error)
	OpenExclusive(path string) (*LockedFile, error)
	CalculateHash(path string, opts *HashOptions) (string, error)
	EnsureDirectory(path string) error
	WriteFile(path string, content []byte, opts *Options) error
	FileExists(path string) (bool, error)
	Remove(path string) error
}

// Options represents common file operation options
type Options struct {
	CreateDirs bool
	Overwrite  bool
	Mode       os.FileMode
}

// FileInfo represents metadata about a file
type FileInfo struct {
	Path       string
	Name       string
	FullPath   string
	Size       int64
	CreatedAt  time.Time // zero when the filesystem does not record birth time
	ModifiedAt time.Time
	Mode       os.FileMode
}

// HashOptions represents options for hash calculation
type HashOptions struct {
	Algorithm  string
	BufferSize int
}
