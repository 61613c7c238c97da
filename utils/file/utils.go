package file

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"
)

// ErrLocked is returned by OpenExclusive when another process holds the file.
var ErrLocked = errors.New("file is locked by another process")

// ErrNotRegular is returned for directories, devices and other special files.
var ErrNotRegular = errors.New("not a regular file")

type utils struct{}

func NewUtils() Utils {
	return &utils{}
}

// LockedFile is a write-only handle holding an exclusive lock on its file.
// Close releases the lock.
type LockedFile struct {
	*os.File
	size int64
}

// Size is the file length observed right after the lock was taken.
func (f *LockedFile) Size() int64 {
	return f.size
}

func (f *LockedFile) Close() error {
	unlockErr := unlockFile(f.File)
	if err := f.File.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	if unlockErr != nil {
		return fmt.Errorf("failed to unlock file: %w", unlockErr)
	}
	return nil
}

func (u *utils) OpenExclusive(path string) (*LockedFile, error) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	if err := lockFile(f); err != nil {
		f.Close()
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		unlockFile(f)
		f.Close()
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}
	if !info.Mode().IsRegular() {
		unlockFile(f)
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}

	return &LockedFile{File: f, size: info.Size()}, nil
}

func (u *utils) CalculateHash(path string, opts *HashOptions) (string, error) {
	if opts == nil {
		opts = &HashOptions{
			Algorithm:  "sha256",
			BufferSize: 32 * 1024, // 32KB buffer
		}
	}

	var h hash.Hash
	switch opts.Algorithm {
	case "", "sha256":
		h = sha256.New()
	case "sha512":
		h = sha512.New()
	default:
		return "", fmt.Errorf("unsupported hash algorithm: %s", opts.Algorithm)
	}

	bufSize := opts.BufferSize
	if bufSize <= 0 {
		bufSize = 32 * 1024
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if _, err := io.CopyBuffer(h, file, make([]byte, bufSize)); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

func (u *utils) EnsureDirectory(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

func (u *utils) GetFileInfo(path string) (*FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	fullPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	created, _ := birthTime(path)

	return &FileInfo{
		Path:       path,
		Name:       info.Name(),
		FullPath:   fullPath,
		Size:       info.Size(),
		CreatedAt:  created,
		ModifiedAt: info.ModTime(),
		Mode:       info.Mode(),
	}, nil
}

func (u *utils) WriteFile(path string, content []byte, opts *Options) error {
	if opts == nil {
		opts = &Options{
			CreateDirs: true,
			Overwrite:  false,
		}
	}

	if !opts.Overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("file already exists: %s", path)
		}
	}

	if opts.CreateDirs {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	mode := opts.Mode
	if mode == 0 {
		mode = 0644
	}
	if err := os.WriteFile(path, content, mode); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func (u *utils) FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (u *utils) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}
