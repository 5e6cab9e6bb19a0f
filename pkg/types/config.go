package types

import (
	"errors"
	"path/filepath"
	"strings"
)

// DefaultStorageFile is the name of the dictionary document inside DataDir.
const DefaultStorageFile = "storage.json"

// Config holds the location of the dictionary document.
type Config struct {
	DataDir     string `json:"data_dir" yaml:"data_dir"`
	StorageFile string `json:"storage_file,omitempty" yaml:"storage_file,omitempty"`
}

// Config validation errors.
var (
	ErrDataDirEmpty       = errors.New("data directory must not be empty")
	ErrStorageFileInvalid = errors.New("storage file must be a plain file name")
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if c.StorageFile == "" {
		return nil
	}
	if c.StorageFile != filepath.Base(c.StorageFile) || strings.HasPrefix(c.StorageFile, ".") {
		return ErrStorageFileInvalid
	}
	return nil
}

// StoragePath returns the full path of the dictionary document.
func (c Config) StoragePath() string {
	name := c.StorageFile
	if name == "" {
		name = DefaultStorageFile
	}
	return filepath.Join(c.DataDir, name)
}
