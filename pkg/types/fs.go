package types

import "io/fs"

// FS is the filesystem interface required for hashbust operations.
// Production code uses the OS implementation; tests typically use an
// afero MemMapFs behind the same interface.
type FS interface {
	// Stat returns file info, following symlinks
	Stat(name string) (fs.FileInfo, error)

	// ReadFile reads the entire file as raw bytes
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to a file, creating it if necessary
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory and all missing parents
	MkdirAll(path string, perm fs.FileMode) error

	// ReadDir reads the named directory and returns its entries
	ReadDir(name string) ([]fs.DirEntry, error)
}
