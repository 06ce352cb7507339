package ports

import "io/fs"

// FileSystem abstracts file system operations so sinks and sources can
// be tested without touching disk.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// ReadDir lists a directory, sorted by file name.
	ReadDir(path string) ([]fs.DirEntry, error)

	// WriteFile writes data to a file, creating parent directories as
	// needed.
	WriteFile(path string, data []byte) error

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// Exists reports whether a file or directory exists.
	Exists(path string) (bool, error)

	// Remove deletes a file or empty directory.
	Remove(path string) error
}
