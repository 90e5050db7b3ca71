package project

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// Tree provides the file reads the audit engine performs against a project root.
type Tree interface {
	FileExists(relativePath string) bool
	ReadFile(relativePath string) (string, error)
}

// FilesystemTree implements Tree over an afero filesystem rooted at the inspected project directory.
type FilesystemTree struct {
	fileSystem afero.Fs
}

// NewFilesystemTree constructs a read-only tree rooted at the provided project directory.
func NewFilesystemTree(projectRoot string) *FilesystemTree {
	baseFileSystem := afero.NewBasePathFs(afero.NewReadOnlyFs(afero.NewOsFs()), projectRoot)
	return &FilesystemTree{fileSystem: baseFileSystem}
}

// NewTreeFromFilesystem wraps an existing afero filesystem, typically an in-memory tree used by tests.
func NewTreeFromFilesystem(fileSystem afero.Fs) *FilesystemTree {
	if fileSystem == nil {
		fileSystem = afero.NewMemMapFs()
	}
	return &FilesystemTree{fileSystem: fileSystem}
}

// FileExists reports whether the relative path resolves to an existing entry.
func (tree *FilesystemTree) FileExists(relativePath string) bool {
	exists, existsError := afero.Exists(tree.fileSystem, filepath.FromSlash(relativePath))
	if existsError != nil {
		return false
	}
	return exists
}

// ReadFile returns the textual content stored at the relative path.
func (tree *FilesystemTree) ReadFile(relativePath string) (string, error) {
	content, readError := afero.ReadFile(tree.fileSystem, filepath.FromSlash(relativePath))
	if readError != nil {
		return "", readError
	}
	return string(content), nil
}
