// Package project exposes read-only access to an inspected project tree.
//
// Tree is the abstraction the audit engine reads through; FilesystemTree backs
// it with an afero filesystem so tests can substitute synthetic in-memory
// trees for the real project directory.
package project
