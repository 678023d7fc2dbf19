// Package filesystem provides the filesystem abstraction edir mutates
// through.
//
// FS is implemented on top of afero so that the same code runs against
// the real OS filesystem and an in-memory filesystem in tests. The package
// also carries the copy primitives used for duplicate-line copies: a file
// copy that preserves mode and modification time and creates missing
// parents, and a tree copy for directories.
package filesystem
