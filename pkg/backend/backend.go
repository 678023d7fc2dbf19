package backend

import (
	"github.com/arthur-debert/edir/pkg/errors"
	"github.com/arthur-debert/edir/pkg/filesystem"
	"github.com/arthur-debert/edir/pkg/types"
)

// NotEmptyMessage is the user-facing text for a refused directory removal
const NotEmptyMessage = "Directory not empty"

// Backend performs the three mutating operations of an apply run
type Backend interface {
	// Remove deletes path. A non-empty directory is refused unless recurse
	// is set.
	Remove(path string, recurse bool) error
	// Rename moves src to dst. The parent of dst must already exist.
	Rename(src, dst string) error
	// Copy copies a file or directory tree to dst.
	Copy(src, dst string) error
	// Name identifies the backend in logs
	Name() string
}

// Selector picks the backend for an entry
type Selector struct {
	Plain Backend
	// VCS is nil when version control is disabled
	VCS Backend
}

// For returns the backend responsible for e
func (s Selector) For(e *types.Entry) Backend {
	if e.Tracked && s.VCS != nil {
		return s.VCS
	}
	return s.Plain
}

// checkRemovable refuses a non-recursive removal of a directory that still
// has children. Symlinks to directories are removable as links.
func checkRemovable(fsys filesystem.FS, path string, recurse bool) error {
	if recurse {
		return nil
	}
	if filesystem.HasChildren(fsys, path) {
		return errors.New(errors.ErrNotEmpty, NotEmptyMessage).WithDetail("path", path)
	}
	return nil
}
