package types

import (
	"path/filepath"
	"strings"
)

// Kind is the type of filesystem object an Entry refers to
type Kind int

const (
	// KindFile is any non-directory, non-symlink object
	KindFile Kind = iota
	// KindDirectory is a real directory. Symlinks to directories are KindSymlink.
	KindDirectory
	// KindSymlink is a symbolic link, whatever it points to
	KindSymlink
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// Entry is one filesystem path participating in the batch
type Entry struct {
	// OriginalPath is the cleaned path at listing-build time. Never changes.
	OriginalPath string
	Kind         Kind
	// Tracked is true when the version-control backend knows this path
	Tracked bool
	// Recursive caches whether a directory had children when the pending
	// set was computed, before any pass changed its contents.
	Recursive bool

	// Destination is nil when the entry is to be removed. A destination
	// equal to OriginalPath is a no-op.
	Destination *string
	// CopyTargets are extra destinations from repeated listing lines
	CopyTargets []string
	// StagingPath is set while the entry sits in a staging directory
	StagingPath string

	// removed is set once a directory removal has succeeded so later
	// passes skip it.
	removed bool
	// promoted is set once a staged entry reached its destination
	promoted bool
}

// NewEntry creates an entry for path with the given kind
func NewEntry(path string, kind Kind, tracked bool) *Entry {
	return &Entry{
		OriginalPath: filepath.Clean(path),
		Kind:         kind,
		Tracked:      tracked,
	}
}

// IsDir reports whether the entry is a real directory
func (e *Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// Suffix is the trailing separator shown after directory paths
func (e *Entry) Suffix() string {
	if e.IsDir() {
		return string(filepath.Separator)
	}
	return ""
}

// DisplayLabel is the path as written to the listing: relative paths get a
// ./ prefix so that names beginning with # or whitespace survive an edit,
// and directories get a trailing separator.
func (e *Entry) DisplayLabel() string {
	label := e.OriginalPath
	if !filepath.IsAbs(label) {
		label = "." + string(filepath.Separator) + label
	}
	if e.IsDir() && !strings.HasSuffix(label, string(filepath.Separator)) {
		label += string(filepath.Separator)
	}
	return label
}

// DiagLabel is the path as shown in action messages
func (e *Entry) DiagLabel() string {
	label := e.OriginalPath
	if e.IsDir() && !strings.HasSuffix(label, string(filepath.Separator)) {
		label += string(filepath.Separator)
	}
	return label
}

// ResetEdits clears everything a previous parse set
func (e *Entry) ResetEdits() {
	e.Destination = nil
	e.CopyTargets = e.CopyTargets[:0]
	e.StagingPath = ""
	e.removed = false
	e.promoted = false
}

// SetDestination records the destination path from the edited listing
func (e *Entry) SetDestination(path string) {
	p := path
	e.Destination = &p
}

// AddCopyTarget appends path unless it is the original path, the
// destination or already recorded. It reports whether the target was added.
func (e *Entry) AddCopyTarget(path string) bool {
	if path == e.OriginalPath {
		return false
	}
	if e.Destination != nil && *e.Destination == path {
		return false
	}
	for _, existing := range e.CopyTargets {
		if existing == path {
			return false
		}
	}
	e.CopyTargets = append(e.CopyTargets, path)
	return true
}

// IsRemove reports whether the entry is to be deleted
func (e *Entry) IsRemove() bool {
	return e.Destination == nil
}

// IsRename reports whether the entry moves to a different path
func (e *Entry) IsRename() bool {
	return e.Destination != nil && *e.Destination != e.OriginalPath
}

// IsPending reports whether the entry has any action to apply
func (e *Entry) IsPending() bool {
	return e.IsRemove() || e.IsRename() || len(e.CopyTargets) > 0
}

// DestinationPath returns the destination or "" for a removal
func (e *Entry) DestinationPath() string {
	if e.Destination == nil {
		return ""
	}
	return *e.Destination
}

// CurrentPath is where the entry lives right now: the staging path while
// staged, the destination once promoted, otherwise the original path.
func (e *Entry) CurrentPath() string {
	if e.StagingPath != "" {
		return e.StagingPath
	}
	if e.promoted && e.Destination != nil {
		return *e.Destination
	}
	return e.OriginalPath
}

// MarkStaged records that the entry now lives at stagingPath
func (e *Entry) MarkStaged(stagingPath string) {
	e.StagingPath = stagingPath
}

// MarkPromoted records the final path a staged entry was moved to. The
// final path may carry a collision suffix the user never typed.
func (e *Entry) MarkPromoted(finalPath string) {
	e.SetDestination(finalPath)
	e.StagingPath = ""
	e.promoted = true
}

// Staged reports whether the entry currently sits in a staging directory
func (e *Entry) Staged() bool {
	return e.StagingPath != ""
}

// MarkRemoved flags a directory whose removal has already succeeded
func (e *Entry) MarkRemoved() {
	e.removed = true
}

// Removed reports whether a removal already succeeded
func (e *Entry) Removed() bool {
	return e.removed
}

// Pending filters entries down to those with an action to apply,
// preserving listing order.
func Pending(entries []*Entry) []*Entry {
	var pending []*Entry
	for _, e := range entries {
		if e.IsPending() {
			pending = append(pending, e)
		}
	}
	return pending
}
