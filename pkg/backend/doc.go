// Package backend provides the operations that actually mutate paths.
//
// Plain works directly on the filesystem, optionally routing removals
// through an external trash program. Git routes removals and renames of
// tracked paths through git so the index follows the change. Which
// backend handles an entry is decided once, when the apply engine is
// built, from the entry's tracked flag.
package backend
