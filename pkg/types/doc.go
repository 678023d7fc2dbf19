// Package types defines the entry model shared by edir's packages: one
// Entry per filesystem path in the listing, its kind, and the edit state
// (destination, extra copy targets, staging path) that the listing parser
// fills in and the apply engine consumes.
package types
