// Package entries builds the list of paths shown in the listing.
//
// Input names come from the command line and, when "-" is given or stdin
// is not a terminal, from stdin one per line. Directories named on the
// command line are expanded to their children unless DirNames is set.
// The result can be filtered to files, directories or non-links, sorted
// by name, modification time or size, and grouped with directories first
// or last.
package entries
