// Package listing converts between entries and the numbered text listing
// the user edits.
//
// Each written line is a zero-padded 1-based number, two spaces, and the
// entry's display label:
//
//	1  ./notes.txt
//	2  ./photos/
//
// On read, blank lines and lines whose first non-blank character is # are
// skipped. The number is the only thing tying a line back to its entry.
// A number that never appears marks its entry for removal; a number that
// appears again with a different path adds a copy target.
package listing
