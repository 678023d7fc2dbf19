// Package apply carries out the actions parsed from an edited listing.
//
// The Engine runs four passes in a fixed order:
//
//  1. stage every rename into a staging directory and remove non-directories
//  2. remove directories marked for removal, where that already succeeds
//  3. promote staged renames to their destinations and make copies
//  4. remove the directories that pass 2 could not
//
// Staging directories are cleaned up between passes 3 and 4. Every action
// is attempted independently; a failure is reported and tallied and the
// run carries on with the next action.
package apply
