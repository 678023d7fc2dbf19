// Package output prints edir's user-facing action lines.
//
// Every attempted action produces one line. Successes go to stdout in the
// past tense ("Renamed"), failures go to stderr in the imperative followed
// by the error detail:
//
//	Renamed "a.txt" to "b.txt"
//	Remove "dir/" ERROR: Directory not empty
//
// Preview lines use the present participle ("Renaming") and are printed
// even in quiet mode. Lines are coloured by action through the styles
// package when the stream supports it.
package output
