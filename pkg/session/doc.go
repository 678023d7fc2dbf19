// Package session runs the edit loop: write the listing, let the user
// edit it, parse it back and optionally confirm the pending actions.
//
// The loop only reads the filesystem. Any error it returns is fatal and
// means nothing has been changed.
package session
