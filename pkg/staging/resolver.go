package staging

import (
	"path/filepath"
	"strconv"

	"github.com/arthur-debert/edir/pkg/filesystem"
	"github.com/arthur-debert/edir/pkg/logging"
	"github.com/rs/zerolog"
)

// SuffixMarker is appended to a base name to make it unique
const SuffixMarker = "~"

// Resolver finds unused names. A name is used when anything exists there
// on disk, including a broken symlink, or when it was reserved earlier in
// the same run.
type Resolver struct {
	fs       filesystem.FS
	reserved map[string]bool
	logger   zerolog.Logger
}

// NewResolver creates a resolver over fsys with an empty reservation set
func NewResolver(fsys filesystem.FS) *Resolver {
	return &Resolver{
		fs:       fsys,
		reserved: make(map[string]bool),
		logger:   logging.GetLogger("staging.resolver"),
	}
}

// Unique returns candidate if it is free, otherwise the first free name
// among candidate~, candidate~1, candidate~2, ... The search has no upper
// bound; it ends because only finitely many names can exist.
func (r *Resolver) Unique(candidate string) string {
	dir, name := filepath.Split(candidate)
	path := candidate
	for attempt := 0; r.taken(path); attempt++ {
		r.logger.Trace().Str("path", path).Msg("Name taken")
		path = dir + name + suffix(attempt)
	}
	return path
}

// Reserve marks path as used for the rest of the run
func (r *Resolver) Reserve(path string) {
	r.reserved[path] = true
}

func (r *Resolver) taken(path string) bool {
	return r.reserved[path] || filesystem.Exists(r.fs, path)
}

func suffix(attempt int) string {
	if attempt == 0 {
		return SuffixMarker
	}
	return SuffixMarker + strconv.Itoa(attempt)
}
