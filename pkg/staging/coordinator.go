package staging

import (
	"path/filepath"

	"github.com/arthur-debert/edir/pkg/backend"
	"github.com/arthur-debert/edir/pkg/errors"
	"github.com/arthur-debert/edir/pkg/filesystem"
	"github.com/arthur-debert/edir/pkg/logging"
	"github.com/arthur-debert/edir/pkg/paths"
	"github.com/arthur-debert/edir/pkg/types"
	"github.com/rs/zerolog"
)

// Coordinator moves renamed entries through per-destination staging
// directories. One Coordinator serves exactly one apply run.
type Coordinator struct {
	fs       filesystem.FS
	resolver *Resolver
	logger   zerolog.Logger

	// dirs is every staging directory created in this run, in creation order
	dirs []string
	// held maps a staging directory to the entries staged into it
	held map[string][]*types.Entry
}

// NewCoordinator creates a coordinator with no staging directories
func NewCoordinator(fsys filesystem.FS) *Coordinator {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Coordinator{
		fs:       fsys,
		resolver: NewResolver(fsys),
		logger:   logging.GetLogger("staging.coordinator"),
		held:     make(map[string][]*types.Entry),
	}
}

// Resolver returns the collision resolver shared by staging and promotion
func (c *Coordinator) Resolver() *Resolver {
	return c.resolver
}

// DirFor returns the staging directory used for a destination path
func DirFor(destination string) string {
	return filepath.Join(filepath.Dir(destination), paths.StagingDirName)
}

// Stage moves a renamed entry into the staging directory next to its
// destination. Entries that are not renames are left alone. On error the
// entry stays at its original path and is not staged.
func (c *Coordinator) Stage(e *types.Entry, b backend.Backend) error {
	if !e.IsRename() {
		return nil
	}

	dest := e.DestinationPath()
	dir := DirFor(dest)
	if err := c.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, errors.ErrStaging, "create staging directory").
			WithDetail("dir", dir)
	}
	c.track(dir)

	stagingPath := c.resolver.Unique(filepath.Join(dir, filepath.Base(dest)))
	c.resolver.Reserve(stagingPath)

	if err := b.Rename(e.OriginalPath, stagingPath); err != nil {
		return err
	}

	e.MarkStaged(stagingPath)
	c.held[dir] = append(c.held[dir], e)
	c.logger.Debug().
		Str("path", e.OriginalPath).
		Str("staging", stagingPath).
		Str("backend", b.Name()).
		Msg("Staged")
	return nil
}

// Promote moves a staged entry to its destination, or to the first free
// suffixed name if the destination is occupied by then. It returns the
// path it tried, so failures can be reported against it. Entries that are
// not staged are skipped with an empty path and nil error.
func (c *Coordinator) Promote(e *types.Entry, b backend.Backend) (string, error) {
	if !e.Staged() {
		return "", nil
	}

	final := c.resolver.Unique(e.DestinationPath())
	if err := b.Rename(e.StagingPath, final); err != nil {
		return final, err
	}

	if final != e.DestinationPath() {
		c.logger.Info().
			Str("requested", e.DestinationPath()).
			Str("final", final).
			Msg("Destination taken, promoted under suffixed name")
	}
	e.MarkPromoted(final)
	return final, nil
}

// CleanupAll removes every staging directory created in this run. A
// directory that still holds an entry whose promotion failed is kept, since
// removing it would destroy that entry. Failures are logged only.
func (c *Coordinator) CleanupAll() {
	for _, dir := range c.dirs {
		if stranded := c.stranded(dir); len(stranded) > 0 {
			c.logger.Warn().
				Str("dir", dir).
				Strs("entries", stranded).
				Msg("Keeping staging directory with unpromoted entries")
			continue
		}
		if err := c.fs.RemoveAll(dir); err != nil {
			c.logger.Debug().Err(err).Str("dir", dir).Msg("Failed to remove staging directory")
		}
	}
	c.dirs = nil
	c.held = make(map[string][]*types.Entry)
}

// Dirs returns the staging directories created so far
func (c *Coordinator) Dirs() []string {
	return append([]string(nil), c.dirs...)
}

func (c *Coordinator) track(dir string) {
	if _, ok := c.held[dir]; ok {
		return
	}
	c.held[dir] = nil
	c.dirs = append(c.dirs, dir)
}

func (c *Coordinator) stranded(dir string) []string {
	var out []string
	for _, e := range c.held[dir] {
		if e.Staged() {
			out = append(out, e.StagingPath)
		}
	}
	return out
}
