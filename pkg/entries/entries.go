package entries

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/edir/pkg/errors"
	"github.com/arthur-debert/edir/pkg/filesystem"
	"github.com/arthur-debert/edir/pkg/logging"
	"github.com/arthur-debert/edir/pkg/types"
	"github.com/rs/zerolog"
)

// StdinName is the input name that means "read names from stdin"
const StdinName = "-"

// SortKey selects the listing order
type SortKey string

const (
	SortNone SortKey = "none"
	SortName SortKey = "name"
	SortTime SortKey = "time"
	SortSize SortKey = "size"
)

// Grouping places directories before or after everything else
type Grouping string

const (
	GroupNone  Grouping = "none"
	GroupFirst Grouping = "first"
	GroupLast  Grouping = "last"
)

// Options controls how input names become entries
type Options struct {
	FS    filesystem.FS
	Names []string
	// Stdin supplies names when "-" is among Names
	Stdin io.Reader
	// StdinIsTerminal disables the implicit "-" and enables the "." default
	StdinIsTerminal bool

	// DirNames lists named directories themselves instead of their contents
	DirNames bool
	// All includes hidden children when expanding a directory
	All bool

	Files   bool
	Dirs    bool
	NoLinks bool

	Sort      SortKey
	Reverse   bool
	GroupDirs Grouping

	// Tracked is the set of cleaned paths known to version control
	Tracked map[string]bool
}

// item carries the sort keys of an entry while collecting
type item struct {
	entry   *types.Entry
	dirLike bool
	mtime   int64
	size    int64
}

// collector accumulates entries for one Collect call
type collector struct {
	opts   Options
	fs     filesystem.FS
	seen   map[string]bool
	items  []*item
	logger zerolog.Logger
}

// Collect turns the input names into entries. A name that does not exist
// is a fatal SOURCE_UNREADABLE error.
func Collect(opts Options) ([]*types.Entry, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	c := &collector{
		opts:   opts,
		fs:     fsys,
		seen:   make(map[string]bool),
		logger: logging.GetLogger("entries"),
	}

	for _, name := range InputNames(opts.Names, opts.StdinIsTerminal) {
		if name != StdinName {
			if err := c.add(name, !opts.DirNames); err != nil {
				return nil, err
			}
			continue
		}
		if opts.Stdin == nil {
			continue
		}
		if err := c.addFromReader(opts.Stdin); err != nil {
			return nil, err
		}
	}

	c.order()

	out := make([]*types.Entry, len(c.items))
	for i, it := range c.items {
		out[i] = it.entry
	}
	c.logger.Debug().Int("count", len(out)).Msg("Collected entries")
	return out, nil
}

// InputNames applies the stdin rules to the command line names and drops
// repeats, keeping the first occurrence.
func InputNames(names []string, stdinIsTerminal bool) []string {
	list := append([]string(nil), names...)
	hasStdin := false
	for _, n := range list {
		if n == StdinName {
			hasStdin = true
			break
		}
	}
	if stdinIsTerminal {
		if len(list) == 0 {
			list = append(list, ".")
		}
	} else if !hasStdin {
		list = append([]string{StdinName}, list...)
	}

	seen := make(map[string]bool, len(list))
	var out []string
	for _, n := range list {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func (c *collector) addFromReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		name := strings.TrimRight(scanner.Text(), "\r\n")
		if name == "" || name == "." {
			continue
		}
		if err := c.add(name, false); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, errors.ErrSourceUnreadable, "cannot read names from stdin")
	}
	return nil
}

func (c *collector) add(name string, expand bool) error {
	if _, err := c.fs.Lstat(name); err != nil {
		return errors.Wrapf(err, errors.ErrSourceUnreadable, "%s does not exist", name).
			WithDetail("name", name)
	}

	if !expand || !c.pointsToDir(name) {
		c.append(name)
		return nil
	}

	children, err := c.fs.ReadDir(name)
	if err != nil {
		return errors.Wrapf(err, errors.ErrSourceUnreadable, "cannot read %s", name).
			WithDetail("name", name)
	}
	sort.Slice(children, func(i, j int) bool { return children[i].Name() < children[j].Name() })
	for _, child := range children {
		if !c.opts.All && strings.HasPrefix(child.Name(), ".") {
			continue
		}
		c.append(filepath.Join(name, child.Name()))
	}
	return nil
}

func (c *collector) append(path string) {
	it, err := c.newItem(path)
	if err != nil {
		c.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable path")
		return
	}

	if c.opts.Files && it.dirLike {
		return
	}
	if c.opts.Dirs && !it.dirLike {
		return
	}
	if c.opts.NoLinks && it.entry.Kind == types.KindSymlink {
		return
	}
	if c.seen[it.entry.OriginalPath] {
		c.logger.Debug().Str("path", path).Msg("Duplicate path ignored")
		return
	}
	c.seen[it.entry.OriginalPath] = true
	c.items = append(c.items, it)
}

// pointsToDir reports whether path is a directory or a symlink to one
func (c *collector) pointsToDir(path string) bool {
	info, err := c.fs.Stat(path)
	return err == nil && info.IsDir()
}

func (c *collector) newItem(path string) (*item, error) {
	linfo, err := c.fs.Lstat(path)
	if err != nil {
		return nil, err
	}

	kind := types.KindFile
	switch {
	case linfo.Mode()&fs.ModeSymlink != 0:
		kind = types.KindSymlink
	case linfo.IsDir():
		kind = types.KindDirectory
	}

	// sort keys follow symlinks; a broken link sorts by the link itself
	info := linfo
	if target, err := c.fs.Stat(path); err == nil {
		info = target
	}

	clean := filepath.Clean(path)
	return &item{
		entry:   types.NewEntry(clean, kind, c.tracked(clean)),
		dirLike: info.IsDir(),
		mtime:   info.ModTime().UnixNano(),
		size:    info.Size(),
	}, nil
}

// tracked looks path up in the git set, which holds paths relative to
// the working directory
func (c *collector) tracked(path string) bool {
	if c.opts.Tracked[path] {
		return true
	}
	if !filepath.IsAbs(path) || len(c.opts.Tracked) == 0 {
		return false
	}
	cwd, err := os.Getwd()
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(cwd, path)
	return err == nil && c.opts.Tracked[rel]
}

func (c *collector) order() {
	less := c.sortLess()
	if less != nil {
		sort.SliceStable(c.items, func(i, j int) bool {
			if c.opts.Reverse {
				return less(c.items[j], c.items[i])
			}
			return less(c.items[i], c.items[j])
		})
	}

	switch c.opts.GroupDirs {
	case GroupFirst, GroupLast:
		var dirs, others []*item
		for _, it := range c.items {
			if it.dirLike {
				dirs = append(dirs, it)
			} else {
				others = append(others, it)
			}
		}
		if c.opts.GroupDirs == GroupFirst {
			c.items = append(dirs, others...)
		} else {
			c.items = append(others, dirs...)
		}
	}
}

func (c *collector) sortLess() func(a, b *item) bool {
	switch c.opts.Sort {
	case SortName:
		return func(a, b *item) bool { return a.entry.OriginalPath < b.entry.OriginalPath }
	case SortTime:
		return func(a, b *item) bool { return a.mtime < b.mtime }
	case SortSize:
		return func(a, b *item) bool { return a.size < b.size }
	default:
		return nil
	}
}

// EmptyMessage is printed when no entries were collected
func EmptyMessage(files, dirs bool) string {
	switch {
	case files:
		return "No files."
	case dirs:
		return "No directories."
	default:
		return "No files or directories."
	}
}
