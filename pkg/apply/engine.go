package apply

import (
	"github.com/arthur-debert/edir/pkg/backend"
	"github.com/arthur-debert/edir/pkg/filesystem"
	"github.com/arthur-debert/edir/pkg/logging"
	"github.com/arthur-debert/edir/pkg/staging"
	"github.com/arthur-debert/edir/pkg/types"
	"github.com/rs/zerolog"
)

// Reporter receives each outcome as soon as the action was attempted
type Reporter interface {
	Report(outcome types.Outcome)
}

// Options configures an Engine
type Options struct {
	FS       filesystem.FS
	Selector backend.Selector
	// Recurse allows removing directories that still have children
	Recurse  bool
	Reporter Reporter
}

// Engine applies the pending actions of one edited listing
type Engine struct {
	fs       filesystem.FS
	selector backend.Selector
	recurse  bool
	reporter Reporter
	logger   zerolog.Logger
}

// item pairs an entry with the backend chosen for it when the run starts
type item struct {
	entry   *types.Entry
	backend backend.Backend
	// skipped is set when staging failed; the entry stays where it is for
	// the rest of the run
	skipped bool
}

// New creates an Engine
func New(opts Options) *Engine {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	if opts.Selector.Plain == nil {
		opts.Selector.Plain = backend.NewPlain(backend.PlainOptions{FS: fsys})
	}
	return &Engine{
		fs:       fsys,
		selector: opts.Selector,
		recurse:  opts.Recurse,
		reporter: opts.Reporter,
		logger:   logging.GetLogger("apply"),
	}
}

// Run applies every pending action among entries and returns the tally.
// Entries without a pending action are ignored.
func (e *Engine) Run(entries []*types.Entry) *Result {
	done := logging.LogOperationStart(e.logger, "apply")
	defer done()

	pending := types.Pending(entries)
	MarkRecursive(e.fs, pending)

	items := make([]*item, len(pending))
	for i, entry := range pending {
		items[i] = &item{entry: entry, backend: e.selector.For(entry)}
	}

	result := &Result{}
	coordinator := staging.NewCoordinator(e.fs)

	e.stageAndRemoveFiles(items, coordinator, result)
	e.removeDirectories(items, result, true)
	e.promoteAndCopy(items, coordinator, result)
	coordinator.CleanupAll()
	e.removeDirectories(items, result, false)

	e.logger.Info().
		Int("succeeded", result.Succeeded).
		Int("failed", result.Failed).
		Msg("Apply finished")
	return result
}

// pass 1
func (e *Engine) stageAndRemoveFiles(items []*item, c *staging.Coordinator, result *Result) {
	for _, it := range items {
		entry := it.entry
		switch {
		case entry.IsRename():
			if err := c.Stage(entry, it.backend); err != nil {
				it.skipped = true
				e.report(result, types.Outcome{
					Action: types.ActionRename,
					Entry:  entry,
					Target: entry.DestinationPath(),
					Err:    err,
				})
			}
		case entry.IsRemove() && !entry.IsDir():
			err := it.backend.Remove(entry.OriginalPath, false)
			e.report(result, types.Outcome{Action: types.ActionRemove, Entry: entry, Err: err})
		}
	}
}

// removeDirectories is pass 2 when early is set and pass 4 otherwise. In
// pass 2 a failure is silent because pass 4 retries it.
func (e *Engine) removeDirectories(items []*item, result *Result, early bool) {
	for _, it := range items {
		entry := it.entry
		if !entry.IsRemove() || !entry.IsDir() || entry.Removed() {
			continue
		}

		err := it.backend.Remove(entry.OriginalPath, e.recurse)
		if err == nil {
			entry.MarkRemoved()
		} else if early {
			e.logger.Debug().Err(err).Str("path", entry.OriginalPath).Msg("Directory removal deferred")
			continue
		}
		e.report(result, types.Outcome{
			Action:    types.ActionRemove,
			Entry:     entry,
			Recursive: entry.Recursive,
			Err:       err,
		})
	}
}

// pass 3
func (e *Engine) promoteAndCopy(items []*item, c *staging.Coordinator, result *Result) {
	for _, it := range items {
		entry := it.entry
		if it.skipped {
			continue
		}

		if entry.Staged() {
			final, err := c.Promote(entry, it.backend)
			e.report(result, types.Outcome{
				Action: types.ActionRename,
				Entry:  entry,
				Target: final,
				Err:    err,
			})
		}

		for _, target := range entry.CopyTargets {
			err := it.backend.Copy(entry.CurrentPath(), target)
			e.report(result, types.Outcome{
				Action:    types.ActionCopy,
				Entry:     entry,
				Target:    target,
				Recursive: entry.Recursive,
				Err:       err,
			})
		}
	}
}

func (e *Engine) report(result *Result, o types.Outcome) {
	result.add(o)

	event := e.logger.Debug()
	if o.Failed() {
		event = e.logger.Warn().Err(o.Err)
	}
	event.Str("action", string(o.Action)).
		Str("path", o.Entry.OriginalPath).
		Str("target", o.Target).
		Msg("Action attempted")

	if e.reporter != nil {
		e.reporter.Report(o)
	}
}
