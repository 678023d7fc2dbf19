package apply

import (
	"github.com/arthur-debert/edir/pkg/filesystem"
	"github.com/arthur-debert/edir/pkg/types"
)

// MarkRecursive records on every pending directory entry whether it has
// children right now. It must run before any pass changes directory
// contents.
func MarkRecursive(fsys filesystem.FS, entries []*types.Entry) {
	for _, e := range entries {
		e.Recursive = e.IsDir() && filesystem.HasChildren(fsys, e.OriginalPath)
	}
}

// Plan lists the actions pending for entries in listing order, as they
// would be reported. Entries must already carry their Recursive flag.
func Plan(entries []*types.Entry) []types.Outcome {
	var actions []types.Outcome
	for _, e := range entries {
		switch {
		case e.IsRemove():
			actions = append(actions, types.Outcome{Action: types.ActionRemove, Entry: e, Recursive: e.Recursive})
		case e.IsRename():
			actions = append(actions, types.Outcome{Action: types.ActionRename, Entry: e, Target: e.DestinationPath()})
		}
		for _, target := range e.CopyTargets {
			actions = append(actions, types.Outcome{Action: types.ActionCopy, Entry: e, Target: target, Recursive: e.Recursive})
		}
	}
	return actions
}
