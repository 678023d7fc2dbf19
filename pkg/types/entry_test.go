package types_test

import (
	"errors"
	"testing"

	"github.com/arthur-debert/edir/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestDisplayLabel(t *testing.T) {
	tests := []struct {
		name  string
		entry *types.Entry
		want  string
	}{
		{"relative_file", types.NewEntry("a.txt", types.KindFile, false), "./a.txt"},
		{"relative_dir", types.NewEntry("sub", types.KindDirectory, false), "./sub/"},
		{"absolute_file", types.NewEntry("/tmp/a.txt", types.KindFile, false), "/tmp/a.txt"},
		{"absolute_dir", types.NewEntry("/tmp/d/", types.KindDirectory, false), "/tmp/d/"},
		{"symlink_to_dir_has_no_slash", types.NewEntry("link", types.KindSymlink, false), "./link"},
		{"cleaned", types.NewEntry("./x/../y", types.KindFile, false), "./y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.DisplayLabel())
		})
	}
}

func TestDiagLabel(t *testing.T) {
	assert.Equal(t, "a.txt", types.NewEntry("a.txt", types.KindFile, false).DiagLabel())
	assert.Equal(t, "sub/", types.NewEntry("sub", types.KindDirectory, false).DiagLabel())
}

func TestEditState(t *testing.T) {
	e := types.NewEntry("a.txt", types.KindFile, false)

	assert.True(t, e.IsRemove(), "no destination means remove")
	assert.True(t, e.IsPending())

	e.SetDestination("a.txt")
	assert.False(t, e.IsRemove())
	assert.False(t, e.IsRename())
	assert.False(t, e.IsPending())

	assert.False(t, e.AddCopyTarget("a.txt"))
	assert.True(t, e.AddCopyTarget("b.txt"))
	assert.False(t, e.AddCopyTarget("b.txt"))
	assert.True(t, e.IsPending())

	e.SetDestination("c.txt")
	assert.True(t, e.IsRename())
	assert.Equal(t, "c.txt", e.DestinationPath())
	assert.False(t, e.AddCopyTarget("c.txt"), "the destination is not also a copy")

	e.ResetEdits()
	assert.Nil(t, e.Destination)
	assert.Empty(t, e.CopyTargets)
}

func TestCurrentPathFollowsStaging(t *testing.T) {
	e := types.NewEntry("a", types.KindFile, false)
	e.SetDestination("b")
	assert.Equal(t, "a", e.CurrentPath())

	e.MarkStaged(".tmp-edir/b")
	assert.True(t, e.Staged())
	assert.Equal(t, ".tmp-edir/b", e.CurrentPath())

	e.MarkPromoted("b~")
	assert.False(t, e.Staged())
	assert.Equal(t, "b~", e.CurrentPath())
	assert.Equal(t, "b~", e.DestinationPath())
}

func TestPending(t *testing.T) {
	keep := types.NewEntry("keep", types.KindFile, false)
	keep.SetDestination("keep")
	remove := types.NewEntry("remove", types.KindFile, false)
	rename := types.NewEntry("rename", types.KindFile, false)
	rename.SetDestination("renamed")

	pending := types.Pending([]*types.Entry{keep, remove, rename})
	assert.Equal(t, []*types.Entry{remove, rename}, pending)
}

func TestVerbs(t *testing.T) {
	assert.Equal(t, "Renaming", types.ActionRename.Verb(types.TensePreview))
	assert.Equal(t, "Remove", types.ActionRemove.Verb(types.TenseFailed))
	assert.Equal(t, "Copied", types.ActionCopy.Verb(types.TenseDone))
}

func TestOutcomeMessage(t *testing.T) {
	dir := types.NewEntry("d", types.KindDirectory, false)
	file := types.NewEntry("f", types.KindFile, false)

	assert.Equal(t, `"d/" recursively`,
		types.Outcome{Action: types.ActionRemove, Entry: dir, Recursive: true}.Message())
	assert.Equal(t, `"f" to "g"`,
		types.Outcome{Action: types.ActionRename, Entry: file, Target: "g"}.Message())
	assert.Equal(t, `"d/" to "e/"`,
		types.Outcome{Action: types.ActionCopy, Entry: dir, Target: "e"}.Message())

	failed := types.Outcome{Action: types.ActionRemove, Entry: file, Err: errors.New("x")}
	assert.True(t, failed.Failed())
}
