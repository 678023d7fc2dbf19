package staging_test

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/edir/pkg/backend"
	"github.com/arthur-debert/edir/pkg/errors"
	"github.com/arthur-debert/edir/pkg/filesystem"
	"github.com/arthur-debert/edir/pkg/staging"
	"github.com/arthur-debert/edir/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingBackend fails every rename whose source matches failSrc
type failingBackend struct {
	backend.Backend
	failSrc string
}

func (f *failingBackend) Rename(src, dst string) error {
	if src == f.failSrc {
		return errors.Classify(stderrors.New("simulated failure"), "rename")
	}
	return f.Backend.Rename(src, dst)
}

func renameEntry(path, dest string) *types.Entry {
	e := types.NewEntry(path, types.KindFile, false)
	e.SetDestination(dest)
	return e
}

func newPlain() backend.Backend {
	return backend.NewPlain(backend.PlainOptions{FS: filesystem.NewOS()})
}

func TestStageAndPromote(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dest := filepath.Join(dir, "sub", "b.txt")
	touch(t, src)

	c := staging.NewCoordinator(filesystem.NewOS())
	e := renameEntry(src, dest)
	b := newPlain()

	require.NoError(t, c.Stage(e, b))
	assert.True(t, e.Staged())
	assert.Equal(t, filepath.Join(dir, "sub", ".tmp-edir", "b.txt"), e.StagingPath)
	assert.NoFileExists(t, src)
	assert.FileExists(t, e.StagingPath)
	assert.Equal(t, []string{filepath.Join(dir, "sub", ".tmp-edir")}, c.Dirs())

	final, err := c.Promote(e, b)
	require.NoError(t, err)
	assert.Equal(t, dest, final)
	assert.False(t, e.Staged())
	assert.Equal(t, dest, e.CurrentPath())
	assert.FileExists(t, dest)

	c.CleanupAll()
	assert.NoDirExists(t, filepath.Join(dir, "sub", ".tmp-edir"))
	assert.Empty(t, c.Dirs())
}

func TestStageSkipsNonRenames(t *testing.T) {
	c := staging.NewCoordinator(filesystem.NewMemory())

	noop := renameEntry("a", "a")
	removal := types.NewEntry("b", types.KindFile, false)

	require.NoError(t, c.Stage(noop, nil))
	require.NoError(t, c.Stage(removal, nil))
	assert.Empty(t, c.Dirs())

	final, err := c.Promote(noop, nil)
	assert.NoError(t, err)
	assert.Empty(t, final)
}

func TestSwapThroughStaging(t *testing.T) {
	dir := t.TempDir()
	x := filepath.Join(dir, "x")
	y := filepath.Join(dir, "y")
	require.NoError(t, os.WriteFile(x, []byte("content of x"), 0644))
	require.NoError(t, os.WriteFile(y, []byte("content of y"), 0644))

	c := staging.NewCoordinator(filesystem.NewOS())
	b := newPlain()
	ex := renameEntry(x, y)
	ey := renameEntry(y, x)

	require.NoError(t, c.Stage(ex, b))
	require.NoError(t, c.Stage(ey, b))
	_, err := c.Promote(ex, b)
	require.NoError(t, err)
	_, err = c.Promote(ey, b)
	require.NoError(t, err)
	c.CleanupAll()

	data, err := os.ReadFile(x)
	require.NoError(t, err)
	assert.Equal(t, "content of y", string(data))
	data, err = os.ReadFile(y)
	require.NoError(t, err)
	assert.Equal(t, "content of x", string(data))
}

func TestSameDestinationGetsSuffix(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	target := filepath.Join(dir, "t")
	touch(t, a)
	touch(t, b)

	c := staging.NewCoordinator(filesystem.NewOS())
	be := newPlain()
	ea := renameEntry(a, target)
	eb := renameEntry(b, target)

	require.NoError(t, c.Stage(ea, be))
	require.NoError(t, c.Stage(eb, be))
	assert.NotEqual(t, ea.StagingPath, eb.StagingPath)

	finalA, err := c.Promote(ea, be)
	require.NoError(t, err)
	finalB, err := c.Promote(eb, be)
	require.NoError(t, err)

	assert.Equal(t, target, finalA)
	assert.Equal(t, target+"~", finalB)
	assert.Equal(t, target+"~", eb.DestinationPath())
}

func TestStagingDirectoryCreationFailure(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a")
	touch(t, src)
	// a file where the destination parent should be
	touch(t, filepath.Join(dir, "blocker"))

	c := staging.NewCoordinator(filesystem.NewOS())
	e := renameEntry(src, filepath.Join(dir, "blocker", "a"))

	err := c.Stage(e, newPlain())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStaging))
	assert.False(t, e.Staged())
	assert.FileExists(t, src)
	assert.Empty(t, c.Dirs())
}

func TestCleanupKeepsDirectoryWithStrandedEntry(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	touch(t, a)

	c := staging.NewCoordinator(filesystem.NewOS())
	e := renameEntry(a, filepath.Join(dir, "b"))
	require.NoError(t, c.Stage(e, newPlain()))

	fb := &failingBackend{Backend: newPlain(), failSrc: e.StagingPath}
	_, err := c.Promote(e, fb)
	require.Error(t, err)
	assert.True(t, e.Staged())

	c.CleanupAll()
	assert.FileExists(t, e.StagingPath)
}
