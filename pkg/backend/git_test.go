package backend_test

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/edir/pkg/backend"
	"github.com/arthur-debert/edir/pkg/errors"
	"github.com/arthur-debert/edir/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGit(runner *MockRunner) *backend.Git {
	fsys := filesystem.NewOS()
	return backend.NewGit(runner, fsys, backend.NewPlain(backend.PlainOptions{FS: fsys, Runner: runner}))
}

func TestGitRename(t *testing.T) {
	runner := new(MockRunner)
	runner.On("Run", "git", "mv", "-f", "--", "a.txt", "b.txt").Return("", "", nil).Once()

	require.NoError(t, newGit(runner).Rename("a.txt", "b.txt"))
	runner.AssertExpectations(t)
}

func TestGitRenameFailure(t *testing.T) {
	runner := new(MockRunner)
	runner.On("Run", "git", "mv", "-f", "--", "a.txt", "b.txt").
		Return("", "fatal: not under version control", stderrors.New("exit status 128"))

	err := newGit(runner).Rename("a.txt", "b.txt")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrBackend))
	assert.Equal(t, "git mv error: fatal: not under version control", errors.Detail(err))
}

func TestGitRemove(t *testing.T) {
	dir := setupTree(t)
	runner := new(MockRunner)
	file := filepath.Join(dir, "file.txt")
	full := filepath.Join(dir, "full")
	runner.On("Run", "git", "rm", "-f", "--", file).Return("", "", nil).Once()
	runner.On("Run", "git", "rm", "-f", "-r", "--", full).Return("", "", nil).Once()

	g := newGit(runner)
	require.NoError(t, g.Remove(file, false))
	require.NoError(t, g.Remove(full, true))
	runner.AssertExpectations(t)
}

func TestGitRemoveNonEmptyGuardSkipsGit(t *testing.T) {
	dir := setupTree(t)
	runner := new(MockRunner)

	err := newGit(runner).Remove(filepath.Join(dir, "full"), false)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotEmpty))
	assert.Empty(t, runner.Calls)
}

func TestGitCopyIsPlainCopy(t *testing.T) {
	dir := setupTree(t)
	runner := new(MockRunner)

	require.NoError(t, newGit(runner).Copy(filepath.Join(dir, "file.txt"), filepath.Join(dir, "copy.txt")))
	data, err := os.ReadFile(filepath.Join(dir, "copy.txt"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
	assert.Empty(t, runner.Calls)
}

func TestTrackedFiles(t *testing.T) {
	runner := new(MockRunner)
	runner.On("Run", "git", "ls-files", "-z").Return("a.txt\x00sub/b.txt\x00./c\x00", "", nil)

	tracked, err := backend.TrackedFiles(runner)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"a.txt": true, "sub/b.txt": true, "c": true}, tracked)
}

func TestTrackedFilesOutsideRepository(t *testing.T) {
	runner := new(MockRunner)
	runner.On("Run", "git", "ls-files", "-z").Return("", "fatal: not a git repository", stderrors.New("exit status 128"))

	tracked, err := backend.TrackedFiles(runner)
	assert.Empty(t, tracked)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoRepository))
}
