package backend

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/edir/pkg/errors"
	"github.com/arthur-debert/edir/pkg/filesystem"
	"github.com/arthur-debert/edir/pkg/logging"
	"github.com/rs/zerolog"
)

// GitMode selects whether tracked paths go through git
type GitMode string

const (
	// GitAuto uses git when the working directory has tracked files
	GitAuto GitMode = "auto"
	// GitAlways requires a repository with tracked files
	GitAlways GitMode = "always"
	// GitNever never invokes git
	GitNever GitMode = "never"
)

// Git moves and removes tracked paths with git so the index stays in step.
// Copies are plain copies; git has no copy operation.
type Git struct {
	runner Runner
	fs     filesystem.FS
	plain  *Plain
	logger zerolog.Logger
}

// NewGit creates a git backend. plain handles copies.
func NewGit(runner Runner, fsys filesystem.FS, plain *Plain) *Git {
	if runner == nil {
		runner = NewExecRunner()
	}
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	return &Git{
		runner: runner,
		fs:     fsys,
		plain:  plain,
		logger: logging.GetLogger("backend.git"),
	}
}

// Name implements Backend
func (g *Git) Name() string { return "git" }

// Remove implements Backend
func (g *Git) Remove(path string, recurse bool) error {
	if err := checkRemovable(g.fs, path, recurse); err != nil {
		return err
	}

	args := []string{"rm", "-f"}
	if recurse {
		args = append(args, "-r")
	}
	args = append(args, "--", path)

	g.logger.Debug().Strs("args", args).Msg("git rm")
	if _, stderr, err := g.runner.Run("git", args...); err != nil {
		return errors.New(errors.ErrBackend, "git error: "+commandDetail(stderr, err)).WithDetail("path", path)
	}
	return nil
}

// Rename implements Backend
func (g *Git) Rename(src, dst string) error {
	g.logger.Debug().Str("src", src).Str("dst", dst).Msg("git mv")
	if _, stderr, err := g.runner.Run("git", "mv", "-f", "--", src, dst); err != nil {
		return errors.New(errors.ErrBackend, "git mv error: "+commandDetail(stderr, err)).
			WithDetail("src", src).
			WithDetail("dst", dst)
	}
	return nil
}

// Copy implements Backend
func (g *Git) Copy(src, dst string) error {
	return g.plain.Copy(src, dst)
}

// TrackedFiles returns the cleaned paths git tracks under the current
// directory, relative to it. Outside a repository the set is empty and the
// error carries git's message.
func TrackedFiles(runner Runner) (map[string]bool, error) {
	tracked := make(map[string]bool)
	stdout, stderr, err := runner.Run("git", "ls-files", "-z")
	if err != nil {
		return tracked, errors.New(errors.ErrNoRepository, commandDetail(stderr, err))
	}
	for _, line := range strings.Split(stdout, "\x00") {
		if line == "" {
			continue
		}
		tracked[filepath.Clean(line)] = true
	}
	return tracked, nil
}
