package backend

import (
	"fmt"

	"github.com/arthur-debert/edir/pkg/errors"
	"github.com/arthur-debert/edir/pkg/filesystem"
	"github.com/arthur-debert/edir/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultTrashProgram is used when trash is enabled without a program
const DefaultTrashProgram = "trash-put"

// PlainOptions configures a Plain backend
type PlainOptions struct {
	FS filesystem.FS
	// Trash routes removals through TrashProgram instead of deleting
	Trash        bool
	TrashProgram string
	Runner       Runner
}

// Plain mutates the filesystem directly
type Plain struct {
	fs           filesystem.FS
	trash        bool
	trashProgram string
	runner       Runner
	logger       zerolog.Logger
}

// NewPlain creates a plain filesystem backend
func NewPlain(opts PlainOptions) *Plain {
	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	runner := opts.Runner
	if runner == nil {
		runner = NewExecRunner()
	}
	program := opts.TrashProgram
	if program == "" {
		program = DefaultTrashProgram
	}
	return &Plain{
		fs:           fsys,
		trash:        opts.Trash,
		trashProgram: program,
		runner:       runner,
		logger:       logging.GetLogger("backend.plain"),
	}
}

// Name implements Backend
func (p *Plain) Name() string { return "plain" }

// Remove implements Backend
func (p *Plain) Remove(path string, recurse bool) error {
	if err := checkRemovable(p.fs, path, recurse); err != nil {
		return err
	}

	p.logger.Debug().Str("path", path).Bool("recurse", recurse).Bool("trash", p.trash).Msg("Removing")

	if p.trash {
		if _, stderr, err := p.runner.Run(p.trashProgram, path); err != nil {
			return errors.New(errors.ErrBackend, fmt.Sprintf("%s error: %s", p.trashProgram, commandDetail(stderr, err))).
				WithDetail("path", path)
		}
		return nil
	}

	var err error
	if recurse && filesystem.IsRealDir(p.fs, path) {
		err = p.fs.RemoveAll(path)
	} else {
		err = p.fs.Remove(path)
	}
	return errors.Classify(err, "remove")
}

// Rename implements Backend
func (p *Plain) Rename(src, dst string) error {
	p.logger.Debug().Str("src", src).Str("dst", dst).Msg("Renaming")
	return errors.Classify(p.fs.Rename(src, dst), "rename")
}

// Copy implements Backend
func (p *Plain) Copy(src, dst string) error {
	p.logger.Debug().Str("src", src).Str("dst", dst).Msg("Copying")
	if filesystem.IsRealDir(p.fs, src) {
		return errors.Classify(filesystem.CopyTree(p.fs, src, dst), "copy")
	}
	return errors.Classify(filesystem.CopyFile(p.fs, src, dst), "copy")
}
