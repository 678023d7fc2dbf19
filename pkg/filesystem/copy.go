package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const defaultDirPerm = 0755

// ErrSameFile is returned when a copy would overwrite its own source
var ErrSameFile = errors.New("source and destination are the same file")

// CopyFile copies a single file, symlink or special entry to dst,
// preserving permission bits and modification time. When dst is an
// existing directory the file is copied into it under its own base name.
// Missing parents of dst are created first.
func CopyFile(fsys FS, src, dst string) error {
	info, err := fsys.Lstat(src)
	if err != nil {
		return err
	}

	if IsRealDir(fsys, dst) {
		dst = filepath.Join(dst, filepath.Base(src))
	}

	if sameFile(fsys, src, dst, info) {
		return &os.PathError{Op: "copy", Path: dst, Err: ErrSameFile}
	}

	if err := fsys.MkdirAll(filepath.Dir(dst), defaultDirPerm); err != nil {
		return err
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		return copySymlink(fsys, src, dst)
	}
	return copyContents(fsys, src, dst, info)
}

// sameFile reports whether writing dst would write into src, including
// through a hard link or a symlink at dst
func sameFile(fsys FS, src, dst string, srcInfo fs.FileInfo) bool {
	if filepath.Clean(src) == filepath.Clean(dst) {
		return true
	}
	if srcInfo.Mode()&fs.ModeSymlink != 0 {
		return false
	}
	dstInfo, err := fsys.Stat(dst)
	return err == nil && os.SameFile(srcInfo, dstInfo)
}

// CopyTree recursively copies the directory src to dst. The destination
// must not exist yet; its parents are created as needed.
func CopyTree(fsys FS, src, dst string) error {
	info, err := fsys.Lstat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "copytree", Path: src, Err: fs.ErrInvalid}
	}
	if Exists(fsys, dst) {
		return &os.PathError{Op: "copytree", Path: dst, Err: fs.ErrExist}
	}
	if err := fsys.MkdirAll(filepath.Dir(dst), defaultDirPerm); err != nil {
		return err
	}
	return copyDir(fsys, src, dst, info)
}

// copyDir lists src before creating dst, so a destination inside the
// source is not copied into itself
func copyDir(fsys FS, src, dst string, info fs.FileInfo) error {
	children, err := fsys.ReadDir(src)
	if err != nil {
		return err
	}

	if err := fsys.Mkdir(dst, info.Mode().Perm()|0700); err != nil {
		return err
	}

	for _, child := range children {
		childSrc := filepath.Join(src, child.Name())
		childDst := filepath.Join(dst, child.Name())

		childInfo, err := fsys.Lstat(childSrc)
		if err != nil {
			return err
		}

		switch {
		case childInfo.Mode()&fs.ModeSymlink != 0:
			err = copySymlink(fsys, childSrc, childDst)
		case childInfo.IsDir():
			err = copyDir(fsys, childSrc, childDst, childInfo)
		default:
			err = copyContents(fsys, childSrc, childDst, childInfo)
		}
		if err != nil {
			return err
		}
	}

	// Restore the exact mode and times last, the directory was written to
	if err := fsys.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return fsys.Chtimes(dst, info.ModTime(), info.ModTime())
}

func copyContents(fsys FS, src, dst string, info fs.FileInfo) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := fsys.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return fsys.Chtimes(dst, info.ModTime(), info.ModTime())
}

// copySymlink recreates the link itself rather than copying its target
func copySymlink(fsys FS, src, dst string) error {
	target, err := fsys.Readlink(src)
	if err != nil {
		return err
	}
	return fsys.Symlink(target, dst)
}
