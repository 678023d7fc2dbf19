package filesystem

import (
	"io"
	"io/fs"
)

// Exists reports whether anything occupies path, including a broken symlink
func Exists(fsys FS, path string) bool {
	_, err := fsys.Lstat(path)
	return err == nil
}

// IsRealDir reports whether path is a directory and not a symlink to one
func IsRealDir(fsys FS, path string) bool {
	info, err := fsys.Lstat(path)
	if err != nil {
		return false
	}
	return info.Mode()&fs.ModeSymlink == 0 && info.IsDir()
}

// IsEmptyDir reports whether the directory at name has no children
func IsEmptyDir(fsys FS, name string) (bool, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return false, err
	}
	defer f.Close()

	_, err = f.Readdirnames(1)
	if err == io.EOF {
		return true, nil
	}
	return false, err
}

// HasChildren reports whether name is a real directory that can be read
// and has at least one child. Unreadable directories report false.
func HasChildren(fsys FS, name string) bool {
	if !IsRealDir(fsys, name) {
		return false
	}
	empty, err := IsEmptyDir(fsys, name)
	return err == nil && !empty
}
