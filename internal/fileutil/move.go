package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// ErrTargetExists reports that a move was refused because an entry already
// occupies the target path. Callers pick a new name and retry.
var ErrTargetExists = errors.New("target already exists")

// renameFunc indirection allows tests to inject cross-device failures
var renameFunc = renameNoReplace

// MoveFile relocates src to dst. An existing dst is never replaced: the
// caller gets ErrTargetExists (via errors.Is) and is expected to retry with
// a different name. When src and dst live on different filesystems the
// rename fails with EXDEV and the move degrades to copy plus remove.
func MoveFile(src, dst string) error {
	err := renameFunc(src, dst)
	if err == nil {
		return nil
	}
	if IsCrossDevice(err) {
		return copyMove(src, dst)
	}
	return err
}

// IsCrossDevice reports whether err is a cross-device rename failure
func IsCrossDevice(err error) bool {
	return isCrossDevice(err)
}

// probeRename checks for an existing target immediately before renaming.
// Used where the platform has no native no-replace rename; the check and
// the rename are not atomic, which is acceptable since only external
// processes can race on the destination.
func probeRename(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return &os.LinkError{Op: "rename", Old: src, New: dst, Err: ErrTargetExists}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return &os.LinkError{Op: "rename", Old: src, New: dst, Err: err}
	}
	return os.Rename(src, dst)
}

// copyMove copies src to a temporary file next to dst, preserves mode and
// modification time, renames it into place without replacing, and removes
// the source. A partially written temporary file is cleaned up on failure.
func copyMove(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".partial-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	written, err := io.Copy(tmp, in)
	if err == nil && written != info.Size() {
		err = fmt.Errorf("short copy of %s: %d of %d bytes", src, written, info.Size())
	}
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmpPath, info.Mode().Perm())
	}
	if err == nil {
		err = os.Chtimes(tmpPath, time.Now(), info.ModTime())
	}
	if err == nil {
		err = renameNoReplace(tmpPath, dst)
	}
	if err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Remove(src); err != nil {
		return fmt.Errorf("copied to %s but removing the source failed: %w", dst, err)
	}
	return nil
}
