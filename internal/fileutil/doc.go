// Package fileutil provides the platform-specific file primitives behind
// candidate selection and moving: creation-time lookup and a collision-safe
// move operation.
//
// # Creation time
//
// CreationTime returns the birth time of a file where the OS and filesystem
// record one: statx(STATX_BTIME) on Linux, the Birthtimespec stat field on
// Darwin and the BSDs, and the Win32 creation time on Windows. The second
// return value is false when no birth time is available, so callers can
// substitute the modification time and tell the user about it.
//
// # Moving
//
// MoveFile renames a file without ever replacing an existing target. On
// Linux this is a single renameat2(RENAME_NOREPLACE) call; elsewhere an
// existence probe runs immediately before the rename. An occupied target
// surfaces as ErrTargetExists so callers can retry under a new name.
// Cross-device renames fall back to copying through a temporary file in
// the destination directory (preserving mode and modification time) and
// removing the source afterwards.
//
// Usage:
//
//	created, ok := fileutil.CreationTime(path, info)
//	if !ok {
//	    created = info.ModTime()
//	}
//
//	err := fileutil.MoveFile(src, dst)
//	if errors.Is(err, fileutil.ErrTargetExists) {
//	    // pick a different dst and retry
//	}
package fileutil
