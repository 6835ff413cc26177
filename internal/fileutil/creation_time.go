package fileutil

import (
	"os"
	"time"
)

// CreationTime reports when the file at path was created (its birth time).
// The boolean is false when the platform or the underlying filesystem does
// not record birth times; callers are expected to fall back to the
// modification time and surface the substitution to the user.
func CreationTime(path string, info os.FileInfo) (time.Time, bool) {
	return creationTime(path, info)
}
