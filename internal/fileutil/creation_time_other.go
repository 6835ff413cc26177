//go:build !linux && !darwin && !freebsd && !netbsd && !windows

package fileutil

import (
	"os"
	"time"
)

func creationTime(_ string, _ os.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
