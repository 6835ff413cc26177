package fileutil

import (
	"os"
	"syscall"
	"time"
)

func creationTime(_ string, info os.FileInfo) (time.Time, bool) {
	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, false
	}
	nsec := attrs.CreationTime.Nanoseconds()
	if nsec == 0 {
		return time.Time{}, false
	}
	return time.Unix(0, nsec), true
}
