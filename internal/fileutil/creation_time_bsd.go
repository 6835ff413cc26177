//go:build darwin || freebsd || netbsd

package fileutil

import (
	"os"
	"syscall"
	"time"
)

// creationTime reads the birth time the kernel already returned with the
// stat call, so no extra syscall is needed.
func creationTime(_ string, info os.FileInfo) (time.Time, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}
	if st.Birthtimespec.Sec == 0 && st.Birthtimespec.Nsec == 0 {
		return time.Time{}, false
	}
	return time.Unix(int64(st.Birthtimespec.Sec), int64(st.Birthtimespec.Nsec)), true
}
