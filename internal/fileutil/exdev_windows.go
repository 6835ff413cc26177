package fileutil

import (
	"errors"
	"syscall"
)

// ERROR_NOT_SAME_DEVICE is what MoveFileEx returns for cross-volume moves
const errorNotSameDevice = syscall.Errno(0x11)

func isCrossDevice(err error) bool {
	return err != nil && errors.Is(err, errorNotSameDevice)
}
