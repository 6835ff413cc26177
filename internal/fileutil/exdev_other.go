//go:build !unix && !windows

package fileutil

func isCrossDevice(_ error) bool {
	return false
}
