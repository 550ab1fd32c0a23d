//go:build !windows

package convert

import (
	"os"
	"syscall"
)

// platformSameDevice compares the device IDs of the two paths' inodes.
func platformSameDevice(path, dir string) (bool, error) {
	fi1, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	fi2, err := os.Stat(dir)
	if err != nil {
		return false, err
	}

	st1, ok1 := fi1.Sys().(*syscall.Stat_t)
	st2, ok2 := fi2.Sys().(*syscall.Stat_t)
	if !ok1 || !ok2 {
		return false, nil
	}

	return st1.Dev == st2.Dev, nil
}
