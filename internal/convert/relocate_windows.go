//go:build windows

package convert

import (
	"path/filepath"
	"strings"
)

// platformSameDevice compares the volume names of the two paths. Paths on
// different drives (or UNC shares) take the copy+delete route.
func platformSameDevice(path, dir string) (bool, error) {
	p, err := filepath.Abs(path)
	if err != nil {
		return false, err
	}
	d, err := filepath.Abs(dir)
	if err != nil {
		return false, err
	}

	return strings.EqualFold(filepath.VolumeName(p), filepath.VolumeName(d)), nil
}
