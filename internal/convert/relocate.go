package convert

import (
	"io"
	"os"
	"path/filepath"

	"github.com/ajitpratap0/tpcarrow/pkg/converrors"
)

// sameDevice reports whether a path and a directory reside on the same
// storage volume. Platform implementations live in relocate_unix.go and
// relocate_windows.go; tests may swap this to force either path.
var sameDevice = platformSameDevice

// relocate moves src to dest. On the same device it is an atomic rename;
// across devices it copies the bytes and deletes the source only after the
// copy is fully written. An ambiguous device check falls back to the copy
// path. After a failed copy the source is intact and no partial destination
// remains.
func relocate(src, dest string) error {
	same, err := sameDevice(src, filepath.Dir(dest))
	if err != nil {
		same = false
	}

	if same {
		if err := os.Rename(src, dest); err != nil {
			return converrors.Wrap(err, converrors.ErrorTypeIO, "failed to rename part file")
		}
		return nil
	}

	return copyAndRemove(src, dest)
}

// copyAndRemove copies src to dest, then deletes src. The source is never
// removed before the destination is fully written and closed, and a partial
// destination is removed on failure.
func copyAndRemove(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return converrors.Wrap(err, converrors.ErrorTypeIO, "failed to open source file")
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return converrors.Wrap(err, converrors.ErrorTypeIO, "failed to create destination file")
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return converrors.Wrap(err, converrors.ErrorTypeIO, "failed to copy part file").
			WithDetail("source", src).
			WithDetail("dest", dest)
	}

	if err := out.Close(); err != nil {
		os.Remove(dest)
		return converrors.Wrap(err, converrors.ErrorTypeIO, "failed to finalize destination file")
	}

	if err := os.Remove(src); err != nil {
		return converrors.Wrap(err, converrors.ErrorTypeIO, "failed to remove source file after copy")
	}

	return nil
}
