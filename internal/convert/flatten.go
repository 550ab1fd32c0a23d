package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/ajitpratap0/tpcarrow/pkg/converrors"
)

// flattenParts relocates every entry directly under tempDir into finalDir,
// assigning each one the next number in the table-wide part sequence:
// finalDir/part-{n}.{ext}. It returns the advanced counter. The first
// relocation error aborts the walk; tempDir itself is left for the caller
// to remove.
func flattenParts(tempDir, finalDir, ext string, next int, log *zap.Logger) (int, error) {
	entries, err := os.ReadDir(tempDir)
	if err != nil {
		return next, converrors.Wrap(err, converrors.ErrorTypeIO, "failed to list part directory")
	}

	for _, entry := range entries {
		src := filepath.Join(tempDir, entry.Name())
		dest := filepath.Join(finalDir, fmt.Sprintf("part-%d.%s", next, ext))
		next++

		log.Debug("relocating part",
			zap.String("source", src),
			zap.String("dest", dest))

		if err := relocate(src, dest); err != nil {
			return next, err
		}
	}

	return next, nil
}
