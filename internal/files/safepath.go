package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// maxNumericSuffix bounds the _1.._9 probe before falling back to a UUID.
const maxNumericSuffix = 9

// SafePath resolves a destination that does not collide with an existing
// file. Label directories accumulate files over many sessions, so a name can
// already be taken; rather than overwrite, a numeric suffix is probed first
// and a UUID suffix is the last resort. The second return reports whether the
// path was changed.
func SafePath(path string) (string, bool, error) {
	if path == "" {
		return "", false, fmt.Errorf("path is empty")
	}

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return path, false, nil
	}
	if err != nil {
		return "", false, err
	}

	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)

	for i := 1; i <= maxNumericSuffix; i++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, i, ext)
		_, err := os.Stat(candidate)
		if os.IsNotExist(err) {
			return candidate, true, nil
		}
		if err != nil {
			return "", false, err
		}
	}

	suffix := uuid.NewString()
	if u, err := uuid.NewV7(); err == nil {
		suffix = u.String()
	}
	return fmt.Sprintf("%s_%s%s", stem, suffix, ext), true, nil
}
