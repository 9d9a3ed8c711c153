package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RejectSymlinkPath refuses paths that traverse a symlink (or a Windows
// reparse point). The action log is rewritten in place on undo, so a linked
// component could redirect that write outside the image root.
func RejectSymlinkPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path is empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	return walkForLinks(abs)
}

func walkForLinks(path string) error {
	volume := filepath.VolumeName(path)
	rest := strings.TrimLeft(path[len(volume):], string(os.PathSeparator))
	if rest == "" {
		return nil
	}

	prefix := volume
	if prefix != "" {
		prefix += string(os.PathSeparator)
	} else if filepath.IsAbs(path) {
		prefix = string(os.PathSeparator)
	}

	for _, component := range strings.Split(rest, string(os.PathSeparator)) {
		if component == "" {
			continue
		}
		prefix = filepath.Join(prefix, component)

		info, err := os.Lstat(prefix)
		if errors.Is(err, os.ErrNotExist) {
			// Components past the deepest existing one cannot be links yet.
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to access path: %w", err)
		}
		if info.Mode()&os.ModeSymlink != 0 {
			return fmt.Errorf("refusing symlinked path %s (link at %s)", path, prefix)
		}
		reparse, err := isReparsePoint(prefix)
		if err != nil {
			return fmt.Errorf("failed to check reparse point: %w", err)
		}
		if reparse {
			return fmt.Errorf("refusing symlinked path %s (reparse point at %s)", path, prefix)
		}
	}
	return nil
}
