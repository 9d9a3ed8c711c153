//go:build !windows

package files

import "os"

func renameAtomic(oldPath, newPath string) error {
	return os.Rename(oldPath, newPath)
}

func isReparsePoint(_ string) (bool, error) {
	return false, nil
}
