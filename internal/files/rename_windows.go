//go:build windows

package files

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// renameAtomic replaces newPath with oldPath in one MoveFileEx call.
// os.Rename on Windows refuses to replace an existing file, which breaks
// the temp-then-rename pattern AtomicWrite relies on.
func renameAtomic(oldPath, newPath string) error {
	src, err := windows.UTF16PtrFromString(oldPath)
	if err != nil {
		return fmt.Errorf("invalid source path: %w", err)
	}
	dst, err := windows.UTF16PtrFromString(newPath)
	if err != nil {
		return fmt.Errorf("invalid destination path: %w", err)
	}
	flags := uint32(windows.MOVEFILE_REPLACE_EXISTING | windows.MOVEFILE_WRITE_THROUGH)
	return windows.MoveFileEx(src, dst, flags)
}

func isReparsePoint(path string) (bool, error) {
	attrs, err := windows.GetFileAttributes(windows.StringToUTF16Ptr(path))
	if err != nil {
		return false, err
	}
	return attrs&windows.FILE_ATTRIBUTE_REPARSE_POINT != 0, nil
}
