package renamer

import (
	"os"

	"github.com/mydehq/rlrename/internal/types"
)

// Swappable so tests can simulate EXDEV and permission failures.
var renameFunc = os.Rename

// Rename wraps os.Rename and marks EXDEV failures as *types.CrossDeviceError.
// Source and destination always share a directory, so EXDEV only shows up
// with unusual mounts (bind mounts, overlay filesystems).
func Rename(src, dst string) error {
	if err := renameFunc(src, dst); err != nil {
		if isEXDEV(err) {
			return &types.CrossDeviceError{Src: src, Dst: dst, Err: err}
		}
		return err
	}
	return nil
}
