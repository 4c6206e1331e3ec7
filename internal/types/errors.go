package types

import (
	"errors"
	"fmt"
)

var (
	// ErrDestinationExists is returned when the target name is already taken on disk.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrDestinationClaimed is returned when another file in the same batch
	// synthesized the same destination first.
	ErrDestinationClaimed = errors.New("destination claimed by another replay in this batch")
)

// Op identifies the step of the per-file pipeline that failed.
type Op string

const (
	OpPath   Op = "path"
	OpRead   Op = "read"
	OpDecode Op = "decode"
	OpRename Op = "rename"
)

// FileError is a recoverable failure isolated to a single file.
type FileError struct {
	Op   Op
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// FatalError aborts the whole batch.
type FatalError struct {
	Dir string
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("cannot read directory %s: %v", e.Dir, e.Err)
}

func (e *FatalError) Unwrap() error { return e.Err }

// ErrInvalidFrameRate is returned when a replay's record FPS cannot produce a duration.
type ErrInvalidFrameRate struct {
	FPS float64
}

func (e ErrInvalidFrameRate) Error() string {
	return fmt.Sprintf("invalid record fps: %v", e.FPS)
}

// ErrDecoderNotFound is returned when the external decoder binary is missing.
type ErrDecoderNotFound struct {
	Command string
}

func (e ErrDecoderNotFound) Error() string {
	return fmt.Sprintf("replay decoder %q not found in $PATH", e.Command)
}

// CrossDeviceError marks a rename that failed with EXDEV.
type CrossDeviceError struct {
	Src string
	Dst string
	Err error
}

func (e *CrossDeviceError) Error() string {
	return fmt.Sprintf("cannot move %q to %q across filesystems: %v", e.Src, e.Dst, e.Err)
}

func (e *CrossDeviceError) Unwrap() error { return e.Err }

// IsFileError reports whether err is a FileError for the given op.
func IsFileError(err error, op Op) bool {
	var fe *FileError
	return errors.As(err, &fe) && fe.Op == op
}
