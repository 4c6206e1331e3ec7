package renamer

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/mydehq/rlrename/internal/matcher"
	"github.com/mydehq/rlrename/internal/types"
)

var errNoFileName = errors.New("path has no file name component")

// Process handles one file: filter → read → decode → name → rename.
// Every failure is isolated to the returned result and reported; nothing
// here aborts the batch.
func (r *Renamer) Process(ctx context.Context, path string) types.RenameResult {
	res := types.RenameResult{Source: path}

	name := filepath.Base(path)
	if path == "" || name == "." || name == string(filepath.Separator) {
		return r.fail(res, types.OpPath, errNoFileName)
	}
	dir := filepath.Dir(path)

	// --- Eligibility (silent) ---
	if !r.filter.Eligible(name) {
		res.Status = types.StatusSkipped
		res.Reason = "not a raw replay name"
		return res
	}

	// --- Read ---
	data, err := os.ReadFile(path)
	if err != nil {
		return r.fail(res, types.OpRead, err)
	}

	// --- Decode ---
	meta, err := r.decoder.Decode(ctx, data)
	if err != nil {
		return r.fail(res, types.OpDecode, err)
	}
	if err := meta.Validate(); err != nil {
		return r.fail(res, types.OpDecode, err)
	}
	r.logger.Debug("Decoded replay",
		"file", name,
		"size", humanize.Bytes(uint64(len(data))),
		"map", meta.MapName,
		"frames", meta.NumFrames,
	)

	// --- Name ---
	dst := filepath.Join(dir, matcher.GenerateFilename(meta, r.filter.Ext()))
	res.Destination = dst

	if !r.opts.Quiet {
		r.emit(Event{Type: EventRename, Source: path, Destination: dst})
	}

	// --- Collision guard (applies to dry-run too, so both report the same) ---
	if !r.claims.Claim(path, dst) {
		return r.fail(res, types.OpRename, types.ErrDestinationClaimed)
	}
	if _, err := os.Lstat(dst); err == nil {
		return r.fail(res, types.OpRename, types.ErrDestinationExists)
	} else if !os.IsNotExist(err) {
		return r.fail(res, types.OpRename, err)
	}

	if r.opts.DryRun {
		res.Status = types.StatusDryRun
		return res
	}

	// --- Rename ---
	if err := Rename(path, dst); err != nil {
		return r.fail(res, types.OpRename, err)
	}

	res.Status = types.StatusRenamed
	return res
}

func (r *Renamer) fail(res types.RenameResult, op types.Op, err error) types.RenameResult {
	res.Status = types.StatusFailed
	res.Err = &types.FileError{Op: op, Path: res.Source, Err: err}
	r.emit(Event{Type: EventFailure, Source: res.Source, Destination: res.Destination, Err: res.Err})
	return res
}
