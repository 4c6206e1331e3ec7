package types

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestMatchMetadata_Validate(t *testing.T) {
	cases := []struct {
		fps  float64
		want bool
	}{
		{30, true},
		{0.5, true},
		{0, false},
		{-30, false},
		{math.NaN(), false},
		{math.Inf(1), false},
	}
	for _, c := range cases {
		m := MatchMetadata{RecordFPS: c.fps}
		err := m.Validate()
		if (err == nil) != c.want {
			t.Errorf("Validate() with fps=%v: err=%v, want valid=%v", c.fps, err, c.want)
		}
		if err != nil {
			var bad ErrInvalidFrameRate
			if !errors.As(err, &bad) {
				t.Errorf("Validate() error %T is not ErrInvalidFrameRate", err)
			}
		}
	}
}

func TestMatchMetadata_Duration(t *testing.T) {
	cases := []struct {
		frames uint32
		fps    float64
		want   time.Duration
	}{
		{18000, 30, 10 * time.Minute},
		{0, 30, 0},
		{59, 30, time.Second}, // truncated
		{100, 0, 0},           // invalid fps never panics
	}
	for _, c := range cases {
		m := MatchMetadata{NumFrames: c.frames, RecordFPS: c.fps}
		if got := m.Duration(); got != c.want {
			t.Errorf("Duration(%d frames @ %v fps) = %v; want %v", c.frames, c.fps, got, c.want)
		}
	}
}

func TestMatchMetadata_Scores(t *testing.T) {
	two := uint32(2)
	m := MatchMetadata{Team0Score: &two}
	if m.Score0() != 2 || m.Score1() != 0 {
		t.Errorf("scores = %d-%d; want 2-0", m.Score0(), m.Score1())
	}
}

func TestBatchSummary_Add(t *testing.T) {
	var s BatchSummary
	s.Add(RenameResult{Status: StatusRenamed})
	s.Add(RenameResult{Status: StatusDryRun})
	s.Add(RenameResult{Status: StatusFailed, Err: errors.New("boom")})
	s.Add(RenameResult{Status: StatusSkipped})

	if s.Count() != 2 || s.Failed != 1 || s.Skipped != 1 {
		t.Errorf("summary = %+v", s)
	}
	if s.Verb() != "Renamed" {
		t.Errorf("Verb() = %q", s.Verb())
	}
	s.DryRun = true
	if s.Verb() != "Pretended to rename" {
		t.Errorf("Verb() under dry-run = %q", s.Verb())
	}
}

func TestFileError_Unwrap(t *testing.T) {
	err := error(&FileError{Op: OpRename, Path: "x", Err: ErrDestinationExists})
	if !errors.Is(err, ErrDestinationExists) {
		t.Error("FileError should unwrap to its cause")
	}
	if !IsFileError(err, OpRename) || IsFileError(err, OpRead) {
		t.Error("IsFileError does not match on op")
	}
	if err.Error() != "rename failed: destination already exists" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestStatus_String(t *testing.T) {
	if StatusDryRun.String() != "dry-run" || Status(42).String() != "status(42)" {
		t.Error("unexpected Status strings")
	}
}
