// Package config holds the run options and directory scanning used by the renamer.
package config

import (
	"runtime"

	"github.com/mydehq/rlrename/internal/decoder"
	"github.com/mydehq/rlrename/internal/matcher"
)

// Options controls a single batch run.
type Options struct {
	DryRun  bool // Print intended renames without touching the filesystem
	Quiet   bool // Suppress per-file progress lines
	Ordered bool // Buffer progress lines and print them sorted by source name
	Verbose bool

	Jobs           int // Maximum number of files processed concurrently
	DecoderCommand string
	DecoderArgs    []string
	Extension      string
}

// Defaults returns the options used when no flags are given.
func Defaults() Options {
	return Options{
		Jobs:           runtime.NumCPU(),
		DecoderCommand: decoder.DefaultCommand,
		Extension:      matcher.DefaultExt,
	}
}

// Normalize fills zero values with their defaults.
func (o *Options) Normalize() {
	d := Defaults()
	if o.Jobs < 1 {
		o.Jobs = d.Jobs
	}
	if o.DecoderCommand == "" {
		o.DecoderCommand = d.DecoderCommand
	}
	if o.Extension == "" {
		o.Extension = d.Extension
	}
}

// Clone returns a deep copy of the options
func (o *Options) Clone() Options {
	res := *o
	if len(o.DecoderArgs) > 0 {
		res.DecoderArgs = make([]string, len(o.DecoderArgs))
		copy(res.DecoderArgs, o.DecoderArgs)
	}
	return res
}
