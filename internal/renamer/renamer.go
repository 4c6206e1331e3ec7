// Package renamer drives a batch rename of replay files in one directory.
package renamer

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/mydehq/rlrename/internal/config"
	"github.com/mydehq/rlrename/internal/decoder"
	"github.com/mydehq/rlrename/internal/matcher"
	"github.com/mydehq/rlrename/internal/types"
)

// EventType classifies a reportable per-file event.
type EventType int

const (
	EventRename EventType = iota // A rename was performed or, under dry-run, planned
	EventFailure
)

// Event is emitted for every attempted rename and every per-file failure.
type Event struct {
	Type        EventType
	Source      string
	Destination string
	Err         error
}

// EventHandler receives rename events. Calls are serialized.
type EventHandler func(Event)

// Renamer renames eligible replays in a directory using decoded metadata.
type Renamer struct {
	decoder decoder.Decoder
	filter  *matcher.Filter
	opts    config.Options
	logger  *log.Logger
	out     io.Writer
	handler EventHandler

	claims *claimTable

	mu      sync.Mutex // guards emission and pending
	pending []Event
}

// New creates a Renamer. Zero-valued options are replaced with defaults.
func New(dec decoder.Decoder, opts config.Options) *Renamer {
	o := opts.Clone()
	o.Normalize()

	return &Renamer{
		decoder: dec,
		filter:  matcher.NewFilter(o.Extension),
		opts:    o,
		logger:  log.New(os.Stderr),
		out:     os.Stdout,
		claims:  newClaimTable(),
	}
}

// WithDryRun computes and reports renames without touching the filesystem.
func (r *Renamer) WithDryRun() *Renamer {
	r.opts.DryRun = true
	return r
}

// WithQuiet suppresses per-file progress lines. Failures are still logged.
func (r *Renamer) WithQuiet() *Renamer {
	r.opts.Quiet = true
	return r
}

// WithOrdered buffers progress lines and prints them sorted by source once the batch is done.
func (r *Renamer) WithOrdered() *Renamer {
	r.opts.Ordered = true
	return r
}

// WithLogger sets the logger used for failures and debug output.
func (r *Renamer) WithLogger(l *log.Logger) *Renamer {
	if l != nil {
		r.logger = l
	}
	return r
}

// WithOutput sets the writer used for "source -> destination" lines.
func (r *Renamer) WithOutput(w io.Writer) *Renamer {
	if w != nil {
		r.out = w
	}
	return r
}

// WithEventHandler replaces the default rename line printer.
func (r *Renamer) WithEventHandler(h EventHandler) *Renamer {
	r.handler = h
	return r
}

// Execute processes every regular file in dir concurrently and returns the
// aggregated summary. Only a failure to read dir is returned as an error
// (a *types.FatalError); per-file failures are reported and counted.
func (r *Renamer) Execute(ctx context.Context, dir string) (*types.BatchSummary, error) {
	scan, err := config.Scan(dir)
	if err != nil {
		return nil, &types.FatalError{Dir: dir, Err: err}
	}

	summary := &types.BatchSummary{DryRun: r.opts.DryRun}
	r.logger.Debug("Scanned directory", "dir", dir, "files", len(scan.Entries), "workers", r.opts.Jobs)

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(r.opts.Jobs)

	start := time.Now()
	for _, e := range scan.Entries {
		if ctx.Err() != nil {
			r.logger.Warn("Interrupted, waiting for in-flight files")
			break
		}
		g.Go(func() error {
			res := r.Process(ctx, e.Path)
			r.logger.Debug("Processed", "file", e.Name, "status", res.Status)
			mu.Lock()
			summary.Add(res)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	summary.Elapsed = time.Since(start)

	r.flush()
	return summary, nil
}

// emit reports ev immediately, or queues it when ordered output is requested.
func (r *Renamer) emit(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.opts.Ordered {
		r.pending = append(r.pending, ev)
		return
	}
	r.dispatch(ev)
}

func (r *Renamer) flush() {
	r.mu.Lock()
	defer r.mu.Unlock()

	sort.SliceStable(r.pending, func(i, j int) bool {
		return r.pending[i].Source < r.pending[j].Source
	})
	for _, ev := range r.pending {
		r.dispatch(ev)
	}
	r.pending = nil
}

// dispatch must be called with r.mu held.
func (r *Renamer) dispatch(ev Event) {
	if ev.Type == EventFailure {
		r.logger.Error(fmt.Sprintf("%s: %v", ev.Source, ev.Err))
		return
	}
	if r.handler != nil {
		r.handler(ev)
		return
	}
	fmt.Fprintf(r.out, "%s -> %s\n", ev.Source, ev.Destination)
}

// FormatSummary renders the final summary line, e.g. "Renamed 3 files in 12ms".
func FormatSummary(s *types.BatchSummary) string {
	noun := "files"
	if s.Count() == 1 {
		noun = "file"
	}
	return fmt.Sprintf("%s %d %s in %s", s.Verb(), s.Count(), noun, s.Elapsed.Round(time.Millisecond))
}
