// Package cli wires the rlrename commands.
package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mydehq/rlrename/internal/config"
	"github.com/mydehq/rlrename/internal/decoder"
	"github.com/mydehq/rlrename/internal/renamer"
	"github.com/mydehq/rlrename/internal/ui"
)

var logger *log.Logger

// NewRootCmd builds the command tree with fresh flag state.
func NewRootCmd() *cobra.Command {
	opts := config.Defaults()

	cmd := &cobra.Command{
		Use:   "rlrename [flags] <directory>",
		Short: "Rename Rocket League replay files from their match metadata",
		Long: `Scans a directory (non-recursively) for replays still carrying their raw
identifier name, decodes each header with an external parser and renames it to

  <date> - <N>vN - <map> (<match type>) - <score> - <duration>.replay

Already renamed files are left alone, so running it twice is safe.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = ui.NewLogger(cmd.ErrOrStderr(), opts.Verbose)
			ui.SetLogger(logger)
			ui.ConfigureLoggerStyles()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.DryRun, "dry-run", "n", false, "Print renames but do not rename")
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress per-file output")
	f.IntVarP(&opts.Jobs, "jobs", "j", opts.Jobs, "Number of replays processed concurrently")
	f.BoolVar(&opts.Ordered, "ordered", false, "Print per-file lines sorted by source once all files are done")

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&opts.DecoderCommand, "decoder", opts.DecoderCommand, "Replay parser command (reads a replay on stdin, writes JSON)")
	pf.StringVar(&opts.Extension, "ext", opts.Extension, "Replay file extension")
	pf.StringArrayVar(&opts.DecoderArgs, "decoder-arg", nil, "Extra argument passed to the replay parser (repeatable)")

	cmd.AddCommand(newInspectCmd(&opts))
	return cmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func runRename(cmd *cobra.Command, dir string, opts config.Options) error {
	dec := decoder.NewCommand(opts.DecoderCommand, opts.DecoderArgs...)
	if err := dec.Check(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	r := renamer.New(dec, opts).
		WithLogger(logger).
		WithOutput(out).
		WithEventHandler(eventPrinter(out))

	summary, err := r.Execute(cmd.Context(), dir)
	if err != nil {
		return err
	}

	printSummary(out, summary)
	return nil
}
