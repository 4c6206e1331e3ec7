package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mydehq/rlrename/internal/config"
	"github.com/mydehq/rlrename/internal/decoder"
	"github.com/mydehq/rlrename/internal/matcher"
	"github.com/mydehq/rlrename/internal/types"
)

// inspectReport is one YAML document printed per replay.
type inspectReport struct {
	File     string               `yaml:"file"`
	Eligible bool                 `yaml:"eligible"`
	Metadata *types.MatchMetadata `yaml:"metadata,omitempty"`
	Duration string               `yaml:"duration,omitempty"`
	Filename string               `yaml:"filename,omitempty"`
	Error    string               `yaml:"error,omitempty"`
}

func newInspectCmd(opts *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <replay>...",
		Short: "Decode replays and print their metadata as YAML",
		Long:  "Decodes each replay with the configured parser and prints the metadata and the filename it would be renamed to. Nothing is renamed.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, *opts)
		},
	}
}

func runInspect(cmd *cobra.Command, paths []string, opts config.Options) error {
	opts.Normalize()
	dec := decoder.NewCommand(opts.DecoderCommand, opts.DecoderArgs...)
	if err := dec.Check(); err != nil {
		return err
	}
	filter := matcher.NewFilter(opts.Extension)

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()

	failed := 0
	for _, path := range paths {
		report := inspectReport{
			File:     path,
			Eligible: filter.Eligible(filepath.Base(path)),
		}

		if meta, err := decodeFile(cmd, dec, path); err != nil {
			failed++
			report.Error = err.Error()
			logger.Error(fmt.Sprintf("%s: %v", path, err))
		} else {
			report.Metadata = meta
			report.Duration = matcher.FormatDuration(meta.Duration())
			report.Filename = matcher.GenerateFilename(meta, filter.Ext())
		}

		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d replays could not be decoded", failed, len(paths))
	}
	return nil
}

func decodeFile(cmd *cobra.Command, dec decoder.Decoder, path string) (*types.MatchMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.FileError{Op: types.OpRead, Path: path, Err: err}
	}
	meta, err := dec.Decode(cmd.Context(), data)
	if err != nil {
		return nil, &types.FileError{Op: types.OpDecode, Path: path, Err: err}
	}
	if err := meta.Validate(); err != nil {
		return nil, &types.FileError{Op: types.OpDecode, Path: path, Err: err}
	}
	return meta, nil
}
