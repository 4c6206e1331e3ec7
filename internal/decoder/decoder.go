// Package decoder turns raw replay bytes into match metadata by delegating
// to an external replay parser.
package decoder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mydehq/rlrename/internal/types"
)

// DefaultCommand is the boxcars command-line frontend. It reads a replay
// on stdin and prints the decoded replay as JSON.
const DefaultCommand = "rrrocket"

// Decoder converts raw replay bytes into structured metadata.
type Decoder interface {
	Decode(ctx context.Context, data []byte) (*types.MatchMetadata, error)
}

// Func adapts an ordinary function to the Decoder interface.
type Func func(ctx context.Context, data []byte) (*types.MatchMetadata, error)

// Decode calls f(ctx, data).
func (f Func) Decode(ctx context.Context, data []byte) (*types.MatchMetadata, error) {
	return f(ctx, data)
}

// Command decodes replays by piping them through an external parser.
type Command struct {
	Name string
	Args []string
}

// NewCommand returns a Command decoder for name. An empty name selects DefaultCommand.
func NewCommand(name string, args ...string) *Command {
	if name == "" {
		name = DefaultCommand
	}
	return &Command{Name: name, Args: args}
}

// IsAvailable returns true if the decoder binary is found in $PATH.
func (c *Command) IsAvailable() bool {
	_, err := exec.LookPath(c.Name)
	return err == nil
}

// Check returns ErrDecoderNotFound when the binary cannot be located.
func (c *Command) Check() error {
	if !c.IsAvailable() {
		return types.ErrDecoderNotFound{Command: c.Name}
	}
	return nil
}

// Decode runs the parser with data on stdin and parses its JSON output.
func (c *Command) Decode(ctx context.Context, data []byte) (*types.MatchMetadata, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, types.ErrDecoderNotFound{Command: c.Name}
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("%s failed: %w", c.Name, err)
		}
		return nil, fmt.Errorf("%s failed: %w\noutput: %s", c.Name, err, msg)
	}

	return ParseJSON(stdout.Bytes())
}

// --- parser JSON wire types ---

type replayDocument struct {
	Properties *replayProperties `json:"properties"`
}

type replayProperties struct {
	TeamSize   uint8   `json:"TeamSize"`
	Team0Score *uint32 `json:"Team0Score"`
	Team1Score *uint32 `json:"Team1Score"`
	RecordFPS  float64 `json:"RecordFPS"`
	MapName    string  `json:"MapName"`
	Date       string  `json:"Date"`
	NumFrames  uint32  `json:"NumFrames"`
	MatchType  string  `json:"MatchType"`
}

// ParseJSON extracts match metadata from the parser's JSON output.
// Exported for testing without the parser binary.
func ParseJSON(data []byte) (*types.MatchMetadata, error) {
	var doc replayDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse replay JSON: %w", err)
	}
	if doc.Properties == nil {
		return nil, errors.New("parse replay JSON: missing properties")
	}

	p := doc.Properties
	return &types.MatchMetadata{
		TeamSize:   p.TeamSize,
		Team0Score: p.Team0Score,
		Team1Score: p.Team1Score,
		RecordFPS:  p.RecordFPS,
		MapName:    p.MapName,
		Date:       p.Date,
		NumFrames:  p.NumFrames,
		MatchType:  p.MatchType,
	}, nil
}
