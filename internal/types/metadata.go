package types

import (
	"math"
	"time"
)

// MatchMetadata holds the replay header fields used to build a filename.
type MatchMetadata struct {
	TeamSize   uint8   `yaml:"team_size"`
	Team0Score *uint32 `yaml:"team0_score,omitempty"` // nil when the match had no goals recorded
	Team1Score *uint32 `yaml:"team1_score,omitempty"`
	RecordFPS  float64 `yaml:"record_fps"`
	MapName    string  `yaml:"map_name"`
	Date       string  `yaml:"date"` // Passed through verbatim
	NumFrames  uint32  `yaml:"num_frames"`
	MatchType  string  `yaml:"match_type"`
}

// Score0 returns the first team's score, or 0 when absent.
func (m *MatchMetadata) Score0() uint32 {
	if m.Team0Score == nil {
		return 0
	}
	return *m.Team0Score
}

// Score1 returns the second team's score, or 0 when absent.
func (m *MatchMetadata) Score1() uint32 {
	if m.Team1Score == nil {
		return 0
	}
	return *m.Team1Score
}

// Validate reports whether the metadata can be turned into a filename.
func (m *MatchMetadata) Validate() error {
	fps := m.RecordFPS
	if fps <= 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
		return ErrInvalidFrameRate{FPS: fps}
	}
	return nil
}

// Duration returns the match length truncated to whole seconds.
// It returns 0 when the frame rate is invalid; call Validate first.
func (m *MatchMetadata) Duration() time.Duration {
	if m.Validate() != nil {
		return 0
	}
	secs := float64(m.NumFrames) / m.RecordFPS
	return time.Duration(secs) * time.Second
}
