package matcher

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/mydehq/rlrename/internal/types"
)

const (
	fieldSeparator = " - "
	unknownField   = "Unknown"
)

// GenerateFilename builds the canonical filename for a replay:
//
//	<date> - <N>vN - <map> (<match type>) - <score0>-<score1> - <duration><ext>
//
// Every text field is sanitized, so the result never contains a path separator.
func GenerateFilename(m *types.MatchMetadata, ext string) string {
	if ext == "" {
		ext = DefaultExt
	}

	parts := []string{
		Sanitize(m.Date),
		ModeLabel(m.TeamSize),
		fmt.Sprintf("%s (%s)", Sanitize(m.MapName), Sanitize(m.MatchType)),
		fmt.Sprintf("%d-%d", m.Score0(), m.Score1()),
		FormatDuration(m.Duration()),
	}
	return strings.Join(parts, fieldSeparator) + ext
}

// ModeLabel formats the team size as "3v3".
func ModeLabel(teamSize uint8) string {
	return fmt.Sprintf("%dv%d", teamSize, teamSize)
}

// FormatDuration renders d compactly: "1h 2m 3s", "10m 0s", "42s" or "0ms".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	total := int64(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// Sanitize makes a decoded string safe to use as part of a filename.
// Characters that are illegal on common filesystems become '_', runs of
// whitespace collapse to one space and trailing dots/spaces are trimmed.
// An empty result becomes "Unknown".
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastSpace := false
	for _, r := range s {
		switch {
		case isIllegal(r):
			b.WriteRune('_')
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteRune(' ')
			}
			lastSpace = true
		default:
			b.WriteRune(r)
			lastSpace = false
		}
	}

	out := strings.TrimRight(strings.TrimSpace(b.String()), ". ")
	if out == "" {
		return unknownField
	}
	return out
}

func isIllegal(r rune) bool {
	switch r {
	case '/', '\\', '<', '>', ':', '"', '|', '?', '*':
		return true
	}
	return unicode.IsControl(r) && !unicode.IsSpace(r)
}
