// Package matcher decides which replay files are rename candidates and
// builds their new filenames.
package matcher

import (
	"regexp"
	"strings"
)

// DefaultExt is the extension written by the game for replay files.
const DefaultExt = ".replay"

// Filter matches unprocessed replay names: a hex identifier followed by the
// replay extension (e.g. 28E4E0FE49754D401B77288664EC770A.replay).
type Filter struct {
	ext string
	re  *regexp.Regexp
}

// NewFilter compiles a Filter for the given extension. An empty extension
// falls back to DefaultExt.
func NewFilter(ext string) *Filter {
	if ext == "" {
		ext = DefaultExt
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &Filter{
		ext: ext,
		re:  regexp.MustCompile(`^[0-9A-Fa-f]{8,}` + regexp.QuoteMeta(ext) + `$`),
	}
}

// Eligible reports whether name is a raw replay identifier that has not been
// renamed yet. Names produced by GenerateFilename never match.
func (f *Filter) Eligible(name string) bool {
	return f.re.MatchString(name)
}

// Ext returns the extension the filter was built for, with its leading dot.
func (f *Filter) Ext() string {
	return f.ext
}
