package matcher_test

import (
	"strings"
	"testing"
	"time"

	"github.com/mydehq/rlrename/internal/matcher"
	"github.com/mydehq/rlrename/internal/types"
)

func u32(v uint32) *uint32 { return &v }

func TestFilterEligible(t *testing.T) {
	f := matcher.NewFilter("")

	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{"Raw identifier", "28E4E0FE49754D401B77288664EC770A.replay", true},
		{"Short hex", "AAAAAAAA.replay", true},
		{"Lowercase hex", "28e4e0fe49754d40.replay", true},
		{"Already renamed", "2024-01-01 - 3v3 - Stadium (Online) - 2-1 - 10m 0s.replay", false},
		{"Mode label only", "3v3.replay", false},
		{"Too short", "ABC.replay", false},
		{"Wrong extension", "28E4E0FE49754D40.txt", false},
		{"No extension", "28E4E0FE49754D40", false},
		{"Non-hex characters", "28E4E0FE49754D4Z.replay", false},
		{"Trailing garbage", "28E4E0FE49754D40.replay.bak", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Eligible(tt.filename); got != tt.want {
				t.Errorf("Eligible(%q) = %v; want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestFilterCustomExt(t *testing.T) {
	f := matcher.NewFilter("rpl")
	if f.Ext() != ".rpl" {
		t.Errorf("Ext() = %q; want %q", f.Ext(), ".rpl")
	}
	if !f.Eligible("DEADBEEF.rpl") {
		t.Error("expected DEADBEEF.rpl to be eligible")
	}
	if f.Eligible("DEADBEEF.replay") {
		t.Error("expected DEADBEEF.replay to be ineligible with .rpl filter")
	}
}

func TestGenerateFilename(t *testing.T) {
	tests := []struct {
		name string
		meta types.MatchMetadata
		want string
	}{
		{
			name: "Standard match",
			meta: types.MatchMetadata{
				TeamSize: 3, Team0Score: u32(2), Team1Score: u32(1),
				RecordFPS: 30, MapName: "Stadium", Date: "2024-01-01",
				NumFrames: 18000, MatchType: "Online",
			},
			want: "2024-01-01 - 3v3 - Stadium (Online) - 2-1 - 10m 0s.replay",
		},
		{
			name: "Missing scores default to zero",
			meta: types.MatchMetadata{
				TeamSize: 1, RecordFPS: 30, MapName: "Park_P", Date: "2019-09-05 20-14-24",
				NumFrames: 900, MatchType: "Private",
			},
			want: "2019-09-05 20-14-24 - 1v1 - Park_P (Private) - 0-0 - 30s.replay",
		},
		{
			name: "Zero frames",
			meta: types.MatchMetadata{
				TeamSize: 2, Team0Score: u32(0), Team1Score: u32(3),
				RecordFPS: 30, MapName: "Beach", Date: "2024-02-02", MatchType: "Offline",
			},
			want: "2024-02-02 - 2v2 - Beach (Offline) - 0-3 - 0ms.replay",
		},
		{
			name: "Unsafe map and type",
			meta: types.MatchMetadata{
				TeamSize: 3, RecordFPS: 30, MapName: "../etc/passwd", Date: "2024-01-01 12:00",
				NumFrames: 60, MatchType: `On\line`,
			},
			want: "2024-01-01 12_00 - 3v3 - .._etc_passwd (On_line) - 0-0 - 2s.replay",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matcher.GenerateFilename(&tt.meta, matcher.DefaultExt)
			if got != tt.want {
				t.Errorf("GenerateFilename() = %q; want %q", got, tt.want)
			}
			if strings.ContainsAny(got, `/\`) {
				t.Errorf("GenerateFilename() = %q contains a path separator", got)
			}
		})
	}
}

func TestGeneratedNamesAreNotEligible(t *testing.T) {
	f := matcher.NewFilter("")
	meta := types.MatchMetadata{
		TeamSize: 3, Team0Score: u32(2), Team1Score: u32(1),
		RecordFPS: 30, MapName: "Stadium", Date: "2024-01-01",
		NumFrames: 18000, MatchType: "Online",
	}
	name := matcher.GenerateFilename(&meta, f.Ext())
	if f.Eligible(name) {
		t.Errorf("generated name %q must not be eligible", name)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0ms"},
		{250 * time.Millisecond, "250ms"},
		{time.Second, "1s"},
		{59 * time.Second, "59s"},
		{time.Minute, "1m 0s"},
		{10 * time.Minute, "10m 0s"},
		{5*time.Minute + 7*time.Second, "5m 7s"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1h 2m 3s"},
		{-time.Second, "0ms"},
	}

	for _, tt := range tests {
		if got := matcher.FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q; want %q", tt.d, got, tt.want)
		}
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Stadium", "Stadium"},
		{"a/b", "a_b"},
		{`a\b`, "a_b"},
		{"what?*", "what__"},
		{"  spaced   out  ", "spaced out"},
		{"tab\there", "tab here"},
		{"bell\x07", "bell_"},
		{"trailing...", "trailing"},
		{"", "Unknown"},
		{"..", "Unknown"},
	}

	for _, tt := range tests {
		if got := matcher.Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
