package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/mydehq/rlrename/internal/renamer"
	"github.com/mydehq/rlrename/internal/types"
)

var (
	// Adaptive Color definitions
	colorHeader = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#00af00", ANSI256: "34", ANSI: "2"},
		Light: lipgloss.CompleteColor{TrueColor: "#008700", ANSI256: "28", ANSI: "2"},
	}
	colorCommand = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#5fffff", ANSI256: "86", ANSI: "6"},
		Light: lipgloss.CompleteColor{TrueColor: "#008787", ANSI256: "30", ANSI: "6"},
	}
	colorPath = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#5f5fff", ANSI256: "63", ANSI: "4"},
		Light: lipgloss.CompleteColor{TrueColor: "#0000af", ANSI256: "19", ANSI: "4"},
	}
	colorDim = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#9e9e9e", ANSI256: "247", ANSI: "8"},
		Light: lipgloss.CompleteColor{TrueColor: "#444444", ANSI256: "238", ANSI: "0"},
	}
	colorFlag = lipgloss.CompleteAdaptiveColor{
		Dark:  lipgloss.CompleteColor{TrueColor: "#ff5faf", ANSI256: "204", ANSI: "13"},
		Light: lipgloss.CompleteColor{TrueColor: "#af005f", ANSI256: "125", ANSI: "5"},
	}

	StyleHeader  = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	StyleCommand = lipgloss.NewStyle().Bold(true).Foreground(colorCommand)
	StylePath    = lipgloss.NewStyle().Foreground(colorPath)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleFlag    = lipgloss.NewStyle().Italic(true).Foreground(colorFlag)
)

// eventPrinter renders "source -> destination" lines, dimming the source and
// highlighting the new name. Styles collapse to plain text off a terminal.
func eventPrinter(w io.Writer) renamer.EventHandler {
	return func(ev renamer.Event) {
		fmt.Fprintf(w, "%s %s %s\n",
			StyleDim.Render(ev.Source),
			StyleDim.Render("->"),
			StyleCommand.Render(ev.Destination),
		)
	}
}

// printSummary writes the final summary line.
func printSummary(w io.Writer, s *types.BatchSummary) {
	line := StyleHeader.Render(renamer.FormatSummary(s))
	if s.DryRun {
		line = styleFlag.Render("[DRY RUN]") + " " + line
	}
	if s.Failed > 0 {
		line += " " + StyleDim.Render(fmt.Sprintf("(%d failed)", s.Failed))
	}
	fmt.Fprintln(w, line)
}
