package controllers

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/rios0rios0/cratesup/internal/domain/entities"
)

var (
	colorGreen  = lipgloss.Color("35")  // success
	colorYellow = lipgloss.Color("220") // updates
	colorRed    = lipgloss.Color("167") // skipped
	colorCyan   = lipgloss.Color("36")  // versions
	colorDim    = lipgloss.Color("240") // secondary text

	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleVersion = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	iconSuccess = "✔"
	iconUpdate  = "↑"
	iconError   = "✗"
)

// printReport writes one line per dependency followed by a summary line.
func printReport(out io.Writer, report *entities.CheckReport) {
	for _, dep := range report.Resolved {
		if dep.UpdateAvailable {
			_, _ = fmt.Fprintf(out, "%s Crate %s has an update available: %s -> %s\n",
				styleWarning.Render(iconUpdate),
				dep.Name,
				styleDim.Render(dep.DeclaredRequirement),
				styleVersion.Render(dep.RecommendedVersion),
			)
			continue
		}
		_, _ = fmt.Fprintf(out, "%s Crate %s is up to date\n", styleSuccess.Render(iconSuccess), dep.Name)
	}

	for _, skipped := range report.Skipped {
		_, _ = fmt.Fprintf(out, "%s Crate %s was skipped: %s\n",
			styleError.Render(iconError), skipped.Name, styleDim.Render(skipped.Err.Error()))
	}

	switch {
	case report.Updated:
		_, _ = fmt.Fprintln(out, styleSuccess.Render("Cargo.toml has been updated successfully"))
	case !report.HasUpdates():
		_, _ = fmt.Fprintln(out, styleSuccess.Render("All dependencies are up to date"))
	}
}
