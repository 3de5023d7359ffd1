// Package tui renders pipstep output for terminals.
package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/pipstep/internal/core/domain"
)

const (
	columnGap   = "  "
	stateColumn = 2
)

var statusHeader = []string{"PACKAGE", "REQUIREMENT", "STATE", "INSTALLED"}

// RenderStatus writes one aligned row per package, with the receipt state
// colored when the terminal supports it.
func RenderStatus(w io.Writer, statuses []domain.PackageStatus) error {
	rows := make([][]string, 0, len(statuses)+1)
	rows = append(rows, statusHeader)
	for i := range statuses {
		rows = append(rows, statusRow(&statuses[i]))
	}

	widths := make([]int, len(statusHeader))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	for r, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			style := cellStyle
			switch {
			case r == 0:
				style = headerStyle
			case i == stateColumn:
				style = stateStyle(statuses[r-1].State)
			}
			cells[i] = style.Width(widths[i]).Render(cell)
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, columnGap), " "))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func statusRow(s *domain.PackageStatus) []string {
	installed := "-"
	if s.Receipt != nil && !s.Receipt.InstalledAt.IsZero() {
		installed = s.Receipt.InstalledAt.UTC().Format(time.RFC3339)
	}
	return []string{
		s.Step.Spec.Name(),
		s.Step.Spec.Requirement(),
		string(s.State),
		installed,
	}
}
