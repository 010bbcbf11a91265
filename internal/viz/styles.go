package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	canvas   lipgloss.Style
	panel    lipgloss.Style
	header   lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	graph    lipgloss.Style
	help     lipgloss.Style
	key      lipgloss.Style
	running  lipgloss.Style
	done     lipgloss.Style
	record   lipgloss.Style
	errorMsg lipgloss.Style
	progress [3]lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		canvas:   lipgloss.NewStyle().Padding(1, 2),
		panel:    lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(t.Muted).Padding(1, 2).Width(48),
		header:   lipgloss.NewStyle().Foreground(t.Primary).Bold(true).MarginBottom(1),
		label:    lipgloss.NewStyle().Foreground(t.Muted).Width(13),
		value:    lipgloss.NewStyle().Foreground(t.Text),
		graph:    lipgloss.NewStyle().Foreground(t.Secondary).Padding(1, 0),
		help:     lipgloss.NewStyle().Foreground(t.Muted).MarginTop(1),
		key:      lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		running:  lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		done:     lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		record:   lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		errorMsg: lipgloss.NewStyle().Foreground(t.Error),
		progress: [3]lipgloss.Style{
			lipgloss.NewStyle().Foreground(t.Error),
			lipgloss.NewStyle().Foreground(t.Warning),
			lipgloss.NewStyle().Foreground(t.Success),
		},
	}
}

// ProgressBar renders percent in [0,1] as a fixed-width bar.
func (s styles) ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	switch {
	case percent > 0.8:
		return s.progress[2].Render(bar)
	case percent > 0.4:
		return s.progress[1].Render(bar)
	}
	return s.progress[0].Render(bar)
}

// KeyHints renders "k label" pairs on one line.
func (s styles) KeyHints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(s.key.Render(pairs[i]) + s.help.UnsetMarginTop().Render(" "+pairs[i+1]))
	}
	return b.String()
}
