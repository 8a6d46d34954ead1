package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar represents a progress bar component
type ProgressBar struct {
	Width   int
	Value   int // percent, 0..100
	Label   string
	Detail  string // shown right of the label, e.g. "45分 / 60分"
	Palette Palette
}

// NewProgressBar creates a new progress bar
func NewProgressBar(width int) *ProgressBar {
	return &ProgressBar{
		Width:   width,
		Palette: DefaultPalette,
	}
}

// SetValue updates the progress, clamped to 0..100
func (p *ProgressBar) SetValue(value int) *ProgressBar {
	p.Value = max(0, min(100, value))
	return p
}

// SetLabel sets the progress label and its detail text
func (p *ProgressBar) SetLabel(label, detail string) *ProgressBar {
	p.Label = label
	p.Detail = detail
	return p
}

// SetPalette sets the colors
func (p *ProgressBar) SetPalette(pal Palette) *ProgressBar {
	p.Palette = pal
	return p
}

// Render renders the progress bar
func (p *ProgressBar) Render() string {
	progressStyle := lipgloss.NewStyle().Foreground(p.Palette.Progress).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(p.Palette.Muted)

	width := max(1, p.Width)
	filledWidth := width * p.Value / 100
	emptyWidth := width - filledWidth

	bar := progressStyle.Render(strings.Repeat("█", filledWidth)) +
		mutedStyle.Render(strings.Repeat("░", emptyWidth))

	result := fmt.Sprintf("%s %3d%%", bar, p.Value)

	if p.Label != "" {
		header := mutedStyle.Render(p.Label)
		if p.Detail != "" {
			gap := max(1, width+5-lipgloss.Width(p.Label)-lipgloss.Width(p.Detail))
			header += strings.Repeat(" ", gap) + lipgloss.NewStyle().Bold(true).Foreground(p.Palette.Foreground).Render(p.Detail)
		}
		result = header + "\n" + result
	}

	return result
}
