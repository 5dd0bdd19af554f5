package chart

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0a84ff"))
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(TextColor))
	gridStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(GridColor))
	dayStyle    = textStyle.Bold(true)
)

// RenderText renders a terminal preview of view: one row per sample with its
// tooltip title, a bar scaled from zero and its tooltip label. A day header
// is printed wherever the axis label is non-empty. Missing samples get an
// empty bar.
func RenderText(view View, width int) string {
	if width <= 0 {
		width = 40
	}

	var values []*float64
	if len(view.Config.Data.Datasets) > 0 {
		values = view.Config.Data.Datasets[0].Data
	}
	labels := view.Config.Data.Labels

	top := 0.0
	for _, v := range values {
		if v != nil {
			top = math.Max(top, *v)
		}
	}
	if top <= 0 {
		top = 1
	}

	var sb strings.Builder
	sb.WriteString(accentStyle.Render("● " + DatasetLabel))
	sb.WriteString("\n")
	sb.WriteString(gridStyle.Render(YAxisTitle + " from 0 to " + FormatValue(top)))
	sb.WriteString("\n")

	for i, v := range values {
		if i < len(labels) && labels[i] != "" {
			sb.WriteString(dayStyle.Render(labels[i]))
			sb.WriteString("\n")
		}

		n := 0
		if v != nil {
			n = min(int(math.Round(math.Max(0, *v)/top*float64(width))), width)
		}

		title := ""
		if i < len(view.Tooltip.Titles) {
			title = view.Tooltip.Titles[i]
		}
		label := ""
		if i < len(view.Tooltip.Labels) {
			label = view.Tooltip.Labels[i]
		}

		sb.WriteString("  ")
		sb.WriteString(textStyle.Render(title))
		sb.WriteString(" ")
		sb.WriteString(accentStyle.Render(strings.Repeat("█", n)))
		sb.WriteString(gridStyle.Render(strings.Repeat("·", width-n)))
		sb.WriteString(" ")
		sb.WriteString(textStyle.Render(label))
		sb.WriteString("\n")
	}

	sb.WriteString(gridStyle.Render(XAxisTitle))
	sb.WriteString("\n")
	return sb.String()
}
