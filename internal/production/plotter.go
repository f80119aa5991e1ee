package production

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/comalice/automationx/internal/core"
	"github.com/comalice/automationx/internal/primitives"
)

// DefaultPlotter renders automation curves as terminal text plots.
type DefaultPlotter struct {
	Width  int // columns (default: 64)
	Height int // rows (default: 12)

	curveStyle lipgloss.Style
	axisStyle  lipgloss.Style
	frameStyle lipgloss.Style
}

// NewPlotter creates a DefaultPlotter with the given plot area.
func NewPlotter(width, height int) *DefaultPlotter {
	if width <= 0 {
		width = 64
	}
	if height <= 0 {
		height = 12
	}
	return &DefaultPlotter{
		Width:      width,
		Height:     height,
		curveStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		axisStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		frameStyle: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// PlotTimeline samples s at Width evenly spaced times in [from, to] and plots them.
func (v *DefaultPlotter) PlotTimeline(s core.Scheduler, from, to float64) string {
	values := make([]float64, v.Width)
	for i := range values {
		t := from
		if v.Width > 1 {
			t = from + (to-from)*float64(i)/float64(v.Width-1)
		}
		values[i] = s.Value(t)
	}
	return v.Plot(values, fmt.Sprintf("t=%g", from), fmt.Sprintf("t=%g", to))
}

// Plot draws values left to right, resampled to Width columns. Non-finite
// values leave their column empty.
func (v *DefaultPlotter) Plot(values []float64, leftLabel, rightLabel string) string {
	if len(values) == 0 {
		return v.frameStyle.Render("(no data)")
	}
	cols := resampleColumns(values, v.Width)

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, x := range cols {
		if isFinite(x) {
			lo, hi = math.Min(lo, x), math.Max(hi, x)
		}
	}
	if math.IsInf(lo, 1) {
		return v.frameStyle.Render("(no finite data)")
	}
	if hi == lo {
		hi = lo + 1
	}

	grid := make([][]byte, v.Height)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(" ", len(cols)))
	}
	for c, x := range cols {
		if !isFinite(x) {
			continue
		}
		row := int(math.Round((hi - x) / (hi - lo) * float64(v.Height-1)))
		grid[row][c] = '*'
	}

	labelWidth := max(len(formatValue(hi)), len(formatValue(lo)))
	var b strings.Builder
	for r, line := range grid {
		label := ""
		switch r {
		case 0:
			label = formatValue(hi)
		case v.Height - 1:
			label = formatValue(lo)
		}
		b.WriteString(v.axisStyle.Render(fmt.Sprintf("%*s │", labelWidth, label)))
		b.WriteString(v.curveStyle.Render(string(line)))
		b.WriteByte('\n')
	}
	pad := max(len(cols)-len(leftLabel)-len(rightLabel), 1)
	b.WriteString(v.axisStyle.Render(fmt.Sprintf("%*s  %s%s%s", labelWidth, "", leftLabel, strings.Repeat(" ", pad), rightLabel)))

	return v.frameStyle.Render(b.String())
}

// ExportJSON serializes the timeline's stored events as an indented script.
func (v *DefaultPlotter) ExportJSON(t *core.Timeline, id string) ([]byte, error) {
	s := t.Script(id)
	s.Version = primitives.ComputeVersion(&s)
	return json.MarshalIndent(s, "", "  ")
}

func resampleColumns(values []float64, width int) []float64 {
	if len(values) <= width {
		return values
	}
	cols := make([]float64, width)
	for c := range cols {
		cols[c] = values[c*len(values)/width]
	}
	return cols
}

func formatValue(x float64) string {
	return fmt.Sprintf("%.3g", x)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
