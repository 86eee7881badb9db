package render

import (
	"fmt"
	"io"

	"solenoid/maths"
	"solenoid/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	emfStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Padding(1, 0)
)

// Console 终端输出: 三个标量与两条曲线
type Console struct {
	Width  int // 曲线宽度 (字符)
	Height int // 曲线高度 (行)
}

// NewConsole 默认尺寸
func NewConsole() *Console { return &Console{Width: 60, Height: 8} }

// Render 输出文本
func (c *Console) Render(frame *types.Frame, w io.Writer) error {
	p := frame.Parameters
	stats := lipgloss.JoinVertical(lipgloss.Left,
		row("N", fmt.Sprintf("%d", p.Solenoid.Turns)),
		row("r, h (cm)", fmt.Sprintf("%g, %g", p.Solenoid.RadiusCm, p.Solenoid.HeightCm)),
		row("B0, f", fmt.Sprintf("%g T, %g Hz", p.Field.Amplitude, p.Field.Frequency)),
		row("B(t)", FormatField(frame.State.Field)+" T"),
		row("Φ(t)", FormatFlux(frame.State.Flux)+" Wb"),
		row("ε(t)", FormatEMF(frame.State.EMF)+" V"),
		row("ε range", emfRange(frame.Series.EMF)),
	)
	view := lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(frame.Title()),
		stats,
		graphStyle.Render(c.graph(frame.Series.Flux, "Φ(t) [Wb] over one period")),
		emfStyle.Render(c.graph(frame.Series.EMF, "ε(t) [V] over one period")),
	)
	_, err := fmt.Fprintln(w, view)
	return err
}

func (*Console) Extension() string { return "txt" }

func (c *Console) graph(values []float64, caption string) string {
	if len(values) == 0 {
		return caption
	}
	return asciigraph.Plot(values,
		asciigraph.Width(c.Width),
		asciigraph.Height(c.Height),
		asciigraph.Precision(6),
		asciigraph.Caption(caption),
	)
}

func emfRange(values []float64) string {
	lo, hi := maths.Extent(values)
	return fmt.Sprintf("[%s, %s] V", FormatEMF(lo), FormatEMF(hi))
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}
