package render

import (
	"fmt"
	"image/color"
	"io"

	"solenoid/types"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Plot 磁通与电动势的静态图, 上下两幅
type Plot struct {
	Format string    // png 或 svg
	Width  vg.Length // 图像宽度
	Height vg.Length // 图像总高度
}

// NewPlot 默认尺寸
func NewPlot(format string) *Plot {
	return &Plot{Format: format, Width: 8 * vg.Inch, Height: 8 * vg.Inch}
}

// Render 输出图像
func (pl *Plot) Render(frame *types.Frame, w io.Writer) error {
	flux, err := FluxPlot(frame)
	if err != nil {
		return err
	}
	emf, err := EMFPlot(frame)
	if err != nil {
		return err
	}
	canvas, err := pl.canvas()
	if err != nil {
		return err
	}
	tiles := draw.Tiles{Rows: 2, Cols: 1, PadY: vg.Millimeter * 4}
	cells := plot.Align([][]*plot.Plot{{flux}, {emf}}, tiles, draw.New(canvas))
	flux.Draw(cells[0][0])
	emf.Draw(cells[1][0])
	_, err = canvas.WriteTo(w)
	return err
}

func (pl *Plot) Extension() string { return pl.Format }

func (pl *Plot) canvas() (vg.CanvasWriterTo, error) {
	switch pl.Format {
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.New(pl.Width, pl.Height)}, nil
	case "svg":
		return vgsvg.New(pl.Width, pl.Height), nil
	}
	return nil, fmt.Errorf("不支持的图像格式 %q", pl.Format)
}

// FluxPlot 磁通曲线
func FluxPlot(frame *types.Frame) (*plot.Plot, error) {
	p := newPlot("Magnetic flux Φ(t)", "Flux (Wb)")
	line, err := plotter.NewLine(xys(frame.Series.Times, frame.Series.Flux))
	if err != nil {
		return nil, err
	}
	line.Color = color.RGBA{R: 50, G: 205, B: 50, A: 255}
	line.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("Φ(t)", line)
	return p, nil
}

// EMFPlot 电动势曲线, 数值微分与解析式叠加
func EMFPlot(frame *types.Frame) (*plot.Plot, error) {
	p := newPlot("Induced EMF ε(t)", "Voltage (V)")
	err := plotutil.AddLines(p,
		"ε(t)", xys(frame.Series.Times, frame.Series.EMF),
		"ε closed form", xys(frame.Series.Times, frame.Series.ClosedFormEMF),
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func newPlot(title, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range pts {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}
