package render

import (
	"fmt"
	"io"

	"solenoid/types"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	ctypes "github.com/go-echarts/go-echarts/v2/types"
	"gonum.org/v1/gonum/spatial/r3"
)

// VectorScale 磁场矢量箭头的长度系数 (cm/T)
var VectorScale = 0.25

// 曲线颜色
const (
	colorSpiral   = "orange"
	colorFluxLoop = "deepskyblue"
	colorExternal = "skyblue"
	colorVector   = "#fde725"
	colorFlux     = "limegreen"
	colorEMF      = "crimson"
)

// Charts 曲线绘制
type Charts struct{}

// Render 三维场景与磁通、电动势曲线输出为一个页面
func (c *Charts) Render(frame *types.Frame, w io.Writer) error {
	page := components.NewPage()
	page.PageTitle = "螺线管电磁感应"
	page.AddCharts(
		c.Scene(frame),
		c.Flux(frame),
		c.EMF(frame),
	)
	return page.Render(w)
}

func (*Charts) Extension() string { return "html" }

// Scene 三维场景: 螺线、磁通回路、外部磁力线与轴向磁场矢量
func (*Charts) Scene(frame *types.Frame) *charts.Line3D {
	g := frame.Geometry
	scene := charts.NewLine3D()
	scene.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  ctypes.ThemeWesteros,
			Width:  "900px",
			Height: "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: frame.Title(),
			Subtitle: fmt.Sprintf("B(t) = %s T    Φ(t) = %s Wb    ε(t) = %s V",
				FormatField(frame.State.Field), FormatFlux(frame.State.Flux), FormatEMF(frame.State.EMF)),
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "X"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Y"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Z"}),
	)
	scene.AddSeries("Solenoid", chart3D(g.Spiral),
		charts.WithLineStyleOpts(opts.LineStyle{Color: colorSpiral, Width: 4}))
	scene.AddSeries("Flux loop", chart3D(g.FluxLoop),
		charts.WithLineStyleOpts(opts.LineStyle{Color: colorFluxLoop, Width: 4}))
	// 同名系列共用一个图例
	for _, line := range g.ExternalLines {
		scene.AddSeries("External flux", chart3D(line),
			charts.WithLineStyleOpts(opts.LineStyle{Color: colorExternal, Width: 2}))
	}
	for _, v := range g.FieldVectors {
		head := r3.Add(v.Position, r3.Scale(VectorScale, v.Direction))
		scene.AddSeries("Field B", chart3D(types.Segment{v.Position, head}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: colorVector, Width: 3}))
	}
	return scene
}

// Flux 磁通曲线
func (*Charts) Flux(frame *types.Frame) *charts.Line {
	line := newSeriesChart("Magnetic flux Φ(t)", "Φ (Wb)")
	line.SetXAxis(timeLabels(frame.Series.Times)).
		AddSeries("Φ(t)", lineData(frame.Series.Flux),
			charts.WithLineStyleOpts(opts.LineStyle{Color: colorFlux, Width: 2}))
	return line
}

// EMF 感应电动势曲线, 同时给出数值微分与解析式
func (*Charts) EMF(frame *types.Frame) *charts.Line {
	line := newSeriesChart("Induced EMF ε(t)", "ε (V)")
	line.SetXAxis(timeLabels(frame.Series.Times)).
		AddSeries("ε(t)", lineData(frame.Series.EMF),
			charts.WithLineStyleOpts(opts.LineStyle{Color: colorEMF, Width: 2})).
		AddSeries("ε closed form", lineData(frame.Series.ClosedFormEMF),
			charts.WithLineStyleOpts(opts.LineStyle{Color: colorEMF, Width: 1, Type: "dashed"}))
	return line
}

func newSeriesChart(title, yName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: ctypes.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:        "t (s)",
			SplitNumber: 20,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  yName,
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	return line
}

func chart3D(points types.Segment) []opts.Chart3DData {
	data := make([]opts.Chart3DData, len(points))
	for i, p := range points {
		data[i] = opts.Chart3DData{Value: []interface{}{p.X, p.Y, p.Z}}
	}
	return data
}

func lineData(values []float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v}
	}
	return data
}

func timeLabels(times []float64) []string {
	labels := make([]string, len(times))
	for i, t := range times {
		labels[i] = fmt.Sprintf("%.4f", t)
	}
	return labels
}
