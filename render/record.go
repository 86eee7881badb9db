package render

import (
	"encoding/json"
	"io"

	"solenoid/types"
)

// Display 三个标量的显示字符串
type Display struct {
	Field string `json:"field_b"`     // T
	Flux  string `json:"flux_phi"`    // Wb
	EMF   string `json:"emf_epsilon"` // V
}

// Series 二维曲线
type Series struct {
	Name string    `json:"name"`
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
}

// Scene 三维场景点列, 坐标为 [x, y, z]
type Scene struct {
	Spiral        [][3]float64   `json:"spiral"`
	FluxLoop      [][3]float64   `json:"flux_loop"`
	ExternalLines [][][3]float64 `json:"external_lines"`
	FieldVectors  []Vector       `json:"field_vectors"`
}

// Vector 矢量采样
type Vector struct {
	Position  [3]float64 `json:"position"`
	Direction [3]float64 `json:"direction"`
}

// Record 渲染层使用的完整数据
type Record struct {
	Title      string           `json:"title"`
	Parameters types.Parameters `json:"parameters"`
	Display    Display          `json:"display"`
	Scene      Scene            `json:"scene"`
	Flux       Series           `json:"flux"`
	EMF        Series           `json:"emf"`
}

// NewRecord 从计算结果构建
func NewRecord(frame *types.Frame) *Record {
	g := frame.Geometry
	rec := &Record{
		Title:      frame.Title(),
		Parameters: frame.Parameters,
		Display: Display{
			Field: FormatField(frame.State.Field),
			Flux:  FormatFlux(frame.State.Flux),
			EMF:   FormatEMF(frame.State.EMF),
		},
		Scene: Scene{
			Spiral:        coords(g.Spiral),
			FluxLoop:      coords(g.FluxLoop),
			ExternalLines: make([][][3]float64, len(g.ExternalLines)),
			FieldVectors:  make([]Vector, len(g.FieldVectors)),
		},
		Flux: Series{Name: "Φ(t)", X: frame.Series.Times, Y: frame.Series.Flux},
		EMF:  Series{Name: "ε(t)", X: frame.Series.Times, Y: frame.Series.EMF},
	}
	for i, line := range g.ExternalLines {
		rec.Scene.ExternalLines[i] = coords(line)
	}
	for i, v := range g.FieldVectors {
		rec.Scene.FieldVectors[i] = Vector{Position: coord(v.Position), Direction: coord(v.Direction)}
	}
	return rec
}

// Render 以 JSON 输出
func (*Record) Render(frame *types.Frame, w io.Writer) error {
	return json.NewEncoder(w).Encode(NewRecord(frame))
}

func (*Record) Extension() string { return "json" }

func coord(p types.Point) [3]float64 { return [3]float64{p.X, p.Y, p.Z} }

func coords(points types.Segment) [][3]float64 {
	out := make([][3]float64, len(points))
	for i, p := range points {
		out[i] = coord(p)
	}
	return out
}
