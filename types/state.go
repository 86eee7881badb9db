package types

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// InstantaneousState 某一时刻的电磁量
type InstantaneousState struct {
	Field float64 `json:"field_b"`     // 磁感应强度 B (T)
	Flux  float64 `json:"flux_phi"`    // 磁通 Φ (Wb)
	EMF   float64 `json:"emf_epsilon"` // 感应电动势 ε (V), 解析式
}

// TimeSeries 一个周期内的磁通与电动势
type TimeSeries struct {
	Times         []float64 `json:"times"`           // 时间列 [0, 1/f]
	Flux          []float64 `json:"flux"`            // 磁通列
	EMF           []float64 `json:"emf"`             // 数值微分电动势 -dΦ/dt
	ClosedFormEMF []float64 `json:"closed_form_emf"` // 同一时刻的解析电动势
}

// Len 采样数量
func (s TimeSeries) Len() int { return len(s.Times) }

// Point 三维点 (cm)
type Point = r3.Vec

// Segment 有序点列
type Segment []Point

// FieldVector 磁场矢量采样
type FieldVector struct {
	Position  Point `json:"position"`  // 起点
	Direction Point `json:"direction"` // 方向, 模长为 B
}

// CoilGeometry 三维场景的几何数据
type CoilGeometry struct {
	Spiral        Segment       `json:"spiral"`         // 线圈螺线
	FluxLoop      Segment       `json:"flux_loop"`      // 半高处的磁通回路
	ExternalLines []Segment     `json:"external_lines"` // 外部磁力线
	FieldVectors  []FieldVector `json:"field_vectors"`  // 轴向磁场矢量
}

// Frame 一次完整计算的结果
type Frame struct {
	Parameters Parameters         `json:"parameters"`
	Samples    Samples            `json:"samples"`
	State      InstantaneousState `json:"state"`
	Series     TimeSeries         `json:"series"`
	Geometry   CoilGeometry       `json:"geometry"`
}

// Title 场景标题, 含当前时刻与磁场
func (f *Frame) Title() string {
	return fmt.Sprintf("t = %.2f s | B(t) = %.3f T", f.Parameters.Field.Time, f.State.Field)
}
