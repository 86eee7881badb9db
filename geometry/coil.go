// Package geometry 生成三维场景所需的点列, 长度单位为厘米.
package geometry

import (
	"math"

	"solenoid/maths"
	"solenoid/types"

	"gonum.org/v1/gonum/spatial/r3"
)

// CoilSpiral 线圈螺线
// 角度 0→2π·turns 与高度 0→height 分别按采样序号线性分布,
// 因此每匝螺距只在采样数与匝数整除时严格均匀.
func CoilSpiral(radius, height float64, turns, samples int) (types.Segment, error) {
	if err := requireShape(radius, height); err != nil {
		return nil, err
	}
	if err := types.RequireAtLeast(types.NameTurns, turns, 1); err != nil {
		return nil, err
	}
	if err := types.RequireAtLeast("spiral_samples", samples, 2); err != nil {
		return nil, err
	}
	angle := maths.Linspace(0, 2*math.Pi*float64(turns), samples)
	z := maths.Linspace(0, height, samples)
	points := make(types.Segment, samples)
	for i := range points {
		points[i] = onCircle(radius, angle[i], z[i])
	}
	return points, nil
}

// FluxLoop 半高处的闭合圆, 首尾两点重合
func FluxLoop(radius, height float64, samples int) (types.Segment, error) {
	if err := requireShape(radius, height); err != nil {
		return nil, err
	}
	if err := types.RequireAtLeast("loop_samples", samples, 2); err != nil {
		return nil, err
	}
	points := make(types.Segment, samples)
	for i, a := range maths.Linspace(0, 2*math.Pi, samples) {
		points[i] = onCircle(radius, a, height/2)
	}
	return points, nil
}

// ExternalFluxLines 沿圆周均布的竖直短线, 以半高为中心上下各偏移固定 1 cm
// 角度从 0 开始, 不包含 2π.
func ExternalFluxLines(radius, height float64, count int) ([]types.Segment, error) {
	if err := requireShape(radius, height); err != nil {
		return nil, err
	}
	if err := types.RequireAtLeast("external_lines", count, 0); err != nil {
		return nil, err
	}
	mid := height / 2
	z := maths.Linspace(mid-types.ExternalLineHalfSpan, mid+types.ExternalLineHalfSpan, types.ExternalLinePoints)
	lines := make([]types.Segment, count)
	for i, a := range maths.LinspaceOpen(0, 2*math.Pi, count) {
		line := make(types.Segment, len(z))
		for j := range line {
			line[j] = onCircle(radius, a, z[j])
		}
		lines[i] = line
	}
	return lines, nil
}

// FieldVectorSamples 轴线上半高附近的磁场矢量, 方向均为 (0, 0, B)
func FieldVectorSamples(height, field float64, count int) ([]types.FieldVector, error) {
	if err := types.RequirePositive(types.NameHeight, height); err != nil {
		return nil, err
	}
	if err := types.RequireAtLeast("field_vectors", count, 0); err != nil {
		return nil, err
	}
	mid := height / 2
	z := maths.Linspace(mid-types.FieldVectorHalfSpan, mid+types.FieldVectorHalfSpan, count)
	vectors := make([]types.FieldVector, count)
	for i := range vectors {
		vectors[i] = types.FieldVector{
			Position:  r3.Vec{Z: z[i]},
			Direction: r3.Vec{Z: field},
		}
	}
	return vectors, nil
}

// Build 生成全部几何数据
func Build(p types.SolenoidParameters, field float64, s types.Samples) (types.CoilGeometry, error) {
	var (
		g   types.CoilGeometry
		err error
	)
	if g.Spiral, err = CoilSpiral(p.RadiusCm, p.HeightCm, p.Turns, s.Spiral); err != nil {
		return types.CoilGeometry{}, err
	}
	if g.FluxLoop, err = FluxLoop(p.RadiusCm, p.HeightCm, s.Loop); err != nil {
		return types.CoilGeometry{}, err
	}
	if g.ExternalLines, err = ExternalFluxLines(p.RadiusCm, p.HeightCm, s.ExternalLines); err != nil {
		return types.CoilGeometry{}, err
	}
	if g.FieldVectors, err = FieldVectorSamples(p.HeightCm, field, s.FieldVectors); err != nil {
		return types.CoilGeometry{}, err
	}
	return g, nil
}

func onCircle(radius, angle, z float64) r3.Vec {
	return r3.Vec{X: radius * math.Cos(angle), Y: radius * math.Sin(angle), Z: z}
}

func requireShape(radius, height float64) error {
	if err := types.RequirePositive(types.NameRadius, radius); err != nil {
		return err
	}
	return types.RequirePositive(types.NameHeight, height)
}
