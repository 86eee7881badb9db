package maths

import "gonum.org/v1/gonum/floats"

// Linspace 在闭区间 [start, end] 上生成 n 个等间距点, 包含两端
// n == 0 返回空切片, n == 1 仅返回 start.
func Linspace(start, end float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{start}
	}
	out := floats.Span(make([]float64, n), start, end)
	out[n-1] = end
	return out
}

// LinspaceOpen 在 [start, end) 上生成 n 个等间距点, 不包含终点
func LinspaceOpen(start, end float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	step := (end - start) / float64(n)
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Extent 返回切片的最小值与最大值
func Extent(v []float64) (lo, hi float64) {
	if len(v) == 0 {
		return 0, 0
	}
	return floats.Min(v), floats.Max(v)
}
