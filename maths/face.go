package maths

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon 浮点精度阈值
const Epsilon = 1e-12

// Float 浮点约束
type Float interface {
	constraints.Float
}

// abs 泛型绝对值
func abs[T Float](v T) T { return T(math.Abs(float64(v))) }

// ApproxEqual 相对/绝对混合容差比较
func ApproxEqual[T Float](a, b, tol T) bool {
	d := abs(a - b)
	if d <= tol {
		return true
	}
	return d <= tol*max(abs(a), abs(b))
}

// Scale 返回按系数缩放的新切片
func Scale[T Float](k T, v []T) []T {
	out := make([]T, len(v))
	for i, x := range v {
		out[i] = k * x
	}
	return out
}

// Map 逐元素映射
func Map[T Float](v []T, f func(T) T) []T {
	out := make([]T, len(v))
	for i, x := range v {
		out[i] = f(x)
	}
	return out
}
