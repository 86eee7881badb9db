package maths

import (
	"errors"
	"fmt"
)

// ErrGradient 数值微分输入错误
var ErrGradient = errors.New("gradient")

// Gradient 计算 y 对 x 的数值导数
// 内部点使用二阶中心差分 (支持非等间距), 两端使用一阶单侧差分.
// x 必须严格单调, 且至少两个点.
func Gradient(y, x []float64) ([]float64, error) {
	n := len(y)
	if len(x) != n {
		return nil, fmt.Errorf("%w: 长度不一致 %d != %d", ErrGradient, len(x), n)
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: 至少需要两个点, 得到 %d", ErrGradient, n)
	}
	for i := 1; i < n; i++ {
		if x[i] == x[i-1] {
			return nil, fmt.Errorf("%w: 第 %d 个坐标间距为零", ErrGradient, i)
		}
	}
	out := make([]float64, n)
	// 端点单侧差分
	out[0] = (y[1] - y[0]) / (x[1] - x[0])
	out[n-1] = (y[n-1] - y[n-2]) / (x[n-1] - x[n-2])
	// 内部中心差分
	for i := 1; i < n-1; i++ {
		hs := x[i] - x[i-1]
		hd := x[i+1] - x[i]
		out[i] = (hs*hs*y[i+1] + (hd*hd-hs*hs)*y[i] - hd*hd*y[i-1]) / (hs * hd * (hd + hs))
	}
	return out, nil
}
