package physics

import (
	"fmt"

	"solenoid/maths"
	"solenoid/types"
)

// TimeSeries 在一个完整周期 [0, 1/f] 上采样磁通, 并对其数值微分得到 ε = -dΦ/dt
// 端点使用单侧差分, 精度低于内部点; 采样越多误差越小.
// f.Time 不参与计算.
func TimeSeries(p types.SolenoidParameters, f types.FieldParameters, samples int) (types.TimeSeries, error) {
	if err := validate(p, types.FieldParameters{Amplitude: f.Amplitude, Frequency: f.Frequency}); err != nil {
		return types.TimeSeries{}, err
	}
	if err := types.RequireAtLeast("sample_count", samples, 2); err != nil {
		return types.TimeSeries{}, err
	}
	area := Area(p)
	times := maths.Linspace(0, Period(f), samples)
	flux := maths.Map(times, func(t float64) float64 { return Field(f, t) * area })
	grad, err := maths.Gradient(flux, times)
	if err != nil {
		return types.TimeSeries{}, fmt.Errorf("磁通微分失败: %w", err)
	}
	return types.TimeSeries{
		Times:         times,
		Flux:          flux,
		EMF:           maths.Scale(-1, grad),
		ClosedFormEMF: maths.Map(times, func(t float64) float64 { return ClosedFormEMF(f, area, t) }),
	}, nil
}
