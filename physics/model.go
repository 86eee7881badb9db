// Package physics 正弦驱动下理想螺线管的磁场、磁通与感应电动势.
//
// 磁场假定在线圈内沿轴向均匀分布, 不考虑边缘效应.
// 电动势符合法拉第定律 ε = -dΦ/dt: 解析式与数值微分两种算法给出同号结果.
package physics

import (
	"math"

	"solenoid/types"
)

// Area 线圈截面积 (m²)
func Area(p types.SolenoidParameters) float64 {
	r := p.RadiusMeters()
	return math.Pi * r * r
}

// Field 时刻 t 的磁感应强度 B = B0·cos(ωt)
func Field(f types.FieldParameters, t float64) float64 {
	return f.Amplitude * math.Cos(f.AngularFrequency()*t)
}

// ClosedFormEMF 解析电动势 ε = ω·B0·A·sin(ωt)
func ClosedFormEMF(f types.FieldParameters, area, t float64) float64 {
	omega := f.AngularFrequency()
	return omega * f.Amplitude * area * math.Sin(omega*t)
}

// Period 一个周期 1/f (s)
func Period(f types.FieldParameters) float64 { return 1 / f.Frequency }

// Instantaneous 计算当前时刻的磁场、磁通与解析电动势
func Instantaneous(p types.SolenoidParameters, f types.FieldParameters) (types.InstantaneousState, error) {
	if err := validate(p, f); err != nil {
		return types.InstantaneousState{}, err
	}
	area := Area(p)
	b := Field(f, f.Time)
	return types.InstantaneousState{
		Field: b,
		Flux:  b * area,
		EMF:   ClosedFormEMF(f, area, f.Time),
	}, nil
}

func validate(p types.SolenoidParameters, f types.FieldParameters) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return f.Validate()
}
