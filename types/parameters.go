package types

import "math"

// SolenoidParameters 线圈几何参数, 长度单位为厘米
type SolenoidParameters struct {
	Turns    int     `json:"turns"`     // 匝数
	RadiusCm float64 `json:"radius_cm"` // 半径
	HeightCm float64 `json:"height_cm"` // 高度
}

// RadiusMeters 物理计算使用的半径 (m)
func (p SolenoidParameters) RadiusMeters() float64 { return CentimetersToMeters(p.RadiusCm) }

// Validate 检查几何约束
func (p SolenoidParameters) Validate() error {
	if err := RequireAtLeast(NameTurns, p.Turns, 1); err != nil {
		return err
	}
	if err := RequirePositive(NameRadius, p.RadiusCm); err != nil {
		return err
	}
	return RequirePositive(NameHeight, p.HeightCm)
}

// FieldParameters 正弦磁场参数
type FieldParameters struct {
	Amplitude float64 `json:"b0"`        // 幅值 B0 (T)
	Frequency float64 `json:"frequency"` // 频率 f (Hz)
	Time      float64 `json:"time"`      // 时刻 t (s)
}

// AngularFrequency 角频率 ω = 2πf
func (f FieldParameters) AngularFrequency() float64 { return 2 * math.Pi * f.Frequency }

// Validate 检查磁场约束
func (f FieldParameters) Validate() error {
	if err := RequirePositive(NameFrequency, f.Frequency); err != nil {
		return err
	}
	return RequireNonNegative(NameTime, f.Time)
}

// Parameters 界面的六个输入量
type Parameters struct {
	Solenoid SolenoidParameters `json:"solenoid"`
	Field    FieldParameters    `json:"field"`
}

// DefaultParameters 默认输入
func DefaultParameters() Parameters {
	return Parameters{
		Solenoid: SolenoidParameters{Turns: DefaultTurns, RadiusCm: DefaultRadius, HeightCm: DefaultHeight},
		Field:    FieldParameters{Amplitude: DefaultAmplitude, Frequency: DefaultFrequency, Time: DefaultTime},
	}
}

// values 参数名到数值的映射, 顺序与界面一致
func (p Parameters) values() []struct {
	name  string
	value float64
} {
	return []struct {
		name  string
		value float64
	}{
		{NameTurns, float64(p.Solenoid.Turns)},
		{NameRadius, p.Solenoid.RadiusCm},
		{NameHeight, p.Solenoid.HeightCm},
		{NameAmplitude, p.Field.Amplitude},
		{NameFrequency, p.Field.Frequency},
		{NameTime, p.Field.Time},
	}
}

// Validate 按界面范围检查全部参数, 返回第一个越界的参数
func (p Parameters) Validate() error {
	for _, v := range p.values() {
		r := Ranges[v.name]
		if math.IsNaN(v.value) || !r.Contains(v.value) {
			return NewParameterError(v.name, v.value, "must be within [%g, %g]", r.Min, r.Max)
		}
	}
	return nil
}

// Clamp 显式截断到界面范围, 不会被隐式调用
func (p Parameters) Clamp() Parameters {
	p.Solenoid.Turns = int(Ranges[NameTurns].Clamp(float64(p.Solenoid.Turns)))
	p.Solenoid.RadiusCm = Ranges[NameRadius].Clamp(p.Solenoid.RadiusCm)
	p.Solenoid.HeightCm = Ranges[NameHeight].Clamp(p.Solenoid.HeightCm)
	p.Field.Amplitude = Ranges[NameAmplitude].Clamp(p.Field.Amplitude)
	p.Field.Frequency = Ranges[NameFrequency].Clamp(p.Field.Frequency)
	p.Field.Time = Ranges[NameTime].Clamp(p.Field.Time)
	return p
}

// Samples 采样数量
type Samples struct {
	Series        int `json:"series"`         // 时间序列
	Spiral        int `json:"spiral"`         // 螺线
	Loop          int `json:"loop"`           // 磁通回路
	ExternalLines int `json:"external_lines"` // 外部磁力线
	FieldVectors  int `json:"field_vectors"`  // 轴向矢量
}

// DefaultSamples 默认采样
func DefaultSamples() Samples {
	return Samples{
		Series:        DefaultSeriesSamples,
		Spiral:        DefaultSpiralSamples,
		Loop:          DefaultLoopSamples,
		ExternalLines: DefaultExternalLines,
		FieldVectors:  DefaultFieldVectors,
	}
}
