package utils

import (
	"strconv"

	"solenoid/types"
)

// Parameters 以 base 为默认值读取六个输入量
func (value Values) Parameters(base types.Parameters) (p types.Parameters, err error) {
	p = base
	if p.Solenoid.Turns, err = value.ParseInt(types.NameTurns, base.Solenoid.Turns); err != nil {
		return base, err
	}
	if p.Solenoid.RadiusCm, err = value.ParseFloat64(types.NameRadius, base.Solenoid.RadiusCm); err != nil {
		return base, err
	}
	if p.Solenoid.HeightCm, err = value.ParseFloat64(types.NameHeight, base.Solenoid.HeightCm); err != nil {
		return base, err
	}
	if p.Field.Amplitude, err = value.ParseFloat64(types.NameAmplitude, base.Field.Amplitude); err != nil {
		return base, err
	}
	if p.Field.Frequency, err = value.ParseFloat64(types.NameFrequency, base.Field.Frequency); err != nil {
		return base, err
	}
	if p.Field.Time, err = value.ParseFloat64(types.NameTime, base.Field.Time); err != nil {
		return base, err
	}
	return p, nil
}

// FromParameters 导出为参数映射
func FromParameters(p types.Parameters) Values {
	return Values{
		types.NameTurns:     strconv.Itoa(p.Solenoid.Turns),
		types.NameRadius:    FormatFloat(p.Solenoid.RadiusCm),
		types.NameHeight:    FormatFloat(p.Solenoid.HeightCm),
		types.NameAmplitude: FormatFloat(p.Field.Amplitude),
		types.NameFrequency: FormatFloat(p.Field.Frequency),
		types.NameTime:      FormatFloat(p.Field.Time),
	}
}

// ParameterNames 界面顺序的参数名
var ParameterNames = []string{
	types.NameTurns,
	types.NameRadius,
	types.NameHeight,
	types.NameAmplitude,
	types.NameFrequency,
	types.NameTime,
}
