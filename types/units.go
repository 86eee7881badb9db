package types

// CentimetersToMeters 长度单位换算, 物理计算前仅调用一次
func CentimetersToMeters(cm float64) float64 { return cm / CentimetersPerMeter }
