package types

// 参数名称常量定义
const (
	NameTurns     = "turns"     // 线圈匝数
	NameRadius    = "radius_cm" // 线圈半径 (cm)
	NameHeight    = "height_cm" // 线圈高度 (cm)
	NameAmplitude = "b0"        // 磁场幅值 (T)
	NameFrequency = "frequency" // 频率 (Hz)
	NameTime      = "time"      // 时刻 (s)
)

// 默认参数常量定义
var (
	DefaultTurns     = 10  // 默认匝数
	DefaultRadius    = 1.0 // 默认半径 (cm)
	DefaultHeight    = 5.0 // 默认高度 (cm)
	DefaultAmplitude = 1.0 // 默认磁场幅值 (T)
	DefaultFrequency = 1.0 // 默认频率 (Hz)
	DefaultTime      = 0.0 // 默认时刻 (s)
)

// 默认采样常量定义
var (
	DefaultSeriesSamples = 500 // 时间序列采样点
	DefaultSpiralSamples = 500 // 螺线采样点
	DefaultLoopSamples   = 100 // 磁通回路采样点
	DefaultExternalLines = 12  // 外部磁力线数量
	DefaultFieldVectors  = 6   // 轴向磁场矢量数量
)

// 几何常量定义
const (
	ExternalLinePoints   = 10  // 每条外部磁力线的采样点
	ExternalLineHalfSpan = 1.0 // 外部磁力线相对半高的偏移 (cm)
	FieldVectorHalfSpan  = 0.8 // 轴向矢量相对半高的偏移 (cm)
	CentimetersPerMeter  = 100.0
)

// Range 参数取值范围
type Range struct {
	Min  float64 // 下限
	Max  float64 // 上限
	Step float64 // 界面步进, 0 表示连续
}

// Contains 判断是否在范围内
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Clamp 截断到范围内
func (r Range) Clamp(v float64) float64 { return min(max(v, r.Min), r.Max) }

// Ranges 输入控件的取值范围
var Ranges = map[string]Range{
	NameTurns:     {Min: 1, Max: 100, Step: 1},
	NameRadius:    {Min: 1.0, Max: 5.0},
	NameHeight:    {Min: 1.0, Max: 20.0},
	NameAmplitude: {Min: 0.1, Max: 10.0},
	NameFrequency: {Min: 0.1, Max: 10.0},
	NameTime:      {Min: 0.0, Max: 1.0, Step: 0.01},
}
