// Package load 读取场景配置文件.
//
// 支持 TOML 与 INI (gcfg) 两种格式, 按扩展名区分. 场景中未给出的参数取默认值.
package load

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"solenoid/types"

	"github.com/facette/natsort"
)

// DefaultScenario 未命名场景的名称
const DefaultScenario = "default"

// Scenario 单个场景的六个输入量
type Scenario struct {
	Turns     int     `toml:"turns"`
	RadiusCm  float64 `toml:"radius_cm"`
	HeightCm  float64 `toml:"height_cm"`
	Amplitude float64 `toml:"b0"`
	Frequency float64 `toml:"frequency"`
	Time      float64 `toml:"time"`
}

// Parameters 转换为计算参数
func (s Scenario) Parameters() types.Parameters {
	return types.Parameters{
		Solenoid: types.SolenoidParameters{Turns: s.Turns, RadiusCm: s.RadiusCm, HeightCm: s.HeightCm},
		Field:    types.FieldParameters{Amplitude: s.Amplitude, Frequency: s.Frequency, Time: s.Time},
	}
}

// DefaultScenarioValues 默认场景
func DefaultScenarioValues() Scenario {
	p := types.DefaultParameters()
	return Scenario{
		Turns:     p.Solenoid.Turns,
		RadiusCm:  p.Solenoid.RadiusCm,
		HeightCm:  p.Solenoid.HeightCm,
		Amplitude: p.Field.Amplitude,
		Frequency: p.Field.Frequency,
		Time:      p.Field.Time,
	}
}

// Config 配置文件内容
type Config struct {
	OutputDir string              // 输出目录
	Formats   []string            // 输出格式
	Samples   types.Samples       // 采样数量
	Scenarios map[string]Scenario // 场景列表
}

// NewConfig 默认配置
func NewConfig() *Config {
	return &Config{
		OutputDir: ".",
		Formats:   []string{"html"},
		Samples:   types.DefaultSamples(),
		Scenarios: map[string]Scenario{},
	}
}

// Names 场景名称, 自然排序 (run2 在 run10 之前)
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Scenarios))
	for name := range c.Scenarios {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return natsort.Compare(names[i], names[j]) })
	return names
}

// Scenario 按名称获取参数
func (c *Config) Scenario(name string) (types.Parameters, error) {
	s, ok := c.Scenarios[name]
	if !ok {
		return types.Parameters{}, fmt.Errorf("未知场景 %q, 可选: %v", name, c.Names())
	}
	return s.Parameters(), nil
}

// LoadFile 按扩展名读取配置
func LoadFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	config, err := LoadString(string(data), ext)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return config, nil
}

// LoadString 读取指定格式的配置
func LoadString(s, format string) (*Config, error) {
	var (
		config *Config
		err    error
	)
	switch format {
	case "toml":
		config, err = decodeTOML(s)
	case "ini", "gcfg", "cfg":
		config, err = decodeINI(s)
	default:
		return nil, fmt.Errorf("不支持的配置格式 %q", format)
	}
	if err != nil {
		return nil, err
	}
	if len(config.Scenarios) == 0 {
		config.Scenarios[DefaultScenario] = DefaultScenarioValues()
	}
	return config, nil
}
