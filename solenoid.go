package solenoid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"solenoid/geometry"
	"solenoid/physics"
	"solenoid/types"
	"solenoid/utils"
)

// Solenoid 螺线管电磁感应模拟器
type Solenoid struct {
	types.Parameters
	Samples types.Samples
}

// NewSolenoid 使用默认参数初始化
func NewSolenoid() *Solenoid {
	return &Solenoid{Parameters: types.DefaultParameters(), Samples: types.DefaultSamples()}
}

// Load 加载 "名称 数值" 格式的参数文件, 未出现的参数保持当前值
func (sol *Solenoid) Load(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return sol.Read(file)
}

// Read 从流中读取参数
func (sol *Solenoid) Read(r io.Reader) error {
	values := utils.Values{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		v, err := utils.FromFields(strings.Fields(text))
		if err != nil {
			return fmt.Errorf("第 %d 行: %w", line, err)
		}
		values.Merge(v)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	p, err := values.Parameters(sol.Parameters)
	if err != nil {
		return err
	}
	sol.Parameters = p
	return nil
}

// Export 导出参数文件
func (sol *Solenoid) Export(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	writer := bufio.NewWriter(file)
	values := utils.FromParameters(sol.Parameters)
	for _, name := range utils.ParameterNames {
		fmt.Fprintf(writer, "%s %s\n", name, values[name])
	}
	return writer.Flush()
}

// Simulate 按当前参数计算一帧
func (sol *Solenoid) Simulate() (*types.Frame, error) {
	return Simulate(sol.Parameters, sol.Samples)
}

// Simulate 校验参数范围后依次计算瞬时量、时间序列与几何数据
func Simulate(p types.Parameters, s types.Samples) (*types.Frame, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	state, err := physics.Instantaneous(p.Solenoid, p.Field)
	if err != nil {
		return nil, err
	}
	series, err := physics.TimeSeries(p.Solenoid, p.Field, s.Series)
	if err != nil {
		return nil, fmt.Errorf("时间序列: %w", err)
	}
	geo, err := geometry.Build(p.Solenoid, state.Field, s)
	if err != nil {
		return nil, fmt.Errorf("几何生成: %w", err)
	}
	return &types.Frame{
		Parameters: p,
		Samples:    s,
		State:      state,
		Series:     series,
		Geometry:   geo,
	}, nil
}
