package load

import (
	"fmt"

	"solenoid/types"
	"solenoid/utils"

	"gopkg.in/gcfg.v1"
)

// iniScenario 数值以字符串读取, 空字符串表示未定义
type iniScenario struct {
	Turns     string `gcfg:"turns"`
	RadiusCm  string `gcfg:"radius-cm"`
	HeightCm  string `gcfg:"height-cm"`
	Amplitude string `gcfg:"b0"`
	Frequency string `gcfg:"frequency"`
	Time      string `gcfg:"time"`
}

type iniConfig struct {
	Output struct {
		Dir    string   `gcfg:"dir"`
		Format []string `gcfg:"format"`
	}
	Samples struct {
		Series        string `gcfg:"series"`
		Spiral        string `gcfg:"spiral"`
		Loop          string `gcfg:"loop"`
		ExternalLines string `gcfg:"external-lines"`
		FieldVectors  string `gcfg:"field-vectors"`
	}
	Scenario map[string]*iniScenario
}

func decodeINI(s string) (*Config, error) {
	var raw iniConfig
	if err := gcfg.ReadStringInto(&raw, s); err != nil {
		return nil, err
	}
	config := NewConfig()
	if raw.Output.Dir != "" {
		config.OutputDir = raw.Output.Dir
	}
	if len(raw.Output.Format) > 0 {
		config.Formats = raw.Output.Format
	}
	samples := utils.Values{
		"series":         raw.Samples.Series,
		"spiral":         raw.Samples.Spiral,
		"loop":           raw.Samples.Loop,
		"external_lines": raw.Samples.ExternalLines,
		"field_vectors":  raw.Samples.FieldVectors,
	}
	for key, dst := range map[string]*int{
		"series":         &config.Samples.Series,
		"spiral":         &config.Samples.Spiral,
		"loop":           &config.Samples.Loop,
		"external_lines": &config.Samples.ExternalLines,
		"field_vectors":  &config.Samples.FieldVectors,
	} {
		v, err := samples.ParseInt(key, *dst)
		if err != nil {
			return nil, fmt.Errorf("[samples] %w", err)
		}
		*dst = v
	}
	for name, sc := range raw.Scenario {
		if sc == nil {
			continue
		}
		values := utils.Values{
			types.NameTurns:     sc.Turns,
			types.NameRadius:    sc.RadiusCm,
			types.NameHeight:    sc.HeightCm,
			types.NameAmplitude: sc.Amplitude,
			types.NameFrequency: sc.Frequency,
			types.NameTime:      sc.Time,
		}
		p, err := values.Parameters(types.DefaultParameters())
		if err != nil {
			return nil, fmt.Errorf("[scenario %q] %w", name, err)
		}
		config.Scenarios[name] = Scenario{
			Turns:     p.Solenoid.Turns,
			RadiusCm:  p.Solenoid.RadiusCm,
			HeightCm:  p.Solenoid.HeightCm,
			Amplitude: p.Field.Amplitude,
			Frequency: p.Field.Frequency,
			Time:      p.Field.Time,
		}
	}
	return config, nil
}
