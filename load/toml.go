package load

import (
	"github.com/BurntSushi/toml"
)

type tomlSamples struct {
	Series        int `toml:"series"`
	Spiral        int `toml:"spiral"`
	Loop          int `toml:"loop"`
	ExternalLines int `toml:"external_lines"`
	FieldVectors  int `toml:"field_vectors"`
}

type tomlConfig struct {
	OutputDir string              `toml:"output_dir"`
	Formats   []string            `toml:"formats"`
	Samples   tomlSamples         `toml:"samples"`
	Scenarios map[string]Scenario `toml:"scenarios"`
}

func decodeTOML(s string) (*Config, error) {
	var raw tomlConfig
	meta, err := toml.Decode(s, &raw)
	if err != nil {
		return nil, err
	}
	config := NewConfig()
	if meta.IsDefined("output_dir") {
		config.OutputDir = raw.OutputDir
	}
	if meta.IsDefined("formats") {
		config.Formats = raw.Formats
	}
	samples := []struct {
		key string
		dst *int
		src int
	}{
		{"series", &config.Samples.Series, raw.Samples.Series},
		{"spiral", &config.Samples.Spiral, raw.Samples.Spiral},
		{"loop", &config.Samples.Loop, raw.Samples.Loop},
		{"external_lines", &config.Samples.ExternalLines, raw.Samples.ExternalLines},
		{"field_vectors", &config.Samples.FieldVectors, raw.Samples.FieldVectors},
	}
	for _, v := range samples {
		if meta.IsDefined("samples", v.key) {
			*v.dst = v.src
		}
	}
	for name, scenario := range raw.Scenarios {
		config.Scenarios[name] = withDefaults(scenario, func(key string) bool {
			return meta.IsDefined("scenarios", name, key)
		})
	}
	return config, nil
}

// withDefaults 未定义的字段取默认值
func withDefaults(s Scenario, defined func(key string) bool) Scenario {
	d := DefaultScenarioValues()
	if !defined("turns") {
		s.Turns = d.Turns
	}
	if !defined("radius_cm") {
		s.RadiusCm = d.RadiusCm
	}
	if !defined("height_cm") {
		s.HeightCm = d.HeightCm
	}
	if !defined("b0") {
		s.Amplitude = d.Amplitude
	}
	if !defined("frequency") {
		s.Frequency = d.Frequency
	}
	if !defined("time") {
		s.Time = d.Time
	}
	return s
}
