package render

import (
	"fmt"
	"sort"

	"solenoid/types"
)

// FormatField 磁场显示值, 4 位小数
func FormatField(v float64) string { return fmt.Sprintf("%.4f", v) }

// FormatFlux 磁通显示值, 6 位小数
func FormatFlux(v float64) string { return fmt.Sprintf("%.6f", v) }

// FormatEMF 电动势显示值, 6 位小数
func FormatEMF(v float64) string { return fmt.Sprintf("%.6f", v) }

// Format 输出格式
type Format struct {
	types.Renderer
	ContentType string // HTTP 内容类型
}

// Formats 已注册的输出格式
var Formats = map[string]Format{
	"json": {Renderer: &Record{}, ContentType: "application/json"},
	"html": {Renderer: &Charts{}, ContentType: "text/html; charset=utf-8"},
	"png":  {Renderer: NewPlot("png"), ContentType: "image/png"},
	"svg":  {Renderer: NewPlot("svg"), ContentType: "image/svg+xml"},
	"csv":  {Renderer: &CSV{}, ContentType: "text/csv; charset=utf-8"},
	"text": {Renderer: NewConsole(), ContentType: "text/plain; charset=utf-8"},
}

// Lookup 按名称查找输出格式
func Lookup(name string) (Format, error) {
	if f, ok := Formats[name]; ok {
		return f, nil
	}
	return Format{}, fmt.Errorf("未知输出格式 %q, 可选: %v", name, FormatNames())
}

// FormatNames 已注册格式名称
func FormatNames() []string {
	names := make([]string, 0, len(Formats))
	for name := range Formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
