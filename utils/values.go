package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Values 参数名到原始字符串的映射
type Values map[string]string

// FromQuery 从请求参数构建, 同名参数取第一个
func FromQuery(q url.Values) Values {
	v := make(Values, len(q))
	for key, list := range q {
		if len(list) > 0 {
			v[strings.ToLower(key)] = list[0]
		}
	}
	return v
}

// FromFields 从 "name value" 形式的字段构建
func FromFields(fields []string) (Values, error) {
	if len(fields) != 2 {
		return nil, fmt.Errorf("参数行格式错误: %q", strings.Join(fields, " "))
	}
	return Values{strings.ToLower(fields[0]): fields[1]}, nil
}

// Merge 合并, 后者覆盖前者
func (value Values) Merge(other Values) Values {
	for k, v := range other {
		value[k] = v
	}
	return value
}

// Has 是否存在
func (value Values) Has(key string) bool {
	s, ok := value[key]
	return ok && strings.TrimSpace(s) != ""
}

// String 读取字符串
func (value Values) String(key, defaultValue string) string {
	if value.Has(key) {
		return strings.TrimSpace(value[key])
	}
	return defaultValue
}

// ParseFloat64 解析浮点数, 缺省时返回默认值, 格式错误返回错误
func (value Values) ParseFloat64(key string, defaultValue float64) (float64, error) {
	if !value.Has(key) {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value[key]), 64)
	if err != nil {
		return defaultValue, fmt.Errorf("参数 %s 不是有效数值: %q", key, value[key])
	}
	return v, nil
}

// ParseInt 解析整数, 缺省时返回默认值, 格式错误返回错误
func (value Values) ParseInt(key string, defaultValue int) (int, error) {
	if !value.Has(key) {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(value[key]))
	if err != nil {
		return defaultValue, fmt.Errorf("参数 %s 不是有效整数: %q", key, value[key])
	}
	return v, nil
}

// FormatFloat 浮点数转字符串
func FormatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
