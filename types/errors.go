package types

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter 参数不满足约束
var ErrInvalidParameter = errors.New("invalid parameter")

// ParameterError 指明违反约束的参数
type ParameterError struct {
	Name   string  // 参数名称
	Value  float64 // 实际值
	Reason string  // 约束说明
}

// NewParameterError 创建参数错误
func NewParameterError(name string, value float64, reason string, args ...any) *ParameterError {
	return &ParameterError{Name: name, Value: value, Reason: fmt.Sprintf(reason, args...)}
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s = %v: %s", ErrInvalidParameter, e.Name, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

// RequirePositive 要求严格为正
func RequirePositive(name string, v float64) error {
	if !(v > 0) {
		return NewParameterError(name, v, "must be > 0")
	}
	return nil
}

// RequireNonNegative 要求不为负
func RequireNonNegative(name string, v float64) error {
	if !(v >= 0) {
		return NewParameterError(name, v, "must be >= 0")
	}
	return nil
}

// RequireAtLeast 要求计数不小于下限
func RequireAtLeast(name string, n, least int) error {
	if n < least {
		return NewParameterError(name, float64(n), "must be >= %d", least)
	}
	return nil
}
