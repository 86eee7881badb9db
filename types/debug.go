package types

import "io"

// Renderer 渲染接口, 接收一帧计算结果并输出
type Renderer interface {
	Render(frame *Frame, w io.Writer) error // 格式化输出
	Extension() string                      // 文件扩展名
}
