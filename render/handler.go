package render

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"solenoid"
	"solenoid/types"
	"solenoid/utils"
)

// Handler 交互页面, 查询参数即六个输入量, format 选择输出格式
// 每次请求都按参数完整重新计算.
type Handler struct {
	Samples types.Samples
	Logger  *slog.Logger
}

// NewHandler 创建处理器
func NewHandler(samples types.Samples, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{Samples: samples, Logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	values := utils.FromQuery(r.URL.Query())
	name := values.String("format", "html")
	format, err := Lookup(name)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err)
		return
	}
	params, err := values.Parameters(types.DefaultParameters())
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err)
		return
	}
	frame, err := solenoid.Simulate(params, h.Samples)
	if errors.Is(err, types.ErrInvalidParameter) {
		h.fail(w, r, http.StatusBadRequest, err)
		return
	} else if err != nil {
		h.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	var buf bytes.Buffer
	if err := format.Render(frame, &buf); err != nil {
		h.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", format.ContentType)
	if _, err := buf.WriteTo(w); err != nil {
		h.Logger.Error("write response", "error", err)
		return
	}
	h.Logger.Info("rendered",
		"format", name,
		"turns", params.Solenoid.Turns,
		"radius_cm", params.Solenoid.RadiusCm,
		"height_cm", params.Solenoid.HeightCm,
		"b0", params.Field.Amplitude,
		"frequency", params.Field.Frequency,
		"time", params.Field.Time,
		"duration", time.Since(start),
	)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, code int, err error) {
	h.Logger.Warn("request rejected", "query", r.URL.RawQuery, "status", code, "error", err)
	http.Error(w, err.Error(), code)
}
