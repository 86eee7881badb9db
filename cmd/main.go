package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"solenoid"
	"solenoid/load"
	"solenoid/render"
	"solenoid/types"
)

type options struct {
	config   string
	scenario string
	turns    int
	radius   float64
	height   float64
	b0       float64
	freq     float64
	time     float64
	samples  int
	format   string
	out      string
	serve    string
	clamp    bool
	verbose  bool
}

func parseFlags() (*options, map[string]bool) {
	d := types.DefaultParameters()
	o := &options{}
	flag.StringVar(&o.config, "config", "", "场景配置文件 (.toml / .ini)")
	flag.StringVar(&o.scenario, "scenario", "", "只运行指定场景")
	flag.IntVar(&o.turns, "turns", d.Solenoid.Turns, "匝数")
	flag.Float64Var(&o.radius, "radius", d.Solenoid.RadiusCm, "半径 (cm)")
	flag.Float64Var(&o.height, "height", d.Solenoid.HeightCm, "高度 (cm)")
	flag.Float64Var(&o.b0, "b0", d.Field.Amplitude, "磁场幅值 B0 (T)")
	flag.Float64Var(&o.freq, "freq", d.Field.Frequency, "频率 (Hz)")
	flag.Float64Var(&o.time, "time", d.Field.Time, "时刻 (s)")
	flag.IntVar(&o.samples, "samples", types.DefaultSeriesSamples, "时间序列采样点数")
	flag.StringVar(&o.format, "format", "", "输出格式, 逗号分隔: "+strings.Join(render.FormatNames(), ","))
	flag.StringVar(&o.out, "out", "", "输出目录")
	flag.StringVar(&o.serve, "serve", "", "HTTP 监听地址, 如 :8080")
	flag.BoolVar(&o.clamp, "clamp", false, "超出范围的参数截断到范围内")
	flag.BoolVar(&o.verbose, "v", false, "调试日志")
	flag.Parse()

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return o, set
}

// override 命令行显式给出的参数覆盖场景值
func (o *options) override(p types.Parameters, set map[string]bool) types.Parameters {
	if set["turns"] {
		p.Solenoid.Turns = o.turns
	}
	if set["radius"] {
		p.Solenoid.RadiusCm = o.radius
	}
	if set["height"] {
		p.Solenoid.HeightCm = o.height
	}
	if set["b0"] {
		p.Field.Amplitude = o.b0
	}
	if set["freq"] {
		p.Field.Frequency = o.freq
	}
	if set["time"] {
		p.Field.Time = o.time
	}
	if o.clamp {
		p = p.Clamp()
	}
	return p
}

func loadConfig(o *options, set map[string]bool) (*load.Config, error) {
	config := load.NewConfig()
	if o.config != "" {
		var err error
		if config, err = load.LoadFile(o.config); err != nil {
			return nil, err
		}
	} else {
		config.Scenarios[load.DefaultScenario] = load.DefaultScenarioValues()
		config.Formats = []string{"text"}
	}
	if set["samples"] {
		config.Samples.Series = o.samples
	}
	if o.format != "" {
		config.Formats = strings.Split(o.format, ",")
	}
	if o.out != "" {
		config.OutputDir = o.out
	}
	return config, nil
}

func main() {
	o, set := parseFlags()
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	config, err := loadConfig(o, set)
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}
	if o.serve != "" {
		err = serve(o.serve, config.Samples, logger)
	} else {
		err = batch(o, set, config, logger)
	}
	if err != nil {
		logger.Error("exit", "error", err)
		os.Exit(1)
	}
}

func batch(o *options, set map[string]bool, config *load.Config, logger *slog.Logger) error {
	names := config.Names()
	if o.scenario != "" {
		names = []string{o.scenario}
	}
	formats := make([]render.Format, 0, len(config.Formats))
	for _, name := range config.Formats {
		f, err := render.Lookup(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		formats = append(formats, f)
	}
	for _, name := range names {
		p, err := config.Scenario(name)
		if err != nil {
			return err
		}
		p = o.override(p, set)
		frame, err := solenoid.Simulate(p, config.Samples)
		if err != nil {
			return fmt.Errorf("场景 %s: %w", name, err)
		}
		logger.Debug("simulated", "scenario", name, "field", frame.State.Field, "flux", frame.State.Flux, "emf", frame.State.EMF)
		for _, f := range formats {
			if err := write(config.OutputDir, name, f, frame, logger); err != nil {
				return fmt.Errorf("场景 %s: %w", name, err)
			}
		}
	}
	return nil
}

func write(dir, scenario string, f render.Format, frame *types.Frame, logger *slog.Logger) error {
	if f.Extension() == "txt" {
		return f.Render(frame, os.Stdout)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, scenario+"."+f.Extension())
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.Render(frame, file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	logger.Info("written", "scenario", scenario, "path", path)
	return nil
}

func serve(addr string, samples types.Samples, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              addr,
		Handler:           render.NewHandler(samples, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errc <- server.ListenAndServe()
	}()
	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdown)
}
