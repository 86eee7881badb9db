package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"solenoid"
	"solenoid/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frameAt(t *testing.T, time float64) *types.Frame {
	t.Helper()
	p := types.DefaultParameters()
	p.Field.Time = time
	frame, err := solenoid.Simulate(p, types.DefaultSamples())
	require.NoError(t, err)
	return frame
}

func TestDisplayPrecision(t *testing.T) {
	assert.Equal(t, "1.0000", FormatField(1))
	assert.Equal(t, "0.000314", FormatFlux(math.Pi*1e-4))
	assert.Equal(t, "0.001974", FormatEMF(2*math.Pi*math.Pi*1e-4))
	assert.Equal(t, "-0.5000", FormatField(-0.5))
}

func TestRecordJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Record{}).Render(frameAt(t, 0.25), &buf))

	var rec Record
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "t = 0.25 s | B(t) = 0.000 T", rec.Title)
	assert.Equal(t, "0.0000", rec.Display.Field)
	assert.Equal(t, "0.000000", rec.Display.Flux)
	assert.Equal(t, "0.001974", rec.Display.EMF)
	assert.Len(t, rec.Scene.Spiral, 500)
	assert.Len(t, rec.Scene.FluxLoop, 100)
	assert.Len(t, rec.Scene.ExternalLines, 12)
	assert.Len(t, rec.Scene.FieldVectors, 6)
	assert.Len(t, rec.Flux.X, 500)
	assert.Len(t, rec.EMF.Y, 500)
	assert.Equal(t, rec.Scene.Spiral[0], [3]float64{1, 0, 0})
}

func TestChartsPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&Charts{}).Render(frameAt(t, 0), &buf))
	html := buf.String()
	for _, want := range []string{"<html", "Solenoid", "Flux loop", "External flux", "Field B", "closed form"} {
		assert.Contains(t, html, want)
	}
}

func TestChartsSceneSeries(t *testing.T) {
	scene := (&Charts{}).Scene(frameAt(t, 0))
	// 螺线 + 回路 + 12 条外部磁力线 + 6 个矢量
	assert.Len(t, scene.MultiSeries, 2+12+6)
}

func TestPlotImages(t *testing.T) {
	frame := frameAt(t, 0)

	var png bytes.Buffer
	require.NoError(t, NewPlot("png").Render(frame, &png))
	assert.True(t, bytes.HasPrefix(png.Bytes(), []byte("\x89PNG")))

	var svg bytes.Buffer
	require.NoError(t, NewPlot("svg").Render(frame, &svg))
	assert.Contains(t, svg.String(), "<svg")

	assert.Error(t, NewPlot("bmp").Render(frame, io.Discard))
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&CSV{}).Render(frameAt(t, 0), &buf))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 501)
	assert.Equal(t, CSVColumns, rows[0])
	assert.Equal(t, "0", rows[1][0])
	assert.Equal(t, "1", rows[500][0])
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewConsole().Render(frameAt(t, 0), &buf))
	out := buf.String()
	assert.Contains(t, out, "t = 0.00 s | B(t) = 1.000 T")
	assert.Contains(t, out, "1.0000 T")
	assert.Contains(t, out, "0.000314 Wb")
	assert.Contains(t, out, "0.000000 V")
}

func TestLookup(t *testing.T) {
	for _, name := range FormatNames() {
		f, err := Lookup(name)
		require.NoError(t, err)
		assert.NotEmpty(t, f.ContentType)
		assert.NotEmpty(t, f.Extension())
	}
	_, err := Lookup("xml")
	assert.ErrorContains(t, err, "xml")
}

func newTestHandler() *Handler {
	return NewHandler(types.DefaultSamples(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandlerDefaultPage(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
	assert.Contains(t, rec.Body.String(), "Solenoid")
}

func TestHandlerJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?format=json&turns=20&radius_cm=2&time=0.5", nil)
	newTestHandler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 20, body.Parameters.Solenoid.Turns)
	assert.Equal(t, 2.0, body.Parameters.Solenoid.RadiusCm)
	assert.Equal(t, "-1.0000", body.Display.Field)
}

func TestHandlerRejects(t *testing.T) {
	cases := map[string]string{
		"/?radius_cm=9":   "radius_cm",
		"/?time=-1":       "time",
		"/?turns=abc":     "turns",
		"/?format=xml":    "xml",
		"/?frequency=0.0": "frequency",
	}
	for target, want := range cases {
		rec := httptest.NewRecorder()
		newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Contains(t, rec.Body.String(), want, target)
	}
}
