package solenoid

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"solenoid/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateDefaults(t *testing.T) {
	frame, err := NewSolenoid().Simulate()
	require.NoError(t, err)

	assert.Equal(t, 1.0, frame.State.Field)
	assert.InDelta(t, 3.14159e-4, frame.State.Flux, 1e-9)
	assert.Equal(t, 0.0, frame.State.EMF)

	assert.Equal(t, 500, frame.Series.Len())
	assert.Len(t, frame.Geometry.Spiral, 500)
	assert.Len(t, frame.Geometry.FluxLoop, 100)
	assert.Len(t, frame.Geometry.ExternalLines, 12)
	assert.Len(t, frame.Geometry.FieldVectors, 6)
	assert.Equal(t, frame.State.Field, frame.Geometry.FieldVectors[0].Direction.Z)
	assert.Equal(t, "t = 0.00 s | B(t) = 1.000 T", frame.Title())
}

func TestSimulateQuarterPeriod(t *testing.T) {
	sol := NewSolenoid()
	sol.Field.Time = 0.25
	frame, err := sol.Simulate()
	require.NoError(t, err)
	assert.InDelta(t, 0, frame.State.Field, 1e-12)
	assert.InDelta(t, 2*math.Pi*math.Pi*1e-4, frame.State.EMF, 1e-15)
}

func TestSimulateIdempotent(t *testing.T) {
	sol := NewSolenoid()
	sol.Field.Time = 0.61
	sol.Solenoid.Turns = 33
	a, err := sol.Simulate()
	require.NoError(t, err)
	b, err := sol.Simulate()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSimulateRejectsOutOfRange(t *testing.T) {
	p := types.DefaultParameters()
	p.Solenoid.RadiusCm = 7
	_, err := Simulate(p, types.DefaultSamples())
	require.ErrorIs(t, err, types.ErrInvalidParameter)
	assert.Contains(t, err.Error(), types.NameRadius)

	p = types.DefaultParameters()
	_, err = Simulate(p, types.Samples{Series: 1, Spiral: 500, Loop: 100})
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
}

func TestReadParameterFile(t *testing.T) {
	sol := NewSolenoid()
	err := sol.Read(strings.NewReader(`
# 线圈
turns 25
radius_cm 2.0

b0 0.5
`))
	require.NoError(t, err)
	assert.Equal(t, 25, sol.Solenoid.Turns)
	assert.Equal(t, 2.0, sol.Solenoid.RadiusCm)
	assert.Equal(t, types.DefaultHeight, sol.Solenoid.HeightCm)
	assert.Equal(t, 0.5, sol.Field.Amplitude)

	err = sol.Read(strings.NewReader("turns ten\n"))
	assert.ErrorContains(t, err, "turns")
	err = sol.Read(strings.NewReader("turns 1 2\n"))
	assert.ErrorContains(t, err, "第 1 行")
}

func TestExportLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coil.sol")
	sol := NewSolenoid()
	sol.Solenoid.Turns = 64
	sol.Solenoid.HeightCm = 12.5
	sol.Field.Frequency = 3
	require.NoError(t, sol.Export(path))

	loaded := NewSolenoid()
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, sol.Parameters, loaded.Parameters)
}
