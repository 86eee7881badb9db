package geometry

import (
	"math"
	"testing"

	"solenoid/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCoilSpiral(t *testing.T) {
	points, err := CoilSpiral(1.0, 5.0, 10, 500)
	require.NoError(t, err)
	require.Len(t, points, 500)

	first, last := points[0], points[len(points)-1]
	assert.Equal(t, r3.Vec{X: 1, Y: 0, Z: 0}, first)
	assert.Equal(t, 5.0, last.Z)
	// 终止角度为 2π·10, 回到 x 轴
	assert.InDelta(t, 1.0, last.X, 1e-9)
	assert.InDelta(t, 0.0, last.Y, 1e-9)

	for i, p := range points {
		assert.InDelta(t, 1.0, math.Hypot(p.X, p.Y), 1e-12)
		if i > 0 {
			assert.Greater(t, p.Z, points[i-1].Z)
		}
	}
}

func TestCoilSpiralIdempotent(t *testing.T) {
	a, err := CoilSpiral(2.5, 12, 37, 500)
	require.NoError(t, err)
	b, err := CoilSpiral(2.5, 12, 37, 500)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFluxLoopClosed(t *testing.T) {
	points, err := FluxLoop(3.0, 8.0, 100)
	require.NoError(t, err)
	require.Len(t, points, 100)
	assert.InDelta(t, 0, r3.Norm(r3.Sub(points[0], points[99])), 1e-12)
	for _, p := range points {
		assert.Equal(t, 4.0, p.Z)
		assert.InDelta(t, 3.0, math.Hypot(p.X, p.Y), 1e-12)
	}
}

func TestExternalFluxLines(t *testing.T) {
	lines, err := ExternalFluxLines(2.0, 5.0, 12)
	require.NoError(t, err)
	require.Len(t, lines, 12)
	for i, line := range lines {
		require.Len(t, line, types.ExternalLinePoints)
		angle := 2 * math.Pi * float64(i) / 12
		assert.InDelta(t, 2*math.Cos(angle), line[0].X, 1e-12)
		assert.InDelta(t, 2*math.Sin(angle), line[0].Y, 1e-12)
		// 竖直线段, 半高 ±1 cm
		assert.InDelta(t, 1.5, line[0].Z, 1e-12)
		assert.InDelta(t, 3.5, line[len(line)-1].Z, 1e-12)
		for _, p := range line {
			assert.Equal(t, line[0].X, p.X)
			assert.Equal(t, line[0].Y, p.Y)
		}
	}
	// 不包含 2π 终点
	assert.NotEqual(t, lines[0][0].Y, lines[11][0].Y)

	none, err := ExternalFluxLines(2.0, 5.0, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestExternalFluxLinesFixedOffset(t *testing.T) {
	lines, err := ExternalFluxLines(1.0, 20.0, 3)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, lines[0][0].Z, 1e-12)
	assert.InDelta(t, 11.0, lines[0][9].Z, 1e-12)
}

func TestFieldVectorSamples(t *testing.T) {
	vectors, err := FieldVectorSamples(5.0, -0.4, 6)
	require.NoError(t, err)
	require.Len(t, vectors, 6)
	assert.InDelta(t, 1.7, vectors[0].Position.Z, 1e-12)
	assert.InDelta(t, 3.3, vectors[5].Position.Z, 1e-12)
	for _, v := range vectors {
		assert.Zero(t, v.Position.X)
		assert.Zero(t, v.Position.Y)
		assert.Equal(t, r3.Vec{Z: -0.4}, v.Direction)
	}
}

func TestGeneratorsReject(t *testing.T) {
	_, err := CoilSpiral(0, 5, 10, 500)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
	_, err = CoilSpiral(1, -5, 10, 500)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
	_, err = CoilSpiral(1, 5, 0, 500)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
	_, err = FluxLoop(-1, 5, 100)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
	_, err = ExternalFluxLines(1, 5, -1)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
	_, err = FieldVectorSamples(0, 1, 6)
	assert.ErrorIs(t, err, types.ErrInvalidParameter)
}

func TestBuild(t *testing.T) {
	p := types.DefaultParameters().Solenoid
	g, err := Build(p, 0.5, types.DefaultSamples())
	require.NoError(t, err)
	assert.Len(t, g.Spiral, 500)
	assert.Len(t, g.FluxLoop, 100)
	assert.Len(t, g.ExternalLines, 12)
	assert.Len(t, g.FieldVectors, 6)
	assert.Equal(t, 0.5, g.FieldVectors[0].Direction.Z)
}
