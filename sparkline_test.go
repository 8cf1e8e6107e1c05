// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparkline

import (
	"image"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

// opCanvas is a minimal recording canvas for in-package tests.
type opCanvas struct {
	paths   []Path
	pstys   []PathStyle
	points  [][]math32.Vector2
	ptSizes []float32
	texts   []string
	textPos []math32.Vector2
}

func (cv *opCanvas) DrawPath(p Path, sty *PathStyle) {
	cv.paths = append(cv.paths, p.Clone())
	cv.pstys = append(cv.pstys, *sty)
}

func (cv *opCanvas) DrawPoints(points []math32.Vector2, size float32, clr image.Image) {
	pts := make([]math32.Vector2, len(points))
	copy(pts, points)
	cv.points = append(cv.points, pts)
	cv.ptSizes = append(cv.ptSizes, size)
}

func (cv *opCanvas) DrawText(text string, pos math32.Vector2, sty *TextStyle) {
	cv.texts = append(cv.texts, text)
	cv.textPos = append(cv.textPos, pos)
}

func (cv *opCanvas) TextSize(text string, sty *TextStyle) math32.Vector2 {
	return math32.Vec2(float32(len(text))*12, 16)
}

var testData = []float32{0, 1, 1.5, 2, 0, 0, -0.5, -1, -0.5, 0, 0}

func TestNormalize(t *testing.T) {
	sl, err := New(testData)
	assert.NoError(t, err)
	cv := &opCanvas{}
	assert.NoError(t, sl.Render(cv, math32.Vec2(300, 100)))

	assert.Equal(t, len(testData), len(sl.Points))

	rng := sl.resolveRange()
	assert.Equal(t, float32(-1), rng.Min)
	assert.Equal(t, float32(2), rng.Max)

	// drawable region is 298x98 after the stroke width margin
	first := sl.Points[0]
	assert.InDelta(t, 1.0, first.X, 1.0e-4)
	assert.InDelta(t, 66.333, first.Y, 1.0e-3)
	last := sl.Points[len(sl.Points)-1]
	assert.InDelta(t, 299.0, last.X, 1.0e-4)
	assert.InDelta(t, 66.333, last.Y, 1.0e-3)

	// x monotonic, y within the drawable region plus stroke margin
	for i, pt := range sl.Points {
		if i > 0 {
			assert.GreaterOrEqual(t, pt.X, sl.Points[i-1].X)
		}
		assert.GreaterOrEqual(t, pt.Y, float32(0))
		assert.LessOrEqual(t, pt.Y, float32(100))
	}

	// default config: one stroked path, no fill, no points, no grid
	assert.Equal(t, 1, len(cv.paths))
	assert.Nil(t, cv.pstys[0].Fill.Color)
	assert.NotNil(t, cv.pstys[0].Stroke.Color)
	assert.Equal(t, 0, len(cv.points))
	assert.Equal(t, 0, len(cv.texts))
}

func TestLinePath(t *testing.T) {
	sl, err := New(testData)
	assert.NoError(t, err)
	cv := &opCanvas{}
	assert.NoError(t, sl.Render(cv, math32.Vec2(300, 100)))

	p := cv.paths[0]
	assert.Equal(t, MoveTo, p[0])
	sc := p.Scan()
	n := 0
	for sc.Next() {
		if n > 0 {
			assert.Equal(t, LineTo, sc.Cmd())
		}
		assert.Equal(t, sl.Points[n], sc.End())
		n++
	}
	assert.Equal(t, len(testData), n)
}

func TestCubicSmoothing(t *testing.T) {
	sl, err := New([]float32{0, 1, 0})
	assert.NoError(t, err)
	sl.Config.CubicSmoothing = true
	sl.Config.SmoothingFactor = 0.25
	cv := &opCanvas{}
	assert.NoError(t, sl.Render(cv, math32.Vec2(102, 102)))

	// drawable region 100x100: points (1,101), (51,1), (101,101)
	want := Path{
		MoveTo, 1, 101,
		CubeTo, 13.5, 76, 26, 1, 51, 1,
		CubeTo, 76, 1, 88.5, 76, 101, 101,
	}
	assert.Equal(t, want, cv.paths[0])
}

func TestFillPath(t *testing.T) {
	tests := []struct {
		mode FillModes
		edge float32
	}{
		{FillBelow, 100},
		{FillAbove, 0},
	}
	for _, test := range tests {
		sl, err := New(testData)
		assert.NoError(t, err)
		sl.Config.FillMode = test.mode
		cv := &opCanvas{}
		assert.NoError(t, sl.Render(cv, math32.Vec2(300, 100)))

		// fill path first, then the stroked line
		assert.Equal(t, 2, len(cv.paths))
		assert.NotNil(t, cv.pstys[0].Fill.Color)
		assert.Nil(t, cv.pstys[0].Stroke.Color)

		fill := cv.paths[0]
		assert.Equal(t, Close, fill[len(fill)-1])
		var ends []math32.Vector2
		sc := fill.Scan()
		for sc.Next() {
			if sc.Cmd() != Close {
				ends = append(ends, sc.End())
			}
		}
		nv := len(ends)
		// closes through the canvas corners on the fill edge and back up
		// to the start point, nudged by half the stroke width
		assert.InDelta(t, 300, ends[nv-4].X, 1.0e-3)
		assert.InDelta(t, 300, ends[nv-3].X, 1.0e-3)
		assert.Equal(t, test.edge, ends[nv-3].Y)
		assert.Equal(t, math32.Vec2(0, test.edge), ends[nv-2])
		assert.Equal(t, math32.Vec2(0, ends[0].Y), ends[nv-1])
	}
}

func TestFlatRange(t *testing.T) {
	sl, err := New([]float32{5, 5, 5, 5})
	assert.NoError(t, err)
	cv := &opCanvas{}
	assert.NoError(t, sl.Render(cv, math32.Vec2(200, 100)))

	// max == min: flat line at drawable mid-height, no NaN or Inf
	for _, pt := range sl.Points {
		assert.Equal(t, float32(50), pt.Y)
		assert.False(t, math32.IsNaN(pt.X) || math32.IsNaN(pt.Y))
	}
}

func TestFixedRangeFlat(t *testing.T) {
	sl, err := New([]float32{1, 2, 3})
	assert.NoError(t, err)
	sl.Config.Range.FixMin = true
	sl.Config.Range.FixMax = true
	sl.Config.Range.Min = 2
	sl.Config.Range.Max = 2
	cv := &opCanvas{}
	assert.NoError(t, sl.Render(cv, math32.Vec2(200, 100)))
	for _, pt := range sl.Points {
		assert.Equal(t, float32(50), pt.Y)
	}
}

func TestSinglePoint(t *testing.T) {
	sl, err := New([]float32{3})
	assert.NoError(t, err)
	cv := &opCanvas{}
	assert.NoError(t, sl.Render(cv, math32.Vec2(100, 50)))

	// no segment to draw: exactly one marker, no paths
	assert.Equal(t, 0, len(cv.paths))
	assert.Equal(t, 1, len(cv.points))
	assert.Equal(t, 1, len(cv.points[0]))
	assert.Equal(t, math32.Vec2(1, 25), cv.points[0][0])
}

func TestPointsModes(t *testing.T) {
	tests := []struct {
		mode  PointsModes
		count int
	}{
		{PointsNone, 0},
		{PointsAll, len(testData)},
		{PointsLast, 1},
	}
	for _, test := range tests {
		sl, err := New(testData)
		assert.NoError(t, err)
		sl.Config.PointsMode = test.mode
		cv := &opCanvas{}
		assert.NoError(t, sl.Render(cv, math32.Vec2(300, 100)))
		if test.count == 0 {
			assert.Equal(t, 0, len(cv.points))
			continue
		}
		assert.Equal(t, 1, len(cv.points))
		assert.Equal(t, test.count, len(cv.points[0]))
		assert.Equal(t, float32(4), cv.ptSizes[0])
	}
}

func TestPointsInherit(t *testing.T) {
	sl, err := New(testData)
	assert.NoError(t, err)
	sl.Config.PointsMode = PointsLast
	sl.Config.PointSize = 0
	cv := &opCanvas{}
	assert.NoError(t, sl.Render(cv, math32.Vec2(300, 100)))
	assert.Equal(t, sl.Config.LineWidth, cv.ptSizes[0])
}

func TestInvalidData(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = New([]float32{1, math32.NaN(), 3})
	assert.ErrorIs(t, err, ErrInfinity)

	_, err = New([]float32{1, math32.Inf(1)})
	assert.ErrorIs(t, err, ErrInfinity)
}

func TestEmptySize(t *testing.T) {
	sl, err := New(testData)
	assert.NoError(t, err)
	cv := &opCanvas{}
	assert.NoError(t, sl.Render(cv, math32.Vec2(0, 100)))
	assert.NoError(t, sl.Render(cv, math32.Vec2(100, -1)))
	assert.Equal(t, 0, len(cv.paths))
	assert.Equal(t, 0, len(cv.points))
}

func TestNeedsRender(t *testing.T) {
	sl, err := New(testData)
	assert.NoError(t, err)
	sz := math32.Vec2(300, 100)
	assert.True(t, sl.NeedsRender(sz))

	cv := &opCanvas{}
	assert.NoError(t, sl.Render(cv, sz))
	assert.False(t, sl.NeedsRender(sz))
	assert.True(t, sl.NeedsRender(math32.Vec2(200, 100)))

	sl.Config.FillMode = FillBelow
	assert.True(t, sl.NeedsRender(sz))
	assert.NoError(t, sl.Render(cv, sz))
	assert.False(t, sl.NeedsRender(sz))

	sl.Data[0] = 7
	assert.True(t, sl.NeedsRender(sz))
}

func TestRenderSize(t *testing.T) {
	cf := &Config{}
	cf.Defaults()
	inf := math32.Inf(1)
	assert.Equal(t, math32.Vec2(300, 100), cf.RenderSize(math32.Vec2(inf, inf)))
	assert.Equal(t, math32.Vec2(200, 100), cf.RenderSize(math32.Vec2(200, inf)))
	assert.Equal(t, math32.Vec2(40, 20), cf.RenderSize(math32.Vec2(40, 20)))
}
