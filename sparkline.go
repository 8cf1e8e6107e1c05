// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sparkline renders a compact, axis-free line chart of a sequence
// of numeric samples onto an abstract [Canvas], with optional cubic
// smoothing, edge fills, gradient shading, point markers, and grid lines
// with value labels.
package sparkline

import (
	"image"
	"image/color"
	"reflect"
	"slices"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/core/styles"
)

// Sparkline renders a dataset as a sparkline. One render is a pure
// function of (Data, size, Config): all derived state is recomputed in
// full on every [Sparkline.Render] call, and rendering the same inputs
// twice issues an identical operation sequence.
type Sparkline struct {

	// Data is the ordered sequence of finite samples to plot.
	Data []float32

	// Config has the rendering options.
	Config Config

	// Points are the normalized canvas coordinates of each data sample
	// from the last render, index-aligned with Data.
	Points []math32.Vector2

	last renderInputs
}

// renderInputs records the observable inputs of the last render,
// for the repaint-skip equality check in [Sparkline.NeedsRender].
type renderInputs struct {
	data   []float32
	size   math32.Vector2
	config Config
	valid  bool
}

// New returns a Sparkline with default configuration for the given data.
// It returns [ErrNoData] for an empty dataset and [ErrInfinity] if any
// sample is NaN or infinite.
func New(data []float32) (*Sparkline, error) {
	sl := &Sparkline{}
	sl.Config.Defaults()
	if err := sl.SetData(data); err != nil {
		return nil, err
	}
	return sl, nil
}

// SetData validates the given data and sets a copy of it.
func (sl *Sparkline) SetData(data []float32) error {
	if err := CheckFloats(data...); err != nil {
		return err
	}
	sl.Data = slices.Clone(data)
	return nil
}

// NeedsRender reports whether rendering at the given size would produce
// different output from the last [Sparkline.Render] call. It is a pure
// equality check over all observable inputs (data values, size, and
// every configuration field), so a false result proves the previous
// output is still current. Rendering anyway is always correct.
func (sl *Sparkline) NeedsRender(size math32.Vector2) bool {
	li := &sl.last
	return !li.valid || li.size != size || !slices.Equal(li.data, sl.Data) ||
		!reflect.DeepEqual(li.config, sl.Config)
}

// Render issues the drawing operations for the current data and
// configuration onto the given canvas, fit to the given size.
// Grid lines and labels are drawn first, then the fill region, the
// line itself, and finally any point markers, so the line renders on
// top of the decorations. A non-positive size draws nothing and is not
// an error. Rendering performs no I/O and keeps no state beyond the
// normalized Points and the input record for [Sparkline.NeedsRender].
func (sl *Sparkline) Render(cv Canvas, size math32.Vector2) error {
	if err := CheckFloats(sl.Data...); err != nil {
		return err
	}
	if err := sl.Config.Validate(); err != nil {
		return err
	}
	defer func() {
		sl.last = renderInputs{data: slices.Clone(sl.Data), size: size, config: sl.Config, valid: true}
	}()
	if size.X <= 0 || size.Y <= 0 {
		sl.Points = nil
		return nil
	}
	cf := &sl.Config
	rng := sl.resolveRange()

	var labels []gridLabel
	margin := float32(0)
	if cf.Grid.On {
		labels = sl.gridLabels(cv, rng)
		for _, lb := range labels {
			margin = math32.Max(margin, lb.size.X)
		}
	}
	dw := size.X - cf.LineWidth - margin
	dh := size.Y - cf.LineWidth
	if dw <= 0 || dh <= 0 {
		sl.Points = nil
		return nil
	}
	sl.Points = sl.normalize(rng, dw, dh)

	if cf.Grid.On {
		sl.drawGrid(cv, labels, dw, dh)
	}

	box := math32.B2(0, 0, dw, dh)
	if len(sl.Points) > 1 {
		line := sl.linePath(sl.Points)
		if cf.FillMode != FillNone {
			fill := sl.fillPath(line, sl.Points, size)
			cv.DrawPath(fill, &PathStyle{Fill: Fill{Color: sl.fillPaint()}, Box: box})
		}
		cv.DrawPath(line, &PathStyle{Stroke: sl.stroke(), Box: box})
	}
	sl.drawPoints(cv)
	return nil
}

// normalize maps each (index, value) to canvas coordinates within the
// drawable region, offset by half the stroke width so the line does not
// clip at the edges. An empty range maps all samples to the drawable
// mid-height instead of dividing by zero.
func (sl *Sparkline) normalize(rng minmax.F32, dw, dh float32) []math32.Vector2 {
	n := len(sl.Data)
	half := sl.Config.LineWidth / 2
	var wn float32
	if n > 1 {
		wn = dw / float32(n-1)
	}
	hn := rng.Scale() * dh // 0 when the range is empty
	flat := rng.Range() == 0
	pts := make([]math32.Vector2, n)
	for i, v := range sl.Data {
		x := float32(i)*wn + half
		y := dh/2 + half
		if !flat {
			y = dh - (v-rng.Min)*hn + half
		}
		pts[i] = math32.Vec2(x, y)
	}
	return pts
}

// linePath returns the open path visiting all normalized points in
// order: straight segments by default, or cubic bezier segments with
// control points from a sliding-window tangent estimate when smoothing
// is on. The window is clamped at both ends of the sequence, so the
// first point serves as its own preceding neighbor; this shapes the end
// tangents deliberately.
func (sl *Sparkline) linePath(pts []math32.Vector2) Path {
	var p Path
	p.MoveTo(pts[0].X, pts[0].Y)
	if !sl.Config.CubicSmoothing {
		for _, pt := range pts[1:] {
			p.LineTo(pt.X, pt.Y)
		}
		return p
	}
	f := sl.Config.SmoothingFactor
	n := len(pts)
	for i := 1; i < n; i++ {
		a := pts[max(i-2, 0)]
		b := pts[i-1]
		c := pts[i]
		cp1 := b.Add(c.Sub(a).MulScalar(f))
		next := pts[min(i+1, n-1)]
		cp2 := c.Add(b.Sub(next).MulScalar(f))
		p.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, c.X, c.Y)
	}
	return p
}

// fillPath closes a copy of the line path against the bottom (FillBelow)
// or top (FillAbove) edge of the full canvas size. The half-stroke-width
// nudges at both ends keep the fill boundary clear of the line caps.
func (sl *Sparkline) fillPath(line Path, pts []math32.Vector2, size math32.Vector2) Path {
	half := sl.Config.LineWidth / 2
	first := pts[0]
	last := pts[len(pts)-1]
	edge := size.Y
	if sl.Config.FillMode == FillAbove {
		edge = 0
	}
	p := line.Clone()
	p.LineTo(last.X+half, last.Y)
	p.LineTo(last.X+half, edge)
	p.LineTo(first.X-half, edge)
	p.LineTo(first.X-half, first.Y)
	p.Close()
	return p
}

// stroke resolves the stroke paint for the line: the gradient if one is
// configured, the flat line color otherwise. Caps are round; joins are
// round unless sharp corners are requested.
func (sl *Sparkline) stroke() Stroke {
	cf := &sl.Config
	st := Stroke{
		Color: colors.Uniform(cf.LineColor),
		Width: cf.LineWidth,
		Cap:   styles.LineCapRound,
		Join:  styles.LineJoinRound,
	}
	if cf.LineGradient != nil {
		st.Color = cf.LineGradient
	}
	if cf.SharpCorners {
		st.Join = styles.LineJoinMiter
	}
	return st
}

// fillPaint resolves the fill paint, with a configured gradient taking
// precedence over the flat fill color.
func (sl *Sparkline) fillPaint() image.Image {
	cf := &sl.Config
	if cf.FillGradient != nil {
		return cf.FillGradient
	}
	return colors.Uniform(cf.FillColor)
}

// drawPoints draws the round markers called for by the points mode.
// A single-sample dataset always gets one marker, since there is no
// segment to draw. Marker size and color fall back to the line width
// and color when not set.
func (sl *Sparkline) drawPoints(cv Canvas) {
	cf := &sl.Config
	pts := sl.Points
	if len(pts) == 0 {
		return
	}
	var mpts []math32.Vector2
	switch {
	case len(pts) == 1:
		mpts = pts
	case cf.PointsMode == PointsAll:
		mpts = pts
	case cf.PointsMode == PointsLast:
		mpts = pts[len(pts)-1:]
	default:
		return
	}
	size := cf.PointSize
	if size == 0 {
		size = cf.LineWidth
	}
	clr := cf.PointColor
	if clr == (color.RGBA{}) {
		clr = cf.LineColor
	}
	cv.DrawPoints(mpts, size, colors.Uniform(clr))
}
