// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paintcanvas implements the sparkline [sparkline.Canvas]
// interface on top of [paint.Context], rasterizing the sparkline
// drawing operations onto an image.
package paintcanvas

import (
	"image"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint"
	"cogentcore.org/core/styles"
	"cogentcore.org/sparkline"
)

// Canvas renders sparkline drawing operations onto the image of a
// [paint.Context]. Gradient paints are updated by the paint context
// over the rendered path bounds.
type Canvas struct {

	// Paint is the underlying painting context.
	Paint *paint.Context
}

// New returns a Canvas rasterizing onto a new image of the given size.
func New(width, height int) *Canvas {
	return &Canvas{Paint: paint.NewContext(width, height)}
}

// Image returns the image being rendered to.
func (cv *Canvas) Image() *image.RGBA {
	return cv.Paint.Image
}

func (cv *Canvas) DrawPath(p sparkline.Path, sty *sparkline.PathStyle) {
	pc := cv.Paint
	sc := p.Scan()
	for sc.Next() {
		v := sc.Values()
		switch sc.Cmd() {
		case sparkline.MoveTo:
			pc.MoveTo(v[0], v[1])
		case sparkline.LineTo:
			pc.LineTo(v[0], v[1])
		case sparkline.CubeTo:
			pc.CubicTo(v[0], v[1], v[2], v[3], v[4], v[5])
		case sparkline.Close:
			pc.ClosePath()
		}
	}
	pc.FillStyle.Color = sty.Fill.Color
	pc.StrokeStyle.Color = sty.Stroke.Color
	pc.StrokeStyle.Width.Dot(sty.Stroke.Width)
	pc.StrokeStyle.Width.Dots = sty.Stroke.Width
	pc.StrokeStyle.Cap = sty.Stroke.Cap
	pc.StrokeStyle.Join = sty.Stroke.Join
	pc.FillStrokeClear()
	pc.FillStyle.Color = nil
	pc.StrokeStyle.Color = nil
}

func (cv *Canvas) DrawPoints(points []math32.Vector2, size float32, clr image.Image) {
	pc := cv.Paint
	for _, pt := range points {
		pc.DrawCircle(pt.X, pt.Y, size/2)
	}
	pc.FillStyle.Color = clr
	pc.Fill()
	pc.FillStyle.Color = nil
}

func (cv *Canvas) DrawText(text string, pos math32.Vector2, sty *sparkline.TextStyle) {
	tx, _ := cv.layout(text, sty)
	tx.Render(cv.Paint, pos)
}

func (cv *Canvas) TextSize(text string, sty *sparkline.TextStyle) math32.Vector2 {
	_, sz := cv.layout(text, sty)
	return sz
}

// layout shapes the given label with the default font, returning the
// laid-out text and its size.
func (cv *Canvas) layout(text string, sty *sparkline.TextStyle) (*paint.Text, math32.Vector2) {
	pc := cv.Paint
	fsty := &styles.FontRender{}
	fsty.Defaults()
	fsty.Color = sty.Color
	tsty := &styles.Text{}
	tsty.Defaults()
	tx := &paint.Text{}
	tx.SetHTML(text, fsty, tsty, &pc.UnitContext, nil)
	sz := tx.Layout(tsty, fsty, &pc.UnitContext, math32.Vec2(float32(len(text))*16+8, 40))
	return tx, sz
}
