// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render records the sequence of abstract drawing operations
// that a sparkline render produces, as a list of [Item]s. The recorded
// form can be inspected, compared, or replayed onto another canvas.
package render

import (
	"image"

	"cogentcore.org/core/math32"
	"cogentcore.org/sparkline"
)

// Render represents a recorded sequence of render [Item]s.
type Render []Item

// Item is a union interface for render items: [Path], [Points], or [Text].
type Item interface {
	IsRenderItem()
}

// Add adds item(s) to the render.
func (r *Render) Add(item ...Item) Render {
	*r = append(*r, item...)
	return *r
}

// Reset resets back to an empty Render state.
// It preserves the existing slice memory for re-use.
func (r *Render) Reset() Render {
	*r = (*r)[:0]
	return *r
}

// Path is a path drawing render [Item]: a stroked and/or filled path.
type Path struct {
	Path  sparkline.Path
	Style sparkline.PathStyle
}

// interface assertion.
func (p *Path) IsRenderItem() {}

// Points is a point-marker render [Item]: round markers of the given
// diameter at each point.
type Points struct {
	Points []math32.Vector2
	Size   float32
	Color  image.Image
}

// interface assertion.
func (p *Points) IsRenderItem() {}

// Text is a label render [Item], positioned by its top-left corner.
type Text struct {
	Text  string
	Pos   math32.Vector2
	Style sparkline.TextStyle
}

// interface assertion.
func (t *Text) IsRenderItem() {}

// Canvas implements [sparkline.Canvas] by recording each drawing
// operation into its Render list.
type Canvas struct {

	// Render is the list of recorded operations, in issue order.
	Render Render

	// LabelSize, if set, supplies the text measurement for TextSize.
	// By default labels measure at a nominal fixed-metric estimate,
	// 12 dots per character by 16 dots high.
	LabelSize func(text string) math32.Vector2
}

// NewCanvas returns a new empty recording [Canvas].
func NewCanvas() *Canvas {
	return &Canvas{}
}

func (cv *Canvas) DrawPath(p sparkline.Path, sty *sparkline.PathStyle) {
	cv.Render.Add(&Path{Path: p.Clone(), Style: *sty})
}

func (cv *Canvas) DrawPoints(points []math32.Vector2, size float32, clr image.Image) {
	pts := make([]math32.Vector2, len(points))
	copy(pts, points)
	cv.Render.Add(&Points{Points: pts, Size: size, Color: clr})
}

func (cv *Canvas) DrawText(text string, pos math32.Vector2, sty *sparkline.TextStyle) {
	cv.Render.Add(&Text{Text: text, Pos: pos, Style: *sty})
}

func (cv *Canvas) TextSize(text string, sty *sparkline.TextStyle) math32.Vector2 {
	if cv.LabelSize != nil {
		return cv.LabelSize(text)
	}
	return math32.Vec2(float32(len(text))*12, 16)
}
