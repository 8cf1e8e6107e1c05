// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparkline

import (
	"image"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles"
)

// Stroke contains the properties for stroking a path.
// Stroking is off if Color is nil.
type Stroke struct {

	// stroke color image specification; stroking is off if nil
	Color image.Image

	// line width in dots
	Width float32

	// how to draw the end cap of lines
	Cap styles.LineCaps

	// how to join line segments
	Join styles.LineJoins
}

// Fill contains the properties for filling a region.
// Filling is off if Color is nil.
type Fill struct {

	// fill color image specification; filling is off if nil
	Color image.Image
}

// PathStyle bundles the stroke and fill parameters for one DrawPath call.
type PathStyle struct {
	Stroke Stroke
	Fill   Fill

	// Box is the rectangle over which any gradient Color is evaluated.
	Box math32.Box2
}

// TextStyle contains the styling parameters for rendering a label.
type TextStyle struct {

	// text color image specification
	Color image.Image
}

// Canvas is the abstract drawing surface that a [Sparkline] renders to.
// Implementations translate these operations into a concrete backend:
// see [cogentcore.org/sparkline/paintcanvas] for rasterizing onto an
// image, and [cogentcore.org/sparkline/render] for recording the
// operation sequence.
type Canvas interface {

	// DrawPath strokes and/or fills the given path, according to
	// which of the style's Stroke and Fill colors are non-nil.
	DrawPath(p Path, sty *PathStyle)

	// DrawPoints draws round markers of the given diameter
	// centered on each of the given points.
	DrawPoints(points []math32.Vector2, size float32, clr image.Image)

	// DrawText renders the given label with its top-left corner at pos.
	DrawText(text string, pos math32.Vector2, sty *TextStyle)

	// TextSize returns the laid-out size of the given label.
	TextSize(text string, sty *TextStyle) math32.Vector2
}
