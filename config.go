// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparkline

import (
	"image/color"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/colors/gradient"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

// FillModes are the policies for shading the region between
// the sparkline and a canvas edge.
type FillModes int32

const (
	// FillNone does not fill.
	FillNone FillModes = iota

	// FillBelow fills the region between the line and the bottom edge.
	FillBelow

	// FillAbove fills the region between the line and the top edge.
	FillAbove
)

func (fm FillModes) String() string {
	switch fm {
	case FillBelow:
		return "below"
	case FillAbove:
		return "above"
	}
	return "none"
}

// PointsModes are the policies for which data samples get
// an explicit round marker.
type PointsModes int32

const (
	// PointsNone draws no markers.
	PointsNone PointsModes = iota

	// PointsAll draws a marker at every data point.
	PointsAll

	// PointsLast draws a marker at the last data point only.
	PointsLast
)

func (pm PointsModes) String() string {
	switch pm {
	case PointsAll:
		return "all"
	case PointsLast:
		return "last"
	}
	return "none"
}

// Default colors.
var (
	// DefaultLineColor is the default sparkline stroke color.
	DefaultLineColor = color.RGBA{R: 0x03, G: 0xA9, B: 0xF4, A: 0xFF}

	// DefaultPointColor is the default point marker color.
	DefaultPointColor = color.RGBA{R: 0x02, G: 0x77, B: 0xBD, A: 0xFF}

	// DefaultGridColor is the default grid line and label color.
	DefaultGridColor = color.RGBA{R: 0x9E, G: 0x9E, B: 0x9E, A: 0xFF}
)

// GridStyle has the styling parameters for grid lines and their labels.
type GridStyle struct {

	// On enables drawing of grid lines and labels.
	On bool

	// Color is the grid line color.
	Color color.RGBA

	// Amount is the number of evenly spaced grid lines, and must be >= 2.
	Amount int

	// Width is the grid line stroke width in dots.
	Width float32

	// LabelColor is the color of the value labels.
	LabelColor color.RGBA

	// LabelPrefix is prepended verbatim to each label
	// (e.g., a currency symbol).
	LabelPrefix string
}

// Defaults sets default grid styling values.
func (gs *GridStyle) Defaults() {
	gs.Color = DefaultGridColor
	gs.Amount = 5
	gs.Width = 0.5
	gs.LabelColor = DefaultGridColor
}

// Config has the rendering options for a [Sparkline].
// It is supplied once per render and never mutated mid-render.
// The zero value of the optional point styling fields means
// "inherit from the line".
type Config struct {

	// LineWidth is the sparkline stroke width in dots.
	LineWidth float32

	// LineColor is the sparkline stroke color.
	LineColor color.RGBA

	// LineGradient, if non-nil, takes precedence over LineColor,
	// evaluated over the drawable rectangle.
	LineGradient gradient.Gradient

	// SharpCorners uses mitered joins at line segment joints
	// instead of the default round joins.
	SharpCorners bool

	// CubicSmoothing draws the line as a smoothed cubic bezier curve
	// through the data points instead of straight segments.
	CubicSmoothing bool

	// SmoothingFactor controls how far the cubic control points are
	// pulled from the connecting line; the useful range is 0.1 to 0.3.
	SmoothingFactor float32

	// FillMode is the policy for shading between the line and a canvas edge.
	FillMode FillModes

	// FillColor is the fill shading color.
	FillColor color.RGBA

	// FillGradient, if non-nil, takes precedence over FillColor,
	// evaluated over the drawable rectangle.
	FillGradient gradient.Gradient

	// PointsMode is the policy for which data points get markers.
	PointsMode PointsModes

	// PointSize is the marker diameter in dots; 0 means use LineWidth.
	PointSize float32

	// PointColor is the marker color; the zero value means use LineColor.
	PointColor color.RGBA

	// Grid has the grid line and label parameters.
	Grid GridStyle

	// Range sets explicit Min and/or Max data bounds via its
	// FixMin and FixMax flags; otherwise bounds come from the data.
	Range minmax.Range32

	// FallbackSize is the render size used by hosts when the
	// available space is unconstrained.
	FallbackSize math32.Vector2
}

// Defaults sets default configuration values.
func (cf *Config) Defaults() {
	cf.LineWidth = 2
	cf.LineColor = DefaultLineColor
	cf.SmoothingFactor = 0.15
	cf.PointSize = 4
	cf.PointColor = DefaultPointColor
	cf.Grid.Defaults()
	cf.FallbackSize = math32.Vec2(300, 100)
}

// Validate checks the configuration, returning an error for settings
// that cannot be rendered.
func (cf *Config) Validate() error {
	if cf.LineWidth < 0 {
		return errors.New("sparkline: negative line width")
	}
	if cf.Grid.On && cf.Grid.Amount < 2 {
		return errors.New("sparkline: grid line amount must be at least 2")
	}
	return nil
}

// RenderSize returns the size to render at given the space allocated by
// the host, substituting [Config.FallbackSize] on any unconstrained
// (infinite) axis.
func (cf *Config) RenderSize(alloc math32.Vector2) math32.Vector2 {
	sz := alloc
	if math32.IsInf(sz.X, 1) {
		sz.X = cf.FallbackSize.X
	}
	if math32.IsInf(sz.Y, 1) {
		sz.Y = cf.FallbackSize.Y
	}
	return sz
}
