// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparkline

import (
	"strconv"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"cogentcore.org/core/styles"
)

// gridLabel is the derived text and measured layout box for one grid line.
type gridLabel struct {
	text string
	size math32.Vector2
}

func (sl *Sparkline) labelStyle() *TextStyle {
	return &TextStyle{Color: colors.Uniform(sl.Config.Grid.LabelColor)}
}

// gridLabels formats and measures the label for each grid line.
// The measured boxes are computed once per render; the widest one sizes
// the right margin reserved for the labels.
func (sl *Sparkline) gridLabels(cv Canvas, rng minmax.F32) []gridLabel {
	gs := &sl.Config.Grid
	sty := sl.labelStyle()
	step := rng.Range() / float32(gs.Amount-1)
	lbs := make([]gridLabel, gs.Amount)
	for i := range lbs {
		txt := FormatLabel(rng.Max-step*float32(i), gs.LabelPrefix)
		lbs[i] = gridLabel{text: txt, size: cv.TextSize(txt, sty)}
	}
	return lbs
}

// drawGrid draws the evenly spaced horizontal grid lines, each with a
// value label on the right margin. Line 0 is at the top and carries the
// Max value; the last line is at the bottom with Min.
func (sl *Sparkline) drawGrid(cv Canvas, labels []gridLabel, dw, dh float32) {
	gs := &sl.Config.Grid
	lsty := &PathStyle{Stroke: Stroke{
		Color: colors.Uniform(gs.Color),
		Width: gs.Width,
		Cap:   styles.LineCapButt,
		Join:  styles.LineJoinMiter,
	}}
	tsty := sl.labelStyle()
	for i, lb := range labels {
		y := math32.Round(float32(i) * dh / float32(len(labels)-1))
		var p Path
		p.MoveTo(0, y)
		p.LineTo(dw, y)
		cv.DrawPath(p, lsty)
		cv.DrawText(lb.text, math32.Vec2(dw+2, y-lb.size.Y/2), tsty)
	}
}

// FormatLabel formats a grid line value: values below 1 use 4
// significant digits, values from 1 up to 999 use 2 decimal places, and
// larger values round to the nearest integer. The prefix is prepended
// verbatim.
func FormatLabel(v float32, prefix string) string {
	av := math32.Abs(v)
	var s string
	switch {
	case av != 0 && av < 1:
		s = strconv.FormatFloat(float64(v), 'g', 4, 32)
	case av < 999:
		s = strconv.FormatFloat(float64(v), 'f', 2, 32)
	default:
		s = strconv.FormatFloat(float64(math32.Round(v)), 'f', -1, 32)
	}
	return prefix + s
}
