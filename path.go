// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparkline

import "cogentcore.org/core/math32"

// Path is a collection of MoveTo, LineTo, CubeTo, and Close commands,
// each followed by the float32 coordinate data for it, as in SVG paths.
// CubeTo defines two control points before the end point.
// Close has no coordinate data and closes the current subpath back to
// its starting point.
type Path []float32

// Commands
const (
	MoveTo float32 = 0
	LineTo float32 = 1
	CubeTo float32 = 2
	Close  float32 = 3
)

var cmdLens = [4]int{3, 3, 7, 1}

// CmdLen returns the overall length of the command, including
// the command op itself.
func CmdLen(cmd float32) int {
	return cmdLens[int(cmd)]
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float32) {
	*p = append(*p, MoveTo, x, y)
}

// LineTo adds a straight segment from the current point to the given point.
func (p *Path) LineTo(x, y float32) {
	*p = append(*p, LineTo, x, y)
}

// CubeTo adds a cubic bezier segment from the current point to (x, y),
// shaped by the two control points (cp1x, cp1y) and (cp2x, cp2y).
func (p *Path) CubeTo(cp1x, cp1y, cp2x, cp2y, x, y float32) {
	*p = append(*p, CubeTo, cp1x, cp1y, cp2x, cp2y, x, y)
}

// Close closes the current subpath.
func (p *Path) Close() {
	*p = append(*p, Close)
}

// Empty returns true if the path contains no commands.
func (p Path) Empty() bool {
	return len(p) == 0
}

// Clone returns a copy of the path.
func (p Path) Clone() Path {
	c := make(Path, len(p))
	copy(c, p)
	return c
}

// Reset clears the path but retains the same memory.
func (p *Path) Reset() {
	*p = (*p)[:0]
}

// Start returns the first point of the path, which is the
// coordinate data of its leading MoveTo.
func (p Path) Start() math32.Vector2 {
	if len(p) < 3 || p[0] != MoveTo {
		return math32.Vector2{}
	}
	return math32.Vec2(p[1], p[2])
}

// Scanner iterates over the commands of a path:
//
//	sc := p.Scan()
//	for sc.Next() {
//		cmd, v := sc.Cmd(), sc.Values()
//		...
//	}
type Scanner struct {
	p Path
	i int
	n int
}

// Scan returns a new [Scanner] positioned before the first command.
func (p Path) Scan() *Scanner {
	return &Scanner{p: p, i: 0, n: 0}
}

// Next advances to the next command, returning false at the end of the path.
func (sc *Scanner) Next() bool {
	sc.i += sc.n
	if sc.i >= len(sc.p) {
		return false
	}
	sc.n = CmdLen(sc.p[sc.i])
	return true
}

// Cmd returns the current command.
func (sc *Scanner) Cmd() float32 {
	return sc.p[sc.i]
}

// Values returns the coordinate data for the current command.
func (sc *Scanner) Values() []float32 {
	return sc.p[sc.i+1 : sc.i+sc.n]
}

// End returns the end point of the current command
// (the zero vector for Close).
func (sc *Scanner) End() math32.Vector2 {
	if sc.Cmd() == Close {
		return math32.Vector2{}
	}
	return math32.Vec2(sc.p[sc.i+sc.n-2], sc.p[sc.i+sc.n-1])
}
