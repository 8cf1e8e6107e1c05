// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparkline

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestPathBuild(t *testing.T) {
	var p Path
	assert.True(t, p.Empty())
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.CubeTo(5, 6, 7, 8, 9, 10)
	p.Close()
	assert.False(t, p.Empty())
	assert.Equal(t, Path{MoveTo, 1, 2, LineTo, 3, 4, CubeTo, 5, 6, 7, 8, 9, 10, Close}, p)
	assert.Equal(t, math32.Vec2(1, 2), p.Start())

	c := p.Clone()
	assert.Equal(t, p, c)
	c.LineTo(11, 12)
	assert.NotEqual(t, p, c)

	p.Reset()
	assert.True(t, p.Empty())
}

func TestPathScan(t *testing.T) {
	var p Path
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.CubeTo(5, 6, 7, 8, 9, 10)
	p.Close()

	sc := p.Scan()
	assert.True(t, sc.Next())
	assert.Equal(t, MoveTo, sc.Cmd())
	assert.Equal(t, []float32{1, 2}, sc.Values())
	assert.Equal(t, math32.Vec2(1, 2), sc.End())

	assert.True(t, sc.Next())
	assert.Equal(t, LineTo, sc.Cmd())
	assert.Equal(t, math32.Vec2(3, 4), sc.End())

	assert.True(t, sc.Next())
	assert.Equal(t, CubeTo, sc.Cmd())
	assert.Equal(t, []float32{5, 6, 7, 8, 9, 10}, sc.Values())
	assert.Equal(t, math32.Vec2(9, 10), sc.End())

	assert.True(t, sc.Next())
	assert.Equal(t, Close, sc.Cmd())
	assert.False(t, sc.Next())
}
