// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparkline

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

var (
	// ErrNoData is the invalid-input error for an empty dataset.
	ErrNoData = errors.New("sparkline: no data points")

	// ErrInfinity is the invalid-input error for NaN or infinite
	// data points.
	ErrInfinity = errors.New("sparkline: NaN or infinite data point")
)

// CheckFloats returns [ErrNoData] if given no values, and [ErrInfinity]
// if any of the values is NaN or infinite. Validation happens before any
// geometry computation so that non-finite values never propagate into
// drawing coordinates.
func CheckFloats(fs ...float32) error {
	if len(fs) == 0 {
		return ErrNoData
	}
	for _, f := range fs {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return ErrInfinity
		}
	}
	return nil
}

// DataRange returns the min / max range of the data, in a single pass.
func (sl *Sparkline) DataRange() minmax.F32 {
	var r minmax.F32
	r.SetInfinity()
	for _, v := range sl.Data {
		r.FitValInRange(v)
	}
	return r
}

// resolveRange returns the effective data bounds: the data range,
// with either end overridden by a fixed [Config.Range] bound.
// The result can have Max <= Min if fixed bounds say so; normalization
// guards against that case.
func (sl *Sparkline) resolveRange() minmax.F32 {
	r := sl.DataRange()
	rr := &sl.Config.Range
	if rr.FixMin {
		r.Min = rr.Min
	}
	if rr.FixMax {
		r.Max = rr.Max
	}
	return r
}
