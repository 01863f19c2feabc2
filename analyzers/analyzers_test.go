// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyzers

import (
	"math"
	"testing"

	"github.com/emer/etable/v2/etensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the-virtual-brain/scientific-library/datatypes"
	"github.com/the-virtual-brain/scientific-library/traits"
)

// series builds a (tpts, svars, nodes, modes) time series and fills it
// with fill(t, v, n, m).
func series(t *testing.T, tpts, svars, nodes, modes int, fill func(t, v, n, m int) float64) *datatypes.TimeSeries {
	t.Helper()
	data := etensor.NewFloat64([]int{tpts, svars, nodes, modes}, nil,
		[]string{"Time", "State Variable", "Space", "Mode"})
	shp := data.ShapeObj()
	for ti := 0; ti < tpts; ti++ {
		for v := 0; v < svars; v++ {
			for n := 0; n < nodes; n++ {
				for m := 0; m < modes; m++ {
					data.Values[shp.Offset([]int{ti, v, n, m})] = fill(ti, v, n, m)
				}
			}
		}
	}
	ts := datatypes.NewTimeSeries()
	require.NoError(t, ts.SetData(data))
	return ts
}

func TestCorrelationCoefficientPerfectPairs(t *testing.T) {
	// node 1 mirrors node 0, node 2 negates it
	ts := series(t, 16, 1, 3, 1, func(ti, v, n, m int) float64 {
		x := float64(ti)
		if n == 2 {
			return -x
		}
		return x
	})
	cc, err := NewCorrelationCoefficient(ts)
	require.NoError(t, err)

	out, err := cc.Evaluate()
	require.NoError(t, err)
	res := out.ArrayData()
	require.NotNil(t, res)
	assert.Equal(t, []int{3, 3, 1, 1}, res.ShapeObj().Shp)

	shp := res.ShapeObj()
	at := func(i, j int) float64 {
		return res.FloatVal1D(shp.Offset([]int{i, j, 0, 0}))
	}
	assert.InDelta(t, 1.0, at(0, 0), 1e-12)
	assert.InDelta(t, 1.0, at(0, 1), 1e-12)
	assert.InDelta(t, -1.0, at(0, 2), 1e-12)
	// symmetric
	assert.Equal(t, at(0, 2), at(2, 0))
	assert.Same(t, ts, out.Source())
}

func TestCorrelationCoefficientWindow(t *testing.T) {
	ts := series(t, 100, 1, 2, 1, func(ti, v, n, m int) float64 { return float64(ti * (n + 1)) })
	cc, err := NewCorrelationCoefficient(ts)
	require.NoError(t, err)

	// defaults clamp to the full series
	lo, hi := cc.window(100, 1.0)
	assert.Equal(t, 0, lo)
	assert.Equal(t, 99, hi)

	require.NoError(t, cc.Set("TStart", 11.0))
	require.NoError(t, cc.Set("TEnd", 21.0))
	lo, hi = cc.window(100, 1.0)
	assert.Equal(t, 10, lo)
	assert.Equal(t, 20, hi)
}

func TestCorrelationCoefficientResultShape(t *testing.T) {
	cc := &CorrelationCoefficient{}
	assert.Equal(t, []int{4, 4, 2, 3}, cc.ResultShape([]int{100, 2, 4, 3}))
	assert.Equal(t, int64(4*4*2*3*8), cc.ResultSize([]int{100, 2, 4, 3}))
}

func TestCorrelationCoefficientRequiresSeries(t *testing.T) {
	_, err := NewCorrelationCoefficient(nil)
	require.Error(t, err)
	assert.True(t, traits.IsValidationError(err))
}

func TestKuramotoIndexLockedPhases(t *testing.T) {
	// every node at the same, drifting phase
	ts := series(t, 32, 2, 5, 1, func(ti, v, n, m int) float64 {
		phase := 0.1 * float64(ti)
		if v == 0 {
			return math.Cos(phase)
		}
		return math.Sin(phase)
	})
	ki, err := NewKuramotoIndex(ts)
	require.NoError(t, err)
	r, err := ki.Evaluate()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)
}

func TestKuramotoIndexScatteredPhases(t *testing.T) {
	// four nodes a quarter turn apart cancel exactly
	ts := series(t, 8, 2, 4, 1, func(ti, v, n, m int) float64 {
		phase := float64(n) * math.Pi / 2
		if v == 0 {
			return math.Cos(phase)
		}
		return math.Sin(phase)
	})
	ki, err := NewKuramotoIndex(ts)
	require.NoError(t, err)
	r, err := ki.Evaluate()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, r, 1e-12)
}

func TestKuramotoIndexNeedsTwoVariables(t *testing.T) {
	ts := series(t, 8, 1, 4, 1, func(ti, v, n, m int) float64 { return 1 })
	ki, err := NewKuramotoIndex(ts)
	require.NoError(t, err)
	_, err = ki.Evaluate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2")
}

func TestMetastabilityConstantDeviation(t *testing.T) {
	// two nodes at +1 and -1: the deviation signal is constantly 1, so
	// metastability is 0 and synchrony is 1
	ts := series(t, 8, 1, 2, 1, func(ti, v, n, m int) float64 {
		if n == 0 {
			return 1
		}
		return -1
	})
	pm, err := NewProxyMetastabilitySynchrony(ts)
	require.NoError(t, err)
	res, err := pm.Evaluate()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.Metastability, 1e-12)
	assert.InDelta(t, 1.0, res.Synchrony, 1e-12)
}

func TestMetastabilityStartPointFallback(t *testing.T) {
	ts := series(t, 8, 1, 2, 1, func(ti, v, n, m int) float64 { return float64(n) })
	pm, err := NewProxyMetastabilitySynchrony(ts)
	require.NoError(t, err)

	// default 500 ms start does not fit 8 samples: last quarter is used
	assert.Equal(t, 6, pm.startTimePoint(8, 1.0))

	require.NoError(t, pm.Set("StartPoint", 2.0))
	assert.Equal(t, 2, pm.startTimePoint(8, 1.0))
}

func TestMetastabilityFullySynchronized(t *testing.T) {
	// identical nodes leave no deviation; synchrony diverges
	ts := series(t, 8, 1, 3, 1, func(ti, v, n, m int) float64 { return math.Sin(float64(ti)) })
	pm, err := NewProxyMetastabilitySynchrony(ts)
	require.NoError(t, err)
	res, err := pm.Evaluate()
	require.NoError(t, err)
	assert.Zero(t, res.Metastability)
	assert.True(t, math.IsInf(res.Synchrony, 1))
}
