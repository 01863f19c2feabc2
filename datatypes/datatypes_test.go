// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datatypes

import (
	"testing"

	"github.com/emer/etable/v2/etensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the-virtual-brain/scientific-library/traits"
)

func series4D(tpts, svars, nodes, modes int) *etensor.Float64 {
	tsr := etensor.NewFloat64([]int{tpts, svars, nodes, modes}, nil,
		[]string{"Time", "State Variable", "Space", "Mode"})
	for i := range tsr.Values {
		tsr.Values[i] = float64(i)
	}
	return tsr
}

func TestTimeSeriesDefaults(t *testing.T) {
	ts := NewTimeSeries()

	assert.Equal(t, 1.0, ts.SamplePeriod())
	assert.Equal(t, 0.0, ts.StartTime())
	assert.Equal(t, traits.Strings("Time", "State Variable", "Space", "Mode"),
		ts.LabelsOrdering())
	assert.Equal(t, "ms", ts.Get("SamplePeriodUnit"))

	// no data yet: the entity does not validate
	require.Error(t, ts.Validate())
	assert.Zero(t, ts.TimePoints())
}

func TestTimeSeriesData(t *testing.T) {
	ts := NewTimeSeries()
	require.NoError(t, ts.SetData(series4D(10, 2, 3, 1)))
	require.NoError(t, ts.Validate())

	assert.Equal(t, 10, ts.TimePoints())
	assert.Equal(t, 10.0, ts.Duration())

	require.NoError(t, ts.SetSamplePeriod(0.5))
	assert.Equal(t, 5.0, ts.Duration())

	// rank is pinned to 4 by the dimension names
	err := ts.SetData(etensor.NewFloat64([]int{10, 2}, nil, nil))
	require.Error(t, err)
	assert.True(t, traits.IsValidationError(err))
}

func TestTimeSeriesIntDataUpcast(t *testing.T) {
	ts := NewTimeSeries()
	raw := etensor.NewInt([]int{4, 1, 2, 1}, nil, nil)
	for i := range raw.Values {
		raw.Values[i] = i
	}
	require.NoError(t, ts.SetData(raw))
	assert.Equal(t, etensor.FLOAT64, ts.Data().DataType())
}

func TestTimeSeriesUnitChoices(t *testing.T) {
	ts := NewTimeSeries()
	require.NoError(t, ts.Set("SamplePeriodUnit", "s"))

	err := ts.Set("SamplePeriodUnit", "fortnights")
	require.Error(t, err)
	assert.True(t, traits.IsValidationError(err))
}

func TestCorrelationCoefficients(t *testing.T) {
	src := NewTimeSeries()
	require.NoError(t, src.SetData(series4D(10, 1, 2, 1)))

	cc := NewCorrelationCoefficients()
	require.NoError(t, cc.SetSource(src))

	data := etensor.NewFloat64([]int{2, 2, 1, 1}, nil, nil)
	copy(data.Values, []float64{1, 0.5, 0.5, 1})
	require.NoError(t, cc.SetArrayData(data))
	require.NoError(t, cc.Validate())

	assert.Same(t, src, cc.Source())
	assert.Equal(t, traits.Strings("Node", "Node", "State Variable", "Mode"),
		cc.LabelsOrdering())

	// the labels ordering is constant
	err := cc.Set("LabelsOrdering", traits.Strings("a"))
	require.Error(t, err)
	assert.True(t, traits.IsValidationError(err))
}

func TestConnectivityConfigure(t *testing.T) {
	c := NewConnectivity()

	w := etensor.NewFloat64([]int{3, 3}, nil, nil)
	copy(w.Values, []float64{0, 1, 2, 1, 0, 3, 2, 3, 0})
	require.NoError(t, c.SetWeights(w))
	require.NoError(t, c.Set("RegionLabels", traits.Strings("V1", "V2", "M1")))

	require.NoError(t, c.Configure())
	assert.Equal(t, int64(3), c.NumberOfRegions())
}

func TestConnectivityWeightsAreStrict(t *testing.T) {
	c := NewConnectivity()

	w := etensor.NewFloat64([]int{2, 2}, nil, nil)
	copy(w.Values, []float64{0, -1, 1, 0})
	err := c.SetWeights(w)
	require.Error(t, err)
	assert.True(t, traits.IsValidationError(err))
}

func TestSurfaceConfigure(t *testing.T) {
	s := NewSurface()

	verts := etensor.NewFloat64([]int{4, 3}, nil, nil)
	tris := etensor.NewInt64([]int{2, 3}, nil, nil)
	require.NoError(t, s.SetVertices(verts))
	require.NoError(t, s.SetTriangles(tris))

	require.NoError(t, s.Configure())
	assert.Equal(t, int64(4), s.NumberOfVertices())
	assert.Equal(t, int64(2), s.NumberOfTriangles())
	assert.Equal(t, true, s.Get("ZeroBasedTriangles"))
}

func TestSurfaceTrianglesAreIntegers(t *testing.T) {
	s := NewSurface()
	err := s.SetTriangles(etensor.NewFloat64([]int{2, 3}, nil, nil))
	require.Error(t, err)
	assert.True(t, traits.IsValidationError(err))
}

func TestTractsCount(t *testing.T) {
	tr := NewTracts()

	verts := etensor.NewFloat64([]int{6, 3}, nil, nil)
	idx := etensor.NewInt64([]int{4}, nil, nil)
	copy(idx.Values, []int64{0, 2, 4, 6})
	require.NoError(t, tr.SetVertices(verts))
	require.NoError(t, tr.SetTractStartIdx(idx))

	assert.Equal(t, 3, tr.TractsCount())
	require.NoError(t, tr.Validate())

	// the optional region index stays nil until provided
	assert.Nil(t, tr.TractRegion())
}
