// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyzers

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/the-virtual-brain/scientific-library/datatypes"
	"github.com/the-virtual-brain/scientific-library/traits"
)

// Attribute descriptors for KuramotoIndex.
var KuramotoTimeSeries = &traits.Attr{
	Field:     "TimeSeries",
	FieldType: timeSeriesType,
	Label:     "Time Series",
	Doc: `The time series over which the phase synchronization is
calculated.  The first two state variables are read as the (x, y) pair
whose angle is the oscillator phase; only the first mode is used.`,
}

var kuramotoDecl = traits.MustBind("KuramotoIndex", KuramotoTimeSeries)

// KuramotoIndex computes the Kuramoto synchronization index of a 4-D
// time series: the time-average of the length of the mean phase vector
// over nodes.  1 means full phase locking, 0 means uniformly scattered
// phases.
type KuramotoIndex struct {
	traits.HasTraits
}

// NewKuramotoIndex returns an analyzer bound to ts.
func NewKuramotoIndex(ts *datatypes.TimeSeries) (*KuramotoIndex, error) {
	ki := &KuramotoIndex{}
	ki.Init(kuramotoDecl)
	if err := ki.Set("TimeSeries", ts); err != nil {
		return nil, err
	}
	return ki, nil
}

func (ki *KuramotoIndex) timeSeries() *datatypes.TimeSeries {
	v := KuramotoTimeSeries.Get(&ki.HasTraits)
	if v == nil {
		return nil
	}
	return v.(*datatypes.TimeSeries)
}

// Evaluate returns the Kuramoto index in [0, 1].
func (ki *KuramotoIndex) Evaluate() (float64, error) {
	if err := ki.Validate(); err != nil {
		return 0, err
	}
	ts := ki.timeSeries()
	data := ts.Data()
	if data == nil {
		return 0, fmt.Errorf("analyzers: kuramoto: time series has no data")
	}
	shp := data.ShapeObj()
	tpts, svars, nodes := data.Dim(0), data.Dim(1), data.Dim(2)
	if svars < 2 {
		return 0, fmt.Errorf("analyzers: kuramoto: the number of state variables should be at least 2, got %d", svars)
	}
	if tpts == 0 || nodes == 0 {
		return 0, fmt.Errorf("analyzers: kuramoto: empty time series")
	}

	rs := make([]float64, tpts)
	for t := 0; t < tpts; t++ {
		var sumRe, sumIm float64
		for n := 0; n < nodes; n++ {
			y := data.FloatVal1D(shp.Offset([]int{t, 1, n, 0}))
			x := data.FloatVal1D(shp.Offset([]int{t, 0, n, 0}))
			theta := math.Atan2(y, x)
			sumRe += math.Cos(theta)
			sumIm += math.Sin(theta)
		}
		rs[t] = math.Hypot(sumRe, sumIm) / float64(nodes)
	}
	return stat.Mean(rs, nil), nil
}
