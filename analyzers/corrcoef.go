// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyzers

import (
	"fmt"
	"reflect"

	"github.com/bdlm/log"
	"github.com/emer/etable/v2/etensor"
	"gonum.org/v1/gonum/stat"

	"github.com/the-virtual-brain/scientific-library/datatypes"
	"github.com/the-virtual-brain/scientific-library/traits"
)

var timeSeriesType = reflect.TypeOf((*datatypes.TimeSeries)(nil))

// Attribute descriptors for CorrelationCoefficient.
var (
	CorrcoefTimeSeries = &traits.Attr{
		Field:     "TimeSeries",
		FieldType: timeSeriesType,
		Label:     "Time Series",
		Doc:       "The time series for which the cross correlation matrices are calculated.",
	}

	CorrcoefTStart = &traits.Float{
		Attr: traits.Attr{
			Field:   "TStart",
			Default: 0.9765625,
			Label:   "Return values from this point onward (ms)",
			Doc: `Lower bound of the time window over which the correlation
is computed.  By default the first sample of a 1024 Hz series.`,
		},
	}

	CorrcoefTEnd = &traits.Float{
		Attr: traits.Attr{
			Field:   "TEnd",
			Default: 1000.0,
			Label:   "Return values until this point (ms)",
			Doc:     "Upper bound of the time window, clamped to the series length.",
		},
	}
)

var corrcoefDecl = traits.MustBind("CorrelationCoefficient",
	CorrcoefTimeSeries,
	CorrcoefTStart,
	CorrcoefTEnd,
)

// CorrelationCoefficient computes the node-pairwise Pearson correlation
// of a 4-D time series, one node-by-node matrix per state variable and
// mode, over the [TStart, TEnd] window.
type CorrelationCoefficient struct {
	traits.HasTraits
}

// NewCorrelationCoefficient returns an analyzer bound to ts.  TStart and
// TEnd keep their defaults; set them through the descriptors to narrow
// the window.
func NewCorrelationCoefficient(ts *datatypes.TimeSeries) (*CorrelationCoefficient, error) {
	cc := &CorrelationCoefficient{}
	cc.Init(corrcoefDecl)
	if err := cc.Set("TimeSeries", ts); err != nil {
		return nil, err
	}
	return cc, nil
}

func (cc *CorrelationCoefficient) timeSeries() *datatypes.TimeSeries {
	v := CorrcoefTimeSeries.Get(&cc.HasTraits)
	if v == nil {
		return nil
	}
	return v.(*datatypes.TimeSeries)
}

// window converts the TStart / TEnd bounds (ms) into a closed index
// range on the time axis, clamped to the available samples.
func (cc *CorrelationCoefficient) window(tpts int, samplePeriod float64) (int, int) {
	tStart := CorrcoefTStart.Get(&cc.HasTraits)
	tEnd := CorrcoefTEnd.Get(&cc.HasTraits)
	tLo := int((1 / samplePeriod) * (tStart - samplePeriod))
	tHi := int((1 / samplePeriod) * (tEnd - samplePeriod))
	if tLo < 0 {
		tLo = 0
	}
	if tHi > tpts-1 {
		tHi = tpts - 1
	}
	return tLo, tHi
}

// Evaluate computes the correlation matrices and wraps them, together
// with the source series, in a CorrelationCoefficients datatype.
func (cc *CorrelationCoefficient) Evaluate() (*datatypes.CorrelationCoefficients, error) {
	if err := cc.Validate(); err != nil {
		return nil, err
	}
	ts := cc.timeSeries()
	data := ts.Data()
	if data == nil {
		return nil, fmt.Errorf("analyzers: correlation: time series has no data")
	}
	shp := data.ShapeObj()
	tpts, svars, nodes, modes := data.Dim(0), data.Dim(1), data.Dim(2), data.Dim(3)

	tLo, tHi := cc.window(tpts, ts.SamplePeriod())
	if tHi < tLo {
		return nil, fmt.Errorf("analyzers: correlation: empty window [%d, %d] for %d time points", tLo, tHi, tpts)
	}
	win := tHi - tLo + 1

	resShape := cc.ResultShape([]int{tpts, svars, nodes, modes})
	result := etensor.NewFloat64(resShape, nil, []string{"Node", "Node", "State Variable", "Mode"})
	log.WithFields(log.Fields{
		"window": win,
		"shape":  resShape,
	}).Debug("computing correlation coefficients")

	series := make([][]float64, nodes)
	for n := range series {
		series[n] = make([]float64, win)
	}
	for m := 0; m < modes; m++ {
		for v := 0; v < svars; v++ {
			for n := 0; n < nodes; n++ {
				for t := 0; t < win; t++ {
					series[n][t] = data.FloatVal1D(shp.Offset([]int{tLo + t, v, n, m}))
				}
			}
			for i := 0; i < nodes; i++ {
				for j := i; j < nodes; j++ {
					r := stat.Correlation(series[i], series[j], nil)
					result.Values[result.Offset([]int{i, j, v, m})] = r
					result.Values[result.Offset([]int{j, i, v, m})] = r
				}
			}
		}
	}

	out := datatypes.NewCorrelationCoefficients()
	if err := out.SetArrayData(result); err != nil {
		return nil, err
	}
	if err := out.SetSource(ts); err != nil {
		return nil, err
	}
	return out, nil
}

// ResultShape returns the shape of the result array for a given input
// shape (time, state variables, nodes, modes).
func (cc *CorrelationCoefficient) ResultShape(inputShape []int) []int {
	return []int{inputShape[2], inputShape[2], inputShape[1], inputShape[3]}
}

// ResultSize returns the storage required for the result, in bytes.
func (cc *CorrelationCoefficient) ResultSize(inputShape []int) int64 {
	size := int64(8)
	for _, d := range cc.ResultShape(inputShape) {
		size *= int64(d)
	}
	return size
}
