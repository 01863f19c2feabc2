// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyzers

import (
	"fmt"
	"math"

	"github.com/bdlm/log"
	"gonum.org/v1/gonum/stat"

	"github.com/the-virtual-brain/scientific-library/datatypes"
	"github.com/the-virtual-brain/scientific-library/traits"
)

// Attribute descriptors for ProxyMetastabilitySynchrony.
var (
	MetastabilityTimeSeries = &traits.Attr{
		Field:     "TimeSeries",
		FieldType: timeSeriesType,
		Label:     "Time Series",
		Doc:       "The time series over which the metastability and synchrony proxies are calculated.",
	}

	MetastabilityStartPoint = &traits.Float{
		Attr: traits.Attr{
			Field:   "StartPoint",
			Default: 500.0,
			Label:   "Start point (ms)",
			Doc: `The observation period lets the transient pass; samples
before this time are excluded from the metric.`,
		},
	}

	MetastabilitySegment = &traits.Int{
		Attr: traits.Attr{
			Field:   "Segment",
			Default: 4,
			Label:   "Segmentation factor",
			Doc: `When the time series is shorter than the start point, the
last 1/Segment fraction of the series is measured instead.`,
		},
	}
)

var metastabilityDecl = traits.MustBind("ProxyMetastabilitySynchrony",
	MetastabilityTimeSeries,
	MetastabilityStartPoint,
	MetastabilitySegment,
)

// MetastabilityResult holds the two proxies computed from the spatial
// deviation signal: Metastability is its standard deviation over time,
// Synchrony the reciprocal of its mean.
type MetastabilityResult struct {
	Metastability float64
	Synchrony     float64
}

// ProxyMetastabilitySynchrony measures how far a network is from a
// fully synchronized state.  The spatial mean is removed at every time
// point and the mean absolute deviation across nodes forms a scalar
// signal; its variability over time is the metastability proxy and its
// inverse magnitude the synchrony proxy.
type ProxyMetastabilitySynchrony struct {
	traits.HasTraits
}

// NewProxyMetastabilitySynchrony returns an analyzer bound to ts with
// the default observation period.
func NewProxyMetastabilitySynchrony(ts *datatypes.TimeSeries) (*ProxyMetastabilitySynchrony, error) {
	pm := &ProxyMetastabilitySynchrony{}
	pm.Init(metastabilityDecl)
	if err := pm.Set("TimeSeries", ts); err != nil {
		return nil, err
	}
	return pm, nil
}

func (pm *ProxyMetastabilitySynchrony) timeSeries() *datatypes.TimeSeries {
	v := MetastabilityTimeSeries.Get(&pm.HasTraits)
	if v == nil {
		return nil
	}
	return v.(*datatypes.TimeSeries)
}

// startTimePoint resolves StartPoint (ms) to a sample index, falling
// back to the last 1/Segment fraction of a series too short to contain
// the observation period.
func (pm *ProxyMetastabilitySynchrony) startTimePoint(tpts int, samplePeriod float64) int {
	start := 0
	if samplePeriod > 0 {
		start = int(MetastabilityStartPoint.Get(&pm.HasTraits) / samplePeriod)
	}
	if start > tpts {
		segment := int(MetastabilitySegment.Get(&pm.HasTraits))
		if segment < 1 {
			segment = 1
		}
		log.WithFields(log.Fields{
			"start_point": start,
			"time_points": tpts,
		}).Warn("metastability: time series is shorter than the observation period")
		log.WithFields(log.Fields{
			"segment": segment,
		}).Debug("metastability: measuring the last segment of the series instead")
		start = (segment - 1) * (tpts / segment)
	}
	return start
}

// Evaluate returns the metastability and synchrony proxies.
func (pm *ProxyMetastabilitySynchrony) Evaluate() (MetastabilityResult, error) {
	if err := pm.Validate(); err != nil {
		return MetastabilityResult{}, err
	}
	ts := pm.timeSeries()
	data := ts.Data()
	if data == nil {
		return MetastabilityResult{}, fmt.Errorf("analyzers: metastability: time series has no data")
	}
	shp := data.ShapeObj()
	tpts, svars, nodes, modes := data.Dim(0), data.Dim(1), data.Dim(2), data.Dim(3)
	if nodes == 0 {
		return MetastabilityResult{}, fmt.Errorf("analyzers: metastability: time series has no nodes")
	}

	start := pm.startTimePoint(tpts, ts.SamplePeriod())
	if start >= tpts {
		return MetastabilityResult{}, fmt.Errorf("analyzers: metastability: no samples after start point %d of %d", start, tpts)
	}

	// mean absolute deviation from the spatial mean, one scalar per
	// (time, state variable, mode) triple
	vvals := make([]float64, 0, (tpts-start)*svars*modes)
	for m := 0; m < modes; m++ {
		for v := 0; v < svars; v++ {
			for t := start; t < tpts; t++ {
				var mean float64
				for n := 0; n < nodes; n++ {
					mean += data.FloatVal1D(shp.Offset([]int{t, v, n, m}))
				}
				mean /= float64(nodes)
				var dev float64
				for n := 0; n < nodes; n++ {
					dev += math.Abs(data.FloatVal1D(shp.Offset([]int{t, v, n, m})) - mean)
				}
				vvals = append(vvals, dev/float64(nodes))
			}
		}
	}

	meta := stat.PopStdDev(vvals, nil)
	syn := math.Inf(1)
	if mean := stat.Mean(vvals, nil); mean != 0 {
		syn = 1 / mean
	}
	return MetastabilityResult{Metastability: meta, Synchrony: syn}, nil
}
