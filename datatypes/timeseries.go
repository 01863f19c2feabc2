// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datatypes

import (
	"reflect"

	"github.com/emer/etable/v2/etensor"

	"github.com/the-virtual-brain/scientific-library/traits"
)

var stringType = reflect.TypeOf("")

// Attribute descriptors for TimeSeries.  Declared once, shared by all
// instances; the per-instance values live on the embedded HasTraits.
var (
	TimeSeriesData = &traits.NArray{
		Attr: traits.Attr{
			Field: "Data",
			Label: "Time series data",
			Doc: `An array of simulated or measured activity, organized as
(time points, state variables, space, modes).`,
		},
		DimNames: []string{"Time", "State Variable", "Space", "Mode"},
	}

	TimeSeriesTime = &traits.NArray{
		Attr: traits.Attr{
			Field:    "Time",
			Optional: true,
			Label:    "Time stamps",
			Doc: `Time points (ms) of the first dimension of Data.
Not stored when the series is uniformly sampled.`,
		},
		NDim: 1,
	}

	TimeSeriesSamplePeriod = &traits.Float{
		Attr: traits.Attr{
			Field:   "SamplePeriod",
			Default: 1.0,
			Label:   "Sample period",
			Doc:     "Sampling interval of the time series (ms).",
		},
	}

	TimeSeriesSamplePeriodUnit = &traits.Attr{
		Field:     "SamplePeriodUnit",
		FieldType: stringType,
		Default:   "ms",
		Choices:   traits.Strings("ms", "s"),
		Label:     "Sample period unit",
	}

	TimeSeriesStartTime = &traits.Float{
		Attr: traits.Attr{
			Field:   "StartTime",
			Default: 0.0,
			Label:   "Start time",
			Doc: `The starting time point of a simulated time series is not
zero but the monitor's sample period.`,
		},
	}

	TimeSeriesLabelsOrdering = &traits.List{
		Attr: traits.Attr{
			Field:   "LabelsOrdering",
			Default: traits.Strings("Time", "State Variable", "Space", "Mode"),
			Label:   "Dimension names",
			Doc:     "List of strings representing the names of each dimension of Data.",
		},
		Of: stringType,
	}

	TimeSeriesTitle = &traits.Attr{
		Field:     "Title",
		FieldType: stringType,
		Optional:  true,
		Label:     "Title",
	}
)

var timeSeriesDecl = traits.MustBind("TimeSeries",
	TimeSeriesData,
	TimeSeriesTime,
	TimeSeriesSamplePeriod,
	TimeSeriesSamplePeriodUnit,
	TimeSeriesStartTime,
	TimeSeriesLabelsOrdering,
	TimeSeriesTitle,
)

// TimeSeries is a 4-D block of activity over time, produced by the
// simulator's monitors: (time points, state variables, space, modes).
type TimeSeries struct {
	traits.HasTraits
}

// NewTimeSeries returns an initialized, empty TimeSeries.  Set Data
// before handing it to a consumer; Validate reports what is missing.
func NewTimeSeries() *TimeSeries {
	ts := &TimeSeries{}
	ts.Init(timeSeriesDecl)
	return ts
}

func (ts *TimeSeries) Data() etensor.Tensor { return TimeSeriesData.Get(&ts.HasTraits) }

func (ts *TimeSeries) SetData(v etensor.Tensor) error {
	return TimeSeriesData.Set(&ts.HasTraits, v)
}

func (ts *TimeSeries) SamplePeriod() float64 {
	return TimeSeriesSamplePeriod.Get(&ts.HasTraits)
}

func (ts *TimeSeries) SetSamplePeriod(v float64) error {
	return TimeSeriesSamplePeriod.Set(&ts.HasTraits, v)
}

func (ts *TimeSeries) StartTime() float64 { return TimeSeriesStartTime.Get(&ts.HasTraits) }

func (ts *TimeSeries) LabelsOrdering() []any {
	return TimeSeriesLabelsOrdering.Get(&ts.HasTraits)
}

// TimePoints returns the length of the time dimension, 0 when no data is
// bound.
func (ts *TimeSeries) TimePoints() int {
	data := ts.Data()
	if data == nil {
		return 0
	}
	return data.Dim(0)
}

// Duration returns the spanned time (ms) under the current sample period.
func (ts *TimeSeries) Duration() float64 {
	return float64(ts.TimePoints()) * ts.SamplePeriod()
}
