// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datatypes

import (
	"reflect"

	"github.com/emer/etable/v2/etensor"

	"github.com/the-virtual-brain/scientific-library/traits"
)

// Attribute descriptors for CorrelationCoefficients.
var (
	CorrelationArrayData = &traits.NArray{
		Attr: traits.Attr{
			Field: "ArrayData",
			Label: "Correlation matrices",
			Doc: `Pearson correlation coefficients, one node-by-node matrix
per state variable and mode.  Values are in [-1, 1], inclusive.`,
		},
		DimNames: []string{"Node", "Node", "State Variable", "Mode"},
		// the closed upper endpoint cannot be expressed by the half-open
		// Range; 1.0 in a default would only draw a warning anyway
		Domain: traits.Range{Lo: -1, Hi: 1},
	}

	CorrelationSource = &traits.Attr{
		Field:     "Source",
		FieldType: reflect.TypeOf((*TimeSeries)(nil)),
		Label:     "Source time series",
		Doc:       "The time series the correlation matrices were computed from.",
	}

	CorrelationLabelsOrdering = &traits.Const{
		Attr: traits.Attr{
			Field:   "LabelsOrdering",
			Default: traits.Strings("Node", "Node", "State Variable", "Mode"),
			Label:   "Dimension names",
		},
	}
)

var correlationDecl = traits.MustBind("CorrelationCoefficients",
	CorrelationArrayData,
	CorrelationSource,
	CorrelationLabelsOrdering,
)

// CorrelationCoefficients is the functional-connectivity result datatype:
// node-pairwise Pearson correlation matrices of a TimeSeries.
type CorrelationCoefficients struct {
	traits.HasTraits
}

// NewCorrelationCoefficients returns an initialized, empty result entity.
func NewCorrelationCoefficients() *CorrelationCoefficients {
	cc := &CorrelationCoefficients{}
	cc.Init(correlationDecl)
	return cc
}

func (cc *CorrelationCoefficients) ArrayData() etensor.Tensor {
	return CorrelationArrayData.Get(&cc.HasTraits)
}

func (cc *CorrelationCoefficients) SetArrayData(v etensor.Tensor) error {
	return CorrelationArrayData.Set(&cc.HasTraits, v)
}

func (cc *CorrelationCoefficients) Source() *TimeSeries {
	v := CorrelationSource.Get(&cc.HasTraits)
	if v == nil {
		return nil
	}
	return v.(*TimeSeries)
}

func (cc *CorrelationCoefficients) SetSource(ts *TimeSeries) error {
	return CorrelationSource.Set(&cc.HasTraits, ts)
}

func (cc *CorrelationCoefficients) LabelsOrdering() []any {
	return CorrelationLabelsOrdering.Get(&cc.HasTraits).([]any)
}
