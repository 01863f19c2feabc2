// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datatypes

import (
	"github.com/emer/etable/v2/etensor"

	"github.com/the-virtual-brain/scientific-library/traits"
)

// MaxTractVertices bounds the number of vertices stored per chunk when
// tracts are materialized for display.
const MaxTractVertices = 1 << 16

// Attribute descriptors for Tracts.
var (
	TractsVertices = &traits.NArray{
		Attr: traits.Attr{
			Field: "Vertices",
			Label: "Vertex positions",
			Doc:   "An array specifying coordinates for the tracts vertices.",
		},
		DimNames: []string{"Vertex", "Coordinate"},
	}

	TractsStartIdx = &traits.NArray{
		Attr: traits.Attr{
			Field: "TractStartIdx",
			Label: "Tract starting indices",
			Doc:   "Where is the first vertex of a tract in the vertex array.",
		},
		Dtype: etensor.INT64,
		NDim:  1,
	}

	TractsRegion = &traits.NArray{
		Attr: traits.Attr{
			Field:    "TractRegion",
			Optional: true,
			Label:    "Tract region index",
			Doc: `An index used to find quickly all tracts emerging from a region.
TractRegion[i] is the region of the i'th tract. -1 represents the background.`,
		},
		Dtype: etensor.INT64,
		NDim:  1,
	}
)

var tractsDecl = traits.MustBind("Tracts",
	TractsVertices,
	TractsStartIdx,
	TractsRegion,
)

// Tracts is the datatype for results of diffusion imaging tractography.
type Tracts struct {
	traits.HasTraits
}

// NewTracts returns an initialized, empty Tracts.
func NewTracts() *Tracts {
	t := &Tracts{}
	t.Init(tractsDecl)
	return t
}

func (t *Tracts) Vertices() etensor.Tensor { return TractsVertices.Get(&t.HasTraits) }

func (t *Tracts) SetVertices(v etensor.Tensor) error {
	return TractsVertices.Set(&t.HasTraits, v)
}

func (t *Tracts) TractStartIdx() etensor.Tensor { return TractsStartIdx.Get(&t.HasTraits) }

func (t *Tracts) SetTractStartIdx(v etensor.Tensor) error {
	return TractsStartIdx.Set(&t.HasTraits, v)
}

func (t *Tracts) TractRegion() etensor.Tensor { return TractsRegion.Get(&t.HasTraits) }

func (t *Tracts) SetTractRegion(v etensor.Tensor) error {
	return TractsRegion.Set(&t.HasTraits, v)
}

// TractsCount returns the number of tracts described by the start index
// array.
func (t *Tracts) TractsCount() int {
	idx := t.TractStartIdx()
	if idx == nil || idx.Len() == 0 {
		return 0
	}
	return idx.Len() - 1
}
