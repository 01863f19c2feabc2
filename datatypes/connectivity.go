// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datatypes

import (
	"math"

	"github.com/emer/etable/v2/etensor"

	"github.com/the-virtual-brain/scientific-library/traits"
)

// Attribute descriptors for Connectivity.
var (
	ConnectivityWeights = &traits.NArray{
		Attr: traits.Attr{
			Field: "Weights",
			Label: "Connection strengths",
			Doc: `Matrix of values representing the strength of connections
between regions, arbitrary units.`,
		},
		DimNames: []string{"Region", "Region"},
		Domain:   traits.Range{Lo: 0, Hi: math.MaxFloat64},
		Strict:   true,
	}

	ConnectivityTractLengths = &traits.NArray{
		Attr: traits.Attr{
			Field:    "TractLengths",
			Optional: true,
			Label:    "Tract lengths",
			Doc:      "The length of white-matter tracts between regions (mm).",
		},
		NDim:   2,
		Domain: traits.Range{Lo: 0, Hi: math.MaxFloat64},
	}

	ConnectivityRegionLabels = &traits.List{
		Attr: traits.Attr{
			Field: "RegionLabels",
			Label: "Region labels",
			Doc:   "Short strings naming each anatomical region.",
		},
		Of: stringType,
	}

	ConnectivityNumberOfRegions = &traits.Int{
		Attr: traits.Attr{
			Field: "NumberOfRegions",
			Label: "Number of regions",
		},
		Kind: etensor.INT64,
	}
)

var connectivityDecl = traits.MustBind("Connectivity",
	ConnectivityWeights,
	ConnectivityTractLengths,
	ConnectivityRegionLabels,
	ConnectivityNumberOfRegions,
)

// Connectivity is the structural large-scale connectivity of the brain:
// region-pairwise coupling weights and tract lengths, with region labels.
type Connectivity struct {
	traits.HasTraits
}

// NewConnectivity returns an initialized, empty Connectivity.
func NewConnectivity() *Connectivity {
	c := &Connectivity{}
	c.Init(connectivityDecl)
	return c
}

func (c *Connectivity) Weights() etensor.Tensor {
	return ConnectivityWeights.Get(&c.HasTraits)
}

func (c *Connectivity) SetWeights(v etensor.Tensor) error {
	return ConnectivityWeights.Set(&c.HasTraits, v)
}

func (c *Connectivity) TractLengths() etensor.Tensor {
	return ConnectivityTractLengths.Get(&c.HasTraits)
}

func (c *Connectivity) SetTractLengths(v etensor.Tensor) error {
	return ConnectivityTractLengths.Set(&c.HasTraits, v)
}

func (c *Connectivity) RegionLabels() []any {
	return ConnectivityRegionLabels.Get(&c.HasTraits)
}

func (c *Connectivity) NumberOfRegions() int64 {
	return ConnectivityNumberOfRegions.Get(&c.HasTraits)
}

// Configure derives NumberOfRegions from the bound weights matrix.
// Call after the arrays are set.
func (c *Connectivity) Configure() error {
	w := c.Weights()
	if w == nil {
		return c.Validate()
	}
	if err := ConnectivityNumberOfRegions.Set(&c.HasTraits, int64(w.Dim(0))); err != nil {
		return err
	}
	return c.Validate()
}
