// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datatypes

import (
	"reflect"

	"github.com/emer/etable/v2/etensor"

	"github.com/the-virtual-brain/scientific-library/traits"
)

var boolType = reflect.TypeOf(true)

// Attribute descriptors for Surface.
var (
	SurfaceVertices = &traits.NArray{
		Attr: traits.Attr{
			Field: "Vertices",
			Label: "Vertex positions",
			Doc:   "An array specifying coordinates for the surface vertices (mm).",
		},
		DimNames: []string{"Vertex", "Coordinate"},
	}

	SurfaceTriangles = &traits.NArray{
		Attr: traits.Attr{
			Field: "Triangles",
			Label: "Triangles",
			Doc:   "Array of indices into the vertices, defining the triangles.",
		},
		Dtype:    etensor.INT64,
		DimNames: []string{"Triangle", "Vertex Index"},
	}

	SurfaceVertexNormals = &traits.NArray{
		Attr: traits.Attr{
			Field:    "VertexNormals",
			Optional: true,
			Label:    "Vertex normals",
			Doc:      "An array of unit normal vectors for the surface vertices.",
		},
		NDim: 2,
	}

	SurfaceZeroBasedTriangles = &traits.Attr{
		Field:     "ZeroBasedTriangles",
		FieldType: boolType,
		Default:   true,
		Label:     "Zero-based triangle indexing",
	}

	SurfaceNumberOfVertices = &traits.Int{
		Attr: traits.Attr{
			Field: "NumberOfVertices",
			Label: "Number of vertices",
		},
		Kind: etensor.INT64,
	}

	SurfaceNumberOfTriangles = &traits.Int{
		Attr: traits.Attr{
			Field: "NumberOfTriangles",
			Label: "Number of triangles",
		},
		Kind: etensor.INT64,
	}
)

var surfaceDecl = traits.MustBind("Surface",
	SurfaceVertices,
	SurfaceTriangles,
	SurfaceVertexNormals,
	SurfaceZeroBasedTriangles,
	SurfaceNumberOfVertices,
	SurfaceNumberOfTriangles,
)

// Surface is a triangulated cortical surface mesh.
type Surface struct {
	traits.HasTraits
}

// NewSurface returns an initialized, empty Surface.
func NewSurface() *Surface {
	s := &Surface{}
	s.Init(surfaceDecl)
	return s
}

func (s *Surface) Vertices() etensor.Tensor { return SurfaceVertices.Get(&s.HasTraits) }

func (s *Surface) SetVertices(v etensor.Tensor) error {
	return SurfaceVertices.Set(&s.HasTraits, v)
}

func (s *Surface) Triangles() etensor.Tensor { return SurfaceTriangles.Get(&s.HasTraits) }

func (s *Surface) SetTriangles(v etensor.Tensor) error {
	return SurfaceTriangles.Set(&s.HasTraits, v)
}

func (s *Surface) NumberOfVertices() int64 {
	return SurfaceNumberOfVertices.Get(&s.HasTraits)
}

func (s *Surface) NumberOfTriangles() int64 {
	return SurfaceNumberOfTriangles.Get(&s.HasTraits)
}

// Configure derives the vertex and triangle counts from the bound
// arrays.  Call after the arrays are set.
func (s *Surface) Configure() error {
	v, tri := s.Vertices(), s.Triangles()
	if v != nil {
		if err := SurfaceNumberOfVertices.Set(&s.HasTraits, int64(v.Dim(0))); err != nil {
			return err
		}
	}
	if tri != nil {
		if err := SurfaceNumberOfTriangles.Set(&s.HasTraits, int64(tri.Dim(0))); err != nil {
			return err
		}
	}
	return s.Validate()
}
