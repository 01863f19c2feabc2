// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traits

import (
	"testing"

	"github.com/emer/etable/v2/etensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floats(vals ...float64) *etensor.Float64 {
	tsr := etensor.NewFloat64([]int{len(vals)}, nil, nil)
	copy(tsr.Values, vals)
	return tsr
}

func ints(vals ...int) *etensor.Int {
	tsr := etensor.NewInt([]int{len(vals)}, nil, nil)
	copy(tsr.Values, vals)
	return tsr
}

func TestNArrayDimNamesPinNDim(t *testing.T) {
	a := &NArray{Attr: Attr{Field: "Data", Optional: true},
		DimNames: []string{"Time", "State Variable", "Space", "Mode"}}
	_, err := Bind("Owner", a)
	require.NoError(t, err)
	assert.Equal(t, 4, a.NDim)

	// agreeing cardinalities are accepted
	_, err = Bind("Owner", &NArray{Attr: Attr{Field: "Data", Optional: true},
		NDim: 2, DimNames: []string{"Node", "Node"}})
	assert.NoError(t, err)

	// contradicting cardinalities fail the declaration
	_, err = Bind("Owner", &NArray{Attr: Attr{Field: "Data", Optional: true},
		NDim: 3, DimNames: []string{"Node", "Node"}})
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
}

func TestNArrayDefaultChecks(t *testing.T) {
	// not a tensor
	_, err := Bind("Owner", &NArray{Attr: Attr{Field: "Data", Default: 3.0}})
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))

	// dtype not safely castable: float64 default into a float32 array
	_, err = Bind("Owner", &NArray{Attr: Attr{Field: "Data", Default: floats(1, 2)},
		Dtype: etensor.FLOAT32})
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))

	// rank mismatch
	_, err = Bind("Owner", &NArray{Attr: Attr{Field: "Data", Default: floats(1, 2)},
		NDim: 2})
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))

	_, err = Bind("Owner", &NArray{Attr: Attr{Field: "Data", Default: floats(1, 2)}})
	assert.NoError(t, err)
}

func TestNArrayDefaultDetached(t *testing.T) {
	def := floats(1, 2, 3)
	a := &NArray{Attr: Attr{Field: "Data", Default: def}}
	decl := MustBind("Owner", a)

	// the bound default is a copy, the caller's buffer is irrelevant now
	def.Values[0] = 99

	var one, two HasTraits
	one.Init(decl)
	two.Init(decl)

	got := a.Get(&one)
	assert.Equal(t, 1.0, got.FloatVal1D(0))

	// writes to what Get hands out never reach the shared default
	got.SetFloat1D(0, -5)
	assert.Equal(t, 1.0, a.Get(&one).FloatVal1D(0))
	assert.Equal(t, 1.0, a.Get(&two).FloatVal1D(0))
}

func TestNArrayIntToFloatRoundTrip(t *testing.T) {
	a := &NArray{Attr: Attr{Field: "Data"}}
	decl := MustBind("Owner", a)

	var ht HasTraits
	ht.Init(decl)

	src := ints(1, 2, 3)
	require.NoError(t, a.Set(&ht, src))

	got := a.Get(&ht)
	assert.Equal(t, etensor.FLOAT64, got.DataType())
	assert.Equal(t, []float64{1, 2, 3}, got.(*etensor.Float64).Values)

	// the stored array does not alias the assigned one
	src.Values[0] = 42
	assert.Equal(t, 1.0, a.Get(&ht).FloatVal1D(0))
}

func TestNArrayRankEnforced(t *testing.T) {
	a := &NArray{Attr: Attr{Field: "Data"}, NDim: 2}
	decl := MustBind("Owner", a)

	var ht HasTraits
	ht.Init(decl)

	m := etensor.NewInt([]int{3, 3}, nil, nil)
	for i := range m.Values {
		m.Values[i] = i
	}
	require.NoError(t, a.Set(&ht, m))

	got := a.Get(&ht)
	assert.Equal(t, etensor.FLOAT64, got.DataType())
	assert.Equal(t, 2, got.NumDims())
	assert.Equal(t, 9, got.Len())

	err := a.Set(&ht, floats(1, 2, 3))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "ndim 1")
}

func TestNArrayDtypeEnforced(t *testing.T) {
	a := &NArray{Attr: Attr{Field: "Data"}, Dtype: etensor.FLOAT32}
	decl := MustBind("Owner", a)

	var ht HasTraits
	ht.Init(decl)

	// narrowing float64 -> float32 is not a safe cast
	err := a.Set(&ht, floats(1, 2))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestNArrayDomainDefaultWarnsOnly(t *testing.T) {
	// defaults outside the domain are a warning, not a failure
	_, err := Bind("Owner", &NArray{Attr: Attr{Field: "Data", Default: floats(0.5, 8)},
		Domain: Range{Lo: 0, Hi: 1}})
	assert.NoError(t, err)
}

func TestNArrayStrictDomain(t *testing.T) {
	a := &NArray{Attr: Attr{Field: "Data"}, Domain: Range{Lo: -1, Hi: 1}, Strict: true}
	decl := MustBind("Owner", a)

	var ht HasTraits
	ht.Init(decl)

	require.NoError(t, a.Set(&ht, floats(-0.5, 0.5)))

	err := a.Set(&ht, floats(0.5, 1.5))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "value[1]")
}

func TestNArrayLazyDomain(t *testing.T) {
	// without Strict, assignment skips the domain for performance
	a := &NArray{Attr: Attr{Field: "Data"}, Domain: Range{Lo: -1, Hi: 1}}
	decl := MustBind("Owner", a)

	var ht HasTraits
	ht.Init(decl)

	assert.NoError(t, a.Set(&ht, floats(0.5, 1.5)))
}

func TestNArrayOptionalNil(t *testing.T) {
	a := &NArray{Attr: Attr{Field: "Data", Optional: true}}
	decl := MustBind("Owner", a)

	var ht HasTraits
	ht.Init(decl)

	assert.Nil(t, a.Get(&ht))
	require.NoError(t, a.Set(&ht, nil))
	assert.Nil(t, a.Get(&ht))
}
