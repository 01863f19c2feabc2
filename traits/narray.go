// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traits

import (
	"github.com/bdlm/log"
	"github.com/emer/etable/v2/etensor"
)

// NArray declares a multi-dimensional numeric array attribute, backed by
// etensor tensors.
//
// Dtype is enforced through safe casting only: an assigned tensor must be
// losslessly convertible to the declared dtype, and the stored value is a
// fresh tensor of that dtype -- never an alias of the caller's buffer.
// NDim, if fixed, is enforced exactly.  Declaring DimNames pins NDim to
// their count.
//
// Domain declares the expected value range of the elements.  Defaults are
// checked against it at bind time, with violations logged rather than
// fatal; assigned values are NOT re-checked unless Strict is set.  This
// is a deliberate trade-off between correctness and per-assignment cost.
type NArray struct {
	Attr

	// Dtype is the element type; etensor.FLOAT64 if zero.
	Dtype etensor.Type

	// NDim fixes the number of dimensions; zero or negative allows any.
	NDim int

	// DimNames optionally names the dimensions, pinning NDim.
	DimNames []string

	// Domain is the expected range of element values.
	Domain Domain

	// Strict re-validates Domain membership on every assignment.
	Strict bool
}

func (a *NArray) finalize(owner string) error {
	if err := a.Attr.finalize(owner); err != nil {
		return err
	}
	if a.Dtype == etensor.NULL {
		a.Dtype = etensor.FLOAT64
	}
	if !isNumKind(a.Dtype) {
		return a.errConfig("dtype %v is not a numeric type", a.Dtype)
	}
	if len(a.DimNames) > 0 {
		if a.NDim > 0 && a.NDim != len(a.DimNames) {
			return a.errConfig("dim names %v contradict ndim %d", a.DimNames, a.NDim)
		}
		a.NDim = len(a.DimNames)
	}
	return nil
}

func (a *NArray) validateDefault() error {
	if a.Default == nil {
		return nil
	}
	def, ok := a.Default.(etensor.Tensor)
	if !ok {
		return a.errConfig("default %v should be an etensor.Tensor", a.Default)
	}
	if !CanCast(def.DataType(), a.Dtype) {
		return a.errConfig("the default value of dtype %v can not be safely cast to the declared dtype %v",
			def.DataType(), a.Dtype)
	}
	if a.NDim > 0 && def.NumDims() != a.NDim {
		return a.errConfig("default ndim=%d is not the declared one=%d", def.NumDims(), a.NDim)
	}
	// detach the default from the caller so nothing outside the
	// declaration can reach the shared buffer
	def = def.Clone()
	a.Default = def

	// check that the default values are in the declared domain.
	// this may be expensive.
	if a.Domain != nil {
		for i := 0; i < def.Len(); i++ {
			if v := def.FloatVal1D(i); !a.Domain.Contains(v) {
				log.WithFields(log.Fields{
					"owner": a.owner,
					"attr":  a.Field,
					"value": v,
				}).Warn("traits: default contains values out of the declared domain")
				break
			}
		}
	}
	return nil
}

func (a *NArray) validateSet(ht *HasTraits, value any) (any, error) {
	done, err := a.checkSet(ht, value)
	if done || err != nil {
		return nil, err
	}
	tsr, ok := value.(etensor.Tensor)
	if !ok {
		return nil, a.errValue("can't be set to %v of type %T, want an etensor.Tensor", value, value)
	}
	if a.NDim > 0 && tsr.NumDims() != a.NDim {
		return nil, a.errValue("can't be set to an array with ndim %d", tsr.NumDims())
	}
	if !CanCast(tsr.DataType(), a.Dtype) {
		return nil, a.errValue("can't be set to an array of dtype %v", tsr.DataType())
	}
	shp := tsr.ShapeObj()
	out := etensor.New(a.Dtype, shp.Shp, nil, shp.Nms)
	out.CopyFrom(tsr)
	if a.Strict && a.Domain != nil {
		for i := 0; i < out.Len(); i++ {
			if v := out.FloatVal1D(i); !a.Domain.Contains(v) {
				return nil, a.errValue("value[%d]==%v is out of the declared domain", i, v)
			}
		}
	}
	return out, nil
}

// defaultValue hands out a clone, so mutations of what Get returns are
// never visible to other instances or later Gets.
func (a *NArray) defaultValue() any {
	if a.Default == nil {
		return nil
	}
	return a.Default.(etensor.Tensor).Clone()
}

// Get returns the bound tensor, or a copy of the default if unset, or
// nil for an optional attribute with no default.
func (a *NArray) Get(ht *HasTraits) etensor.Tensor {
	v := ht.Get(a.Field)
	if v == nil {
		return nil
	}
	return v.(etensor.Tensor)
}

// Set validates value and binds it, upcast to the declared dtype, on the
// instance.
func (a *NArray) Set(ht *HasTraits, value etensor.Tensor) error {
	if value == nil {
		return ht.Set(a.Field, nil)
	}
	return ht.Set(a.Field, value)
}
