// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traits

import (
	"reflect"
)

// Const declares an attribute that always resolves to its default.  It is
// required and read only, and any Set fails: the default is the value.
//
// If the default is a mutable value it is shared by every instance of the
// owning type; constancy of the value's innards is not enforced.
type Const struct {
	Attr
}

func (a *Const) finalize(owner string) error {
	if err := a.Attr.finalize(owner); err != nil {
		return err
	}
	if a.Default == nil {
		return a.errConfig("a Const needs a default value")
	}
	a.Optional = false
	a.ReadOnly = true
	if a.FieldType == nil {
		a.FieldType = reflect.TypeOf(a.Default)
	}
	return nil
}

func (a *Const) validateSet(ht *HasTraits, value any) (any, error) {
	return nil, a.errValue("is constant, can't be set")
}

// Get returns the constant value.
func (a *Const) Get(ht *HasTraits) any { return ht.Get(a.Field) }
