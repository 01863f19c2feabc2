// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traits

import (
	"reflect"
)

// List declares an ordered, homogeneous sequence attribute.  Of and
// ElementChoices apply to the elements, not to the sequence itself; the
// sequence value is always required (the empty sequence is a valid
// value).
//
// Values are plain []any slices and are stored as passed, without a copy:
// mutating a stored slice through its own indices bypasses the element
// guards.  Whole-value reassignment through Set re-validates every
// element.
type List struct {
	Attr

	// Of is the required element type; any non-nil element if nil.
	Of reflect.Type

	// ElementChoices restricts every element to an enumerated set.
	ElementChoices []any
}

func (a *List) finalize(owner string) error {
	if err := a.Attr.finalize(owner); err != nil {
		return err
	}
	a.Optional = false
	// choices on a sequence are reinterpreted as element choices
	if a.Choices != nil && a.ElementChoices == nil {
		a.ElementChoices = a.Choices
		a.Choices = nil
	}
	if a.Default == nil {
		a.Default = []any{}
	}
	return nil
}

func (a *List) validateDefault() error {
	def, ok := a.Default.([]any)
	if !ok {
		return a.errConfig("default %v must be a []any sequence, not %T", a.Default, a.Default)
	}
	for i, el := range def {
		if !typeOK(a.Of, el) {
			return a.errConfig("default[%d] must have type %v not %T", i, a.Of, el)
		}
	}
	if a.ElementChoices != nil {
		for i, el := range def {
			if !inChoices(a.ElementChoices, el) {
				return a.errConfig("default[%d]==%v must be one of the choices %v", i, el, a.ElementChoices)
			}
		}
	}
	return nil
}

func (a *List) validateSet(ht *HasTraits, value any) (any, error) {
	done, err := a.checkSet(ht, value)
	if done || err != nil {
		return nil, err
	}
	seq, ok := value.([]any)
	if !ok {
		return nil, a.errValue("can't be set to %v of type %T, want a []any sequence", value, value)
	}
	for i, el := range seq {
		if !typeOK(a.Of, el) {
			return nil, a.errValue("value[%d] can't be of type %T", i, el)
		}
	}
	if a.ElementChoices != nil {
		for i, el := range seq {
			if !inChoices(a.ElementChoices, el) {
				return nil, a.errValue("value[%d]==%v must be one of %v", i, el, a.ElementChoices)
			}
		}
	}
	return seq, nil
}

// Get returns the bound sequence, or the default if unset.
func (a *List) Get(ht *HasTraits) []any {
	v := ht.Get(a.Field)
	if v == nil {
		return nil
	}
	return v.([]any)
}

// Set validates every element of value and binds the sequence on the
// instance.
func (a *List) Set(ht *HasTraits, value []any) error { return ht.Set(a.Field, value) }

// Strings is a convenience for declaring or assigning string sequences.
func Strings(ss ...string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
