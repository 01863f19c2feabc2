// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traits

import (
	"github.com/emer/etable/v2/etensor"
)

// validateNumberDefault is the bind-time default check shared by Int and
// Float: the default must be safely castable to the declared kind and a
// member of the choice set if one is declared.
func validateNumberDefault(a *Attr, kind etensor.Type) error {
	if a.Default == nil {
		return nil
	}
	from, ok := scalarKind(a.Default)
	if !ok {
		return a.errConfig("default %v of type %T is not a numeric scalar", a.Default, a.Default)
	}
	if !CanCast(from, kind) && !castableValue(a.Default, kind) {
		return a.errConfig("can not safely cast default value %v to the declared kind %v", a.Default, kind)
	}
	if a.Choices != nil && !numericChoice(a.Choices, a.Default) {
		return a.errConfig("the default %v must be one of the choices %v", a.Default, a.Choices)
	}
	return nil
}

// validateNumberSet is the assignment-time check shared by Int and Float.
// On success the returned value is coerced to the exact declared kind.
func validateNumberSet(a *Attr, kind etensor.Type, ht *HasTraits, value any) (any, error) {
	done, err := a.checkSet(ht, value)
	if done || err != nil {
		return nil, err
	}
	from, ok := scalarKind(value)
	if !ok {
		return nil, a.errValue("can't be set to %v of type %T, not a numeric scalar", value, value)
	}
	if !CanCast(from, kind) && !castableValue(value, kind) {
		return nil, a.errValue("can't be set to %v. No safe cast to %v.", value, kind)
	}
	if a.Choices != nil && !numericChoice(a.Choices, value) {
		return nil, a.errValue("value %v must be one of %v", value, a.Choices)
	}
	return coerceScalar(value, kind), nil
}

// numericChoice tests choice membership by numeric value, so a choice set
// of ints accepts the same values arriving as any castable kind.
func numericChoice(choices []any, v any) bool {
	vf := asFloat64(v)
	for _, c := range choices {
		if _, ok := scalarKind(c); !ok {
			continue
		}
		if asFloat64(c) == vf {
			return true
		}
	}
	return false
}

// Int declares an integer scalar.
//
// This is different from an Attr with an int FieldType: that would demand
// the exact Go type, while Int accepts any value safely castable to the
// declared Kind under the numpy casting rules, and stores it coerced to
// exactly that kind.
type Int struct {
	Attr

	// Kind is the declared integer kind; etensor.INT if zero.
	Kind etensor.Type
}

func (a *Int) finalize(owner string) error {
	if err := a.Attr.finalize(owner); err != nil {
		return err
	}
	if a.Kind == etensor.NULL {
		a.Kind = etensor.INT
	}
	if !isIntKind(a.Kind) {
		return a.errConfig("kind must be an integer type, not %v", a.Kind)
	}
	return nil
}

func (a *Int) validateDefault() error {
	return validateNumberDefault(&a.Attr, a.Kind)
}

func (a *Int) validateSet(ht *HasTraits, value any) (any, error) {
	return validateNumberSet(&a.Attr, a.Kind, ht, value)
}

// Get returns the bound value widened to int64, or 0 when the attribute
// is optional and unset.
func (a *Int) Get(ht *HasTraits) int64 {
	v := ht.Get(a.Field)
	if v == nil {
		return 0
	}
	return asInt64(v)
}

// Set validates value and binds it on the instance.
func (a *Int) Set(ht *HasTraits, value any) error { return ht.Set(a.Field, value) }

// Float declares a floating point scalar.
//
// Like Int, any value safely castable to the declared Kind is accepted:
// assigning the integer 3 to a Float attribute stores float64(3).
type Float struct {
	Attr

	// Kind is the declared floating kind; etensor.FLOAT64 if zero.
	Kind etensor.Type
}

func (a *Float) finalize(owner string) error {
	if err := a.Attr.finalize(owner); err != nil {
		return err
	}
	if a.Kind == etensor.NULL {
		a.Kind = etensor.FLOAT64
	}
	if !isFloatKind(a.Kind) {
		return a.errConfig("kind must be a floating type, not %v", a.Kind)
	}
	return nil
}

func (a *Float) validateDefault() error {
	return validateNumberDefault(&a.Attr, a.Kind)
}

func (a *Float) validateSet(ht *HasTraits, value any) (any, error) {
	return validateNumberSet(&a.Attr, a.Kind, ht, value)
}

// Get returns the bound value widened to float64, or 0 when the
// attribute is optional and unset.
func (a *Float) Get(ht *HasTraits) float64 {
	v := ht.Get(a.Field)
	if v == nil {
		return 0
	}
	return asFloat64(v)
}

// Set validates value and binds it on the instance.
func (a *Float) Set(ht *HasTraits, value any) error { return ht.Set(a.Field, value) }
