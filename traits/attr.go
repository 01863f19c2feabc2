// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traits

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/bdlm/log"
)

// Attribute is the contract every attribute descriptor implements.
// Concrete kinds (Attr, Int, Float, Const, List, NArray) are declared as
// struct literals and become usable once bound into a Decl.
type Attribute interface {
	// Name returns the field name the attribute is declared under.
	Name() string

	// base returns the metadata shared by all attribute kinds.
	base() *Attr

	// finalize normalizes zero-valued fields and checks that the
	// declaration itself is consistent.  Called once by Bind, before
	// validateDefault.  Failures are ConfigurationErrors.
	finalize(owner string) error

	// validateDefault re-validates the declared default against all
	// declared constraints.  Called once by Bind.  Failures are
	// ConfigurationErrors.
	validateDefault() error

	// validateSet checks a candidate value and returns the possibly
	// coerced value to store on the instance.  Failures are
	// ValidationErrors.
	validateSet(ht *HasTraits, value any) (any, error)

	// defaultValue returns the value Get yields when the instance has no
	// bound value.
	defaultValue() any
}

// Attr declares a named, typed field with a default value.  The zero
// value of Optional makes the attribute required, matching the common
// case; ReadOnly attributes accept a single Set.
//
// Attr is also the base embedded by all specialized attribute kinds.
type Attr struct {

	// Field is the name the attribute is bound under, unique within the
	// owning declaration.
	Field string

	// FieldType is the declared Go type of values.  Interfaces match by
	// implementation, other types by assignability.  A nil FieldType
	// accepts any non-nil value.
	FieldType reflect.Type

	// Default is the value Get returns before any Set.  It is shared by
	// all instances of the owning type.
	Default any

	// Optional allows Set(nil); required attributes reject it.
	Optional bool

	// ReadOnly rejects any Set after the first.
	ReadOnly bool

	// Choices restricts the default and all assigned values to an
	// enumerated set.
	Choices []any

	// Label is a short human readable description.
	Label string

	// Doc is the full documentation string.
	Doc string

	owner string // owning declaration name, set at bind
}

func (a *Attr) Name() string { return a.Field }

func (a *Attr) base() *Attr { return a }

func (a *Attr) finalize(owner string) error {
	a.owner = owner
	if a.Field == "" {
		return &ConfigurationError{Owner: owner, Attr: "?", Msg: "attribute declared without a field name"}
	}
	return nil
}

func (a *Attr) errConfig(format string, args ...any) error {
	return &ConfigurationError{Owner: a.owner, Attr: a.Field, Msg: fmt.Sprintf(format, args...)}
}

func (a *Attr) errValue(format string, args ...any) error {
	return &ValidationError{Owner: a.owner, Attr: a.Field, Msg: fmt.Sprintf(format, args...)}
}

func (a *Attr) validateDefault() error {
	if a.Default == nil {
		return nil
	}
	if !typeOK(a.FieldType, a.Default) {
		return a.errConfig("default %v has type %T, not the declared %v", a.Default, a.Default, a.FieldType)
	}
	if a.Choices != nil && !inChoices(a.Choices, a.Default) {
		return a.errConfig("default %v must be one of the choices %v", a.Default, a.Choices)
	}
	return nil
}

// checkSet applies the required / read-only rules shared by all kinds.
// done means validation is complete: nil is being stored for an optional
// attribute.
func (a *Attr) checkSet(ht *HasTraits, value any) (done bool, err error) {
	if a.ReadOnly && ht.isSet(a.Field) {
		return false, a.errValue("is read only and was already set")
	}
	if isNilValue(value) {
		if !a.Optional {
			return false, a.errValue("is required, can't be set to nil")
		}
		return true, nil
	}
	return false, nil
}

func (a *Attr) validateSet(ht *HasTraits, value any) (any, error) {
	done, err := a.checkSet(ht, value)
	if done || err != nil {
		return nil, err
	}
	if !typeOK(a.FieldType, value) {
		return nil, a.errValue("can't be set to %v of type %T, the declared type is %v", value, value, a.FieldType)
	}
	if a.Choices != nil && !inChoices(a.Choices, value) {
		return nil, a.errValue("value %v must be one of %v", value, a.Choices)
	}
	return value, nil
}

func (a *Attr) defaultValue() any { return a.Default }

// Get returns the value bound on the instance, or the default if unset.
func (a *Attr) Get(ht *HasTraits) any { return ht.Get(a.Field) }

// Set validates value and binds it on the instance.
func (a *Attr) Set(ht *HasTraits, value any) error { return ht.Set(a.Field, value) }

func (a *Attr) String() string {
	return fmt.Sprintf("%T(field=%s, default=%v, required=%v)", a, a.Field, a.Default, !a.Optional)
}

// isNilValue reports whether v is nil, including a typed nil pointer,
// map, slice, chan, or func wrapped in a non-nil interface.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// typeOK reports whether v satisfies the declared type t.
func typeOK(t reflect.Type, v any) bool {
	if v == nil {
		return false
	}
	if t == nil {
		return true
	}
	vt := reflect.TypeOf(v)
	if t.Kind() == reflect.Interface {
		return vt.Implements(t)
	}
	return vt.AssignableTo(t)
}

// inChoices reports membership of v in the enumerated choice set.
func inChoices(choices []any, v any) bool {
	for _, c := range choices {
		if reflect.DeepEqual(c, v) {
			return true
		}
	}
	return false
}

// Decl is the bound attribute table of an owning type.  It is built once
// per type with Bind and shared, read only, by every instance.
type Decl struct {
	Name  string
	attrs []Attribute
	index map[string]Attribute
}

// Bind finalizes the attribute declarations and re-validates every
// default against its constraints.  Any failure is a ConfigurationError:
// the owning type's definition is broken.
func Bind(owner string, attrs ...Attribute) (*Decl, error) {
	d := &Decl{Name: owner, attrs: attrs, index: make(map[string]Attribute, len(attrs))}
	for _, at := range attrs {
		if err := at.finalize(owner); err != nil {
			return nil, err
		}
		if _, dup := d.index[at.Name()]; dup {
			return nil, &ConfigurationError{Owner: owner, Attr: at.Name(), Msg: "declared twice"}
		}
		if err := at.validateDefault(); err != nil {
			return nil, err
		}
		d.index[at.Name()] = at
	}
	log.WithFields(log.Fields{"owner": owner, "attrs": len(attrs)}).Debug("traits: bound declaration")
	return d, nil
}

// MustBind is Bind that panics on error.  Use for package-level
// declarations, where a ConfigurationError is unrecoverable.
func MustBind(owner string, attrs ...Attribute) *Decl {
	d, err := Bind(owner, attrs...)
	if err != nil {
		panic(err)
	}
	return d
}

// Attrs returns the attributes in declaration order.
func (d *Decl) Attrs() []Attribute { return d.attrs }

// Attr looks an attribute up by field name.
func (d *Decl) Attr(name string) (Attribute, bool) {
	at, ok := d.index[name]
	return at, ok
}

// HasTraits is the base of every owning entity.  It holds the
// per-instance attribute values; the descriptors themselves live on the
// shared Decl.  Concurrent Sets on one instance must be serialized by the
// caller.
type HasTraits struct {
	decl   *Decl
	values map[string]any
}

// Init attaches the bound declaration to a fresh instance.  Constructors
// must call it before any Get or Set.
func (ht *HasTraits) Init(decl *Decl) {
	ht.decl = decl
	ht.values = make(map[string]any)
}

// Decl returns the bound declaration, nil before Init.
func (ht *HasTraits) Decl() *Decl { return ht.decl }

func (ht *HasTraits) isSet(name string) bool {
	_, ok := ht.values[name]
	return ok
}

// IsSet reports whether the named attribute has an instance-bound value
// shadowing the default.
func (ht *HasTraits) IsSet(name string) bool { return ht.isSet(name) }

// Get returns the instance-bound value of the named attribute, or the
// declared default if none was set.  Unknown names yield nil.
func (ht *HasTraits) Get(name string) any {
	if v, ok := ht.values[name]; ok {
		return v
	}
	if ht.decl == nil {
		return nil
	}
	at, ok := ht.decl.Attr(name)
	if !ok {
		return nil
	}
	return at.defaultValue()
}

// Set validates value against the named attribute's constraints and binds
// the validated (possibly coerced) value on the instance, shadowing the
// default.
func (ht *HasTraits) Set(name string, value any) error {
	if ht.decl == nil {
		return &ValidationError{Attr: name, Msg: "owner not initialized, call Init first"}
	}
	at, ok := ht.decl.Attr(name)
	if !ok {
		return &ValidationError{Owner: ht.decl.Name, Attr: name, Msg: "unknown attribute"}
	}
	v, err := at.validateSet(ht, value)
	if err != nil {
		return err
	}
	ht.values[name] = v
	return nil
}

// Validate checks that every required attribute resolves to a value,
// either bound or defaulted.  Call after construction, before handing the
// instance to a consumer.
func (ht *HasTraits) Validate() error {
	if ht.decl == nil {
		return &ValidationError{Msg: "owner not initialized, call Init first"}
	}
	for _, at := range ht.decl.Attrs() {
		b := at.base()
		if b.Optional {
			continue
		}
		if ht.Get(b.Field) == nil {
			return &ValidationError{Owner: ht.decl.Name, Attr: b.Field, Msg: "required attribute has no value"}
		}
	}
	return nil
}

func (ht *HasTraits) String() string {
	if ht.decl == nil {
		return "HasTraits(unbound)"
	}
	set := make([]string, 0, len(ht.values))
	for _, at := range ht.decl.Attrs() {
		if ht.isSet(at.Name()) {
			set = append(set, at.Name())
		}
	}
	return fmt.Sprintf("%s(set: %s)", ht.decl.Name, strings.Join(set, ", "))
}
