// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package traits implements the typed-attribute declaration and validation
system used by all scientific datatypes in this library.

An attribute descriptor (Attr and its variants Int, Float, Const, List,
NArray) declares a named field: its type, default value, whether it is
required or read only, and an optional set of allowed choices.  Descriptors
are declared once per owning type and bound into a Decl table with Bind or
MustBind, which re-validates every default against the declared constraints.
A failure at that point is a ConfigurationError: the declaration itself is
broken and the owning type is unusable.

Owning entities embed HasTraits and route every value through the
descriptor: Set validates (and for numbers and arrays, safely casts) the
value before storing it on the instance, Get returns the stored value or
the declared default.  A value that violates its declared constraints is
rejected with a ValidationError -- never silently coerced beyond the
documented safe cast.

Array attributes are backed by etensor tensors, so dtype, rank and named
dimensions come directly from the tensor machinery shared with the rest of
the library.  Numeric value domains (Range, LinspaceRange) constrain array
elements: defaults are checked at bind time (violations are logged, not
fatal), and the NArray Strict flag opts in to re-checking the domain on
every assignment.

Descriptors are immutable after binding and safe to share across instances
and goroutines.  Instances are not safe for concurrent attribute
assignment; callers must serialize writes to a given instance.
*/
package traits
