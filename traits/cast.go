// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traits

import (
	"github.com/emer/etable/v2/etensor"
)

// widens lists, for each numeric kind, the kinds a value of that kind can
// be cast to without loss of precision or range (not including itself).
// These are the numpy 'safe' casting rules: widening within signed and
// unsigned integers, unsigned into strictly wider signed, integers up to
// 16 bits into float32, all integers into float64, float32 into float64.
// etensor.INT is the machine int, 64 bits on all supported platforms.
var widens = map[etensor.Type][]etensor.Type{
	etensor.BOOL: {etensor.UINT8, etensor.UINT16, etensor.UINT32, etensor.UINT64,
		etensor.INT8, etensor.INT16, etensor.INT32, etensor.INT64, etensor.INT,
		etensor.FLOAT32, etensor.FLOAT64},
	etensor.INT8: {etensor.INT16, etensor.INT32, etensor.INT64, etensor.INT,
		etensor.FLOAT32, etensor.FLOAT64},
	etensor.INT16: {etensor.INT32, etensor.INT64, etensor.INT,
		etensor.FLOAT32, etensor.FLOAT64},
	etensor.INT32: {etensor.INT64, etensor.INT, etensor.FLOAT64},
	etensor.INT64: {etensor.INT, etensor.FLOAT64},
	etensor.INT:   {etensor.INT64, etensor.FLOAT64},
	etensor.UINT8: {etensor.UINT16, etensor.UINT32, etensor.UINT64,
		etensor.INT16, etensor.INT32, etensor.INT64, etensor.INT,
		etensor.FLOAT32, etensor.FLOAT64},
	etensor.UINT16: {etensor.UINT32, etensor.UINT64,
		etensor.INT32, etensor.INT64, etensor.INT, etensor.FLOAT32, etensor.FLOAT64},
	etensor.UINT32:  {etensor.UINT64, etensor.INT64, etensor.INT, etensor.FLOAT64},
	etensor.UINT64:  {etensor.FLOAT64},
	etensor.FLOAT32: {etensor.FLOAT64},
	etensor.FLOAT64: {},
}

// castOK is the full safe-cast relation, computed once from widens.
var castOK = func() map[[2]etensor.Type]bool {
	ok := make(map[[2]etensor.Type]bool, 128)
	for from, tos := range widens {
		ok[[2]etensor.Type{from, from}] = true
		for _, to := range tos {
			ok[[2]etensor.Type{from, to}] = true
		}
	}
	return ok
}()

// CanCast reports whether values of kind from can be assigned to kind to
// without loss of precision or range.
func CanCast(from, to etensor.Type) bool {
	return castOK[[2]etensor.Type{from, to}]
}

func isIntKind(k etensor.Type) bool {
	switch k {
	case etensor.INT, etensor.INT8, etensor.INT16, etensor.INT32, etensor.INT64,
		etensor.UINT8, etensor.UINT16, etensor.UINT32, etensor.UINT64:
		return true
	}
	return false
}

func isFloatKind(k etensor.Type) bool {
	return k == etensor.FLOAT32 || k == etensor.FLOAT64
}

func isNumKind(k etensor.Type) bool {
	return k == etensor.BOOL || isIntKind(k) || isFloatKind(k)
}

// scalarKind maps a Go scalar value to its etensor kind.
func scalarKind(v any) (etensor.Type, bool) {
	switch v.(type) {
	case bool:
		return etensor.BOOL, true
	case int:
		return etensor.INT, true
	case int8:
		return etensor.INT8, true
	case int16:
		return etensor.INT16, true
	case int32:
		return etensor.INT32, true
	case int64:
		return etensor.INT64, true
	case uint8:
		return etensor.UINT8, true
	case uint16:
		return etensor.UINT16, true
	case uint32:
		return etensor.UINT32, true
	case uint, uint64:
		return etensor.UINT64, true
	case float32:
		return etensor.FLOAT32, true
	case float64:
		return etensor.FLOAT64, true
	}
	return etensor.NULL, false
}

// castableValue is the value-based refinement of CanCast for the Go
// literal types.  numpy decides castability of plain scalars from the
// value, not the kind; mirroring that, a plain int is accepted into a
// float kind and a plain float64 into FLOAT32 iff the value round-trips
// exactly.  Typed narrow scalars (int8, float32, ...) follow the kind
// table strictly.
func castableValue(v any, to etensor.Type) bool {
	switch sv := v.(type) {
	case int:
		switch to {
		case etensor.FLOAT32:
			return sv >= -(1<<24) && sv <= 1<<24
		case etensor.FLOAT64:
			return true // in the kind table already, kept for clarity
		}
	case float64:
		if to == etensor.FLOAT32 {
			return float64(float32(sv)) == sv
		}
	}
	return false
}

// asFloat64 converts any supported scalar to float64.  Only called on
// values that passed scalarKind.
func asFloat64(v any) float64 {
	switch sv := v.(type) {
	case bool:
		if sv {
			return 1
		}
		return 0
	case int:
		return float64(sv)
	case int8:
		return float64(sv)
	case int16:
		return float64(sv)
	case int32:
		return float64(sv)
	case int64:
		return float64(sv)
	case uint:
		return float64(sv)
	case uint8:
		return float64(sv)
	case uint16:
		return float64(sv)
	case uint32:
		return float64(sv)
	case uint64:
		return float64(sv)
	case float32:
		return float64(sv)
	case float64:
		return sv
	}
	return 0
}

// asInt64 converts any supported integer-kinded scalar to int64.
func asInt64(v any) int64 {
	switch sv := v.(type) {
	case bool:
		if sv {
			return 1
		}
		return 0
	case int:
		return int64(sv)
	case int8:
		return int64(sv)
	case int16:
		return int64(sv)
	case int32:
		return int64(sv)
	case int64:
		return sv
	case uint:
		return int64(sv)
	case uint8:
		return int64(sv)
	case uint16:
		return int64(sv)
	case uint32:
		return int64(sv)
	case uint64:
		return int64(sv)
	case float32:
		return int64(sv)
	case float64:
		return int64(sv)
	}
	return 0
}

// coerceScalar converts v to the exact Go type of the given kind.  The
// cast must already have been proven safe.
func coerceScalar(v any, to etensor.Type) any {
	switch to {
	case etensor.BOOL:
		return asFloat64(v) != 0
	case etensor.INT:
		return int(asInt64(v))
	case etensor.INT8:
		return int8(asInt64(v))
	case etensor.INT16:
		return int16(asInt64(v))
	case etensor.INT32:
		return int32(asInt64(v))
	case etensor.INT64:
		return asInt64(v)
	case etensor.UINT8:
		return uint8(asInt64(v))
	case etensor.UINT16:
		return uint16(asInt64(v))
	case etensor.UINT32:
		return uint32(asInt64(v))
	case etensor.UINT64:
		if sv, ok := v.(uint64); ok {
			return sv
		}
		if sv, ok := v.(uint); ok {
			return uint64(sv)
		}
		return uint64(asInt64(v))
	case etensor.FLOAT32:
		return float32(asFloat64(v))
	case etensor.FLOAT64:
		return asFloat64(v)
	}
	return v
}
