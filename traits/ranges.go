// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traits

import (
	"fmt"
	"math"

	"github.com/emer/etable/v2/etensor"
)

// Domain describes the permissible values of an array attribute's
// elements.  Membership is what NArray validates against; ToArray
// materializes the concrete sample points, for parameter sweeps.
type Domain interface {
	Contains(v float64) bool
	ToArray() *etensor.Float64
}

// Range defines a domain of precisely equidistant points: Lo, Lo+Step,
// ... with the largest point < Hi.
//
// Membership ignores Step entirely: Contains tests the half-open
// interval [Lo, Hi).
type Range struct {
	Lo   float64
	Hi   float64
	Step float64 // 1 if zero
}

// Contains reports Lo <= v < Hi.  The step is ignored.
func (r Range) Contains(v float64) bool {
	return r.Lo <= v && v < r.Hi
}

// ToArray materializes the arithmetic progression over [Lo, Hi).
func (r Range) ToArray() *etensor.Float64 {
	step := r.Step
	if step <= 0 {
		step = 1
	}
	n := int(math.Ceil((r.Hi - r.Lo) / step))
	if n < 0 {
		n = 0
	}
	out := etensor.NewFloat64([]int{n}, nil, nil)
	for i := 0; i < n; i++ {
		out.Values[i] = r.Lo + float64(i)*step
	}
	return out
}

func (r Range) String() string {
	return fmt.Sprintf("Range(lo=%v, hi=%v, step=%v)", r.Lo, r.Hi, r.Step)
}

// LinspaceRange defines a domain with precise endpoints but points that
// are not precisely equidistant: NPoints evenly spaced samples including
// both Lo and Hi.
//
// Note the asymmetry: Contains tests
// the half-open interval [Lo, Hi), yet ToArray's last sample is Hi
// itself, so the materialized endpoint is not a member of the domain.
type LinspaceRange struct {
	Lo      float64
	Hi      float64
	NPoints int // 50 if zero
}

// Contains reports Lo <= v < Hi.  The point count is ignored.
func (r LinspaceRange) Contains(v float64) bool {
	return r.Lo <= v && v < r.Hi
}

// ToArray materializes NPoints evenly spaced samples from Lo to Hi
// inclusive.
func (r LinspaceRange) ToArray() *etensor.Float64 {
	n := r.NPoints
	if n <= 0 {
		n = 50
	}
	out := etensor.NewFloat64([]int{n}, nil, nil)
	if n == 1 {
		out.Values[0] = r.Lo
		return out
	}
	step := (r.Hi - r.Lo) / float64(n-1)
	for i := 0; i < n; i++ {
		out.Values[i] = r.Lo + float64(i)*step
	}
	out.Values[n-1] = r.Hi // exact endpoint, no accumulated error
	return out
}

func (r LinspaceRange) String() string {
	return fmt.Sprintf("LinspaceRange(lo=%v, hi=%v, npoints=%v)", r.Lo, r.Hi, r.NPoints)
}
