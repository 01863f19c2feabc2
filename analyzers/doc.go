// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package analyzers computes scalar and matrix metrics over simulated
time-series arrays: node-pairwise Pearson correlation (functional
connectivity), the Kuramoto synchronization index, and proxies for
metastability and synchrony.

Analyzers are themselves owning entities: their inputs (the time series,
time windows, segmentation) are declared traits attributes and validated
on assignment, so Evaluate can rely on the declared shapes.  A malformed
input invalidates the computation, so analyzers propagate validation
errors to the caller rather than recovering locally.
*/
package analyzers
