// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package scilib is the overall repository for the brain network dynamics
scientific library implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* traits: the typed-attribute declaration and validation system that all
scientific datatypes are built on.  Attributes declare a name, a type, a
default and validation constraints (safe numeric casting, array dtype and
rank, value domains, choice sets), and every value bound to an owning
entity goes through them.

* datatypes: the scientific data objects (time series, connectivity,
correlation matrices, cortical surfaces, tractography) declared in terms
of traits attributes.

* analyzers: numerical metrics computed over time-series arrays produced
by a simulator -- correlation matrices, the Kuramoto synchronization
index, and metastability / synchrony proxies.
*/
package scilib
