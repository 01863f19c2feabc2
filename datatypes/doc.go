// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package datatypes holds the scientific data objects of the library,
declared in terms of traits attributes: simulated time series, structural
connectivity, correlation matrices, cortical surface meshes and
tractography results.

Each datatype declares its attributes as package-level descriptors bound
into a shared declaration table, and embeds traits.HasTraits for the
per-instance values.  Every value stored on an instance has passed the
declared validation: array dtypes and ranks are enforced, numeric values
are safely cast, labels are checked against their element types.
Consumers (the analyzers, the persistence layer) can therefore rely on
the declared shapes without re-checking.
*/
package datatypes
