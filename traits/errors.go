// Copyright (c) 2024, The Virtual Brain Project Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traits

import (
	"errors"
	"fmt"
)

// ConfigurationError reports an attribute declaration that is internally
// inconsistent: a default violating the declared type, dtype or rank, a
// choice set that excludes the default, contradictory dimension
// declarations.  It is raised at declaration / bind time and is fatal to
// the owning type's definition.
type ConfigurationError struct {
	Owner string // owning declaration name
	Attr  string // attribute field name
	Msg   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("traits: %s.%s: %s", e.Owner, e.Attr, e.Msg)
}

// ValidationError reports a candidate value that violates an attribute's
// declared constraints at assignment time: type, dtype, rank, choice
// membership or the read-only flag.
type ValidationError struct {
	Owner string
	Attr  string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("traits: %s.%s: %s", e.Owner, e.Attr, e.Msg)
}

// IsConfigurationError reports whether err is, or wraps, a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
