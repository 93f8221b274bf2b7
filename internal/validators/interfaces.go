// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the values that cross
// the service boundary: report query parameters and staff accounts.
//
// A Validator accepts an arbitrary value and an optional list of field
// names. With no fields every rule for the value's type is checked; with
// fields only the named rules run, in order, and the first violation is
// returned.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
