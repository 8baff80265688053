// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package datasource

import "errors"

var (
	// ErrNoColumns is returned when CSV input has no header row or no
	// usable column.
	ErrNoColumns = errors.New("datasource: no columns")

	// ErrColumnNotFound is returned when a column requested with
	// WithColumns is missing from the header row.
	ErrColumnNotFound = errors.New("datasource: column not found")
)
