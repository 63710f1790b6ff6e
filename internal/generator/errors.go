// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import "errors"

var (
	// ErrInvalidLength is returned when a requested length is negative or
	// exceeds [MaxLength].
	ErrInvalidLength = errors.New("invalid password length")

	// ErrRandomSource is returned when the random source fails.
	ErrRandomSource = errors.New("random source failure")
)
