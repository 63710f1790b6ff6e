// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package generator synthesizes random credentials and scores their
// strength.
//
// Generation draws from a cryptographically secure byte source and maps
// bytes onto the character pool with rejection sampling, so every pool
// character is equally likely. Entropy estimation and strength assessment
// are pure functions of their input.
package generator
