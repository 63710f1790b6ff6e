// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the vault's HTTP transport.
//
// It owns the listener lifecycle: startup, stop-signal handling and a
// bounded graceful shutdown that lets in-flight requests finish.
package server
